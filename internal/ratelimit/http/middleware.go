// Package http provides HTTP middleware for request rate limiting.
package http

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/burnbox/internal/errors"
	"github.com/allisson/burnbox/internal/httputil"
	ratelimitService "github.com/allisson/burnbox/internal/ratelimit/service"
)

// RateLimitMiddleware enforces a fixed-window quota for one endpoint class.
//
// Every response carries X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset so clients can pace themselves; a denial answers 429
// with Retry-After. The limiter fails closed, so a broken counter store also
// answers 429 rather than waving requests through.
//
// Usage:
//
//	v1.POST("/secrets", RateLimitMiddleware(limiter, ratelimitDomain.ClassShare, 10, time.Minute, logger), handler.ShareSecret)
func RateLimitMiddleware(
	limiter ratelimitService.RateLimiter,
	class string,
	limit int64,
	window time.Duration,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := ClientIdentifier(c)

		decision, err := limiter.Check(c.Request.Context(), identifier, class, limit, window)
		if err != nil {
			// The decision already denies the request; the error is only
			// operational detail.
			logger.Error("rate limit check failed",
				slog.String("class", class),
				slog.Any("error", err),
			)
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retryAfter := int64(math.Ceil(time.Until(decision.ResetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))

			logger.Debug("rate limit exceeded",
				slog.String("class", class),
				slog.String("identifier", identifier),
			)
			httputil.HandleErrorGin(c, apperrors.ErrRateLimited, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClientIdentifier returns the caller identity quota is accounted against:
// the client IP, or a request fingerprint when no address is available. It
// never returns the empty string, which would pool unrelated callers into one
// shared counter.
func ClientIdentifier(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	fingerprint := sha256.Sum256([]byte(
		c.Request.RemoteAddr + "|" + c.Request.UserAgent() + "|" + c.GetHeader("Accept-Language"),
	))
	return hex.EncodeToString(fingerprint[:])
}
