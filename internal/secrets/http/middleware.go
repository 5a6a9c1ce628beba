package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/burnbox/internal/httputil"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// ValidateSecretID creates a Gin middleware that rejects malformed secret
// identifiers before any other work happens.
//
// The middleware:
//  1. Reads the :id route parameter
//  2. Checks the 21-character [A-Za-z0-9_-] format
//  3. Responds 400 Bad Request and aborts the chain on a malformed identifier
//  4. Calls the next handler when the identifier is well formed
//
// It runs ahead of the rate limiter on the retrieve route, so malformed
// identifiers never spend the caller's quota.
//
// Usage:
//
//	router.GET("/v1/secrets/:id",
//		secretsHTTP.ValidateSecretID(logger),
//		rateLimitMiddleware,
//		handler.RetrieveHandler,
//	)
func ValidateSecretID(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := secretsDomain.ValidateID(c.Param("id")); err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
