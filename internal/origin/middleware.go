package origin

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/burnbox/internal/httputil"
)

// Middleware creates a Gin middleware that rejects state-changing requests
// whose provenance fails the guard.
//
// The middleware:
//  1. Reads the Origin, Referer and Sec-Fetch-Site headers from the request
//  2. Validates them with the configured Guard
//  3. Responds 403 Forbidden and aborts the chain on rejection
//  4. Calls the next handler when the request passes
//
// Apply it to mutating routes only; retrieval is read-only and stays
// unguarded so shared links keep working from any context.
//
// Usage:
//
//	guard := origin.NewGuard("burnbox.example.com", ".pages.dev")
//	router.POST("/v1/secrets", origin.Middleware(guard, logger), handler.Share)
func Middleware(guard *Guard, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := guard.Validate(
			c.GetHeader("Origin"),
			c.GetHeader("Referer"),
			c.GetHeader("Sec-Fetch-Site"),
		)
		if err != nil {
			logger.Debug("request origin rejected",
				slog.String("origin", c.GetHeader("Origin")),
				slog.String("referer", c.GetHeader("Referer")),
				slog.String("sec_fetch_site", c.GetHeader("Sec-Fetch-Site")),
			)
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
