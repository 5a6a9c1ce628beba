package app

import (
	"context"
	"fmt"

	httpServer "github.com/allisson/burnbox/internal/http"
	"github.com/allisson/burnbox/internal/metrics"
	"github.com/allisson/burnbox/internal/origin"
	ratelimitDomain "github.com/allisson/burnbox/internal/ratelimit/domain"
	ratelimitHTTP "github.com/allisson/burnbox/internal/ratelimit/http"
)

// OriginGuard returns the origin guard, or nil when the origin check is
// disabled in configuration.
func (c *Container) OriginGuard() *origin.Guard {
	c.originGuardInit.Do(func() {
		if c.config.OriginCheckEnabled {
			c.originGuard = origin.NewGuard(c.config.OriginExpectedHost, c.config.OriginPreviewSuffix)
		}
	})
	return c.originGuard
}

// HTTPServer returns the HTTP server instance with the full route table.
func (c *Container) HTTPServer() (*httpServer.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus scrape server instance.
func (c *Container) MetricsServer() (*httpServer.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// storeCheck builds the readiness probe for the active store driver.
func (c *Container) storeCheck() (httpServer.StoreCheck, error) {
	switch c.config.StoreDriver {
	case "postgres", "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for store check: %w", err)
		}
		return db.PingContext, nil

	case "redis":
		client, err := c.RedisClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis client for store check: %w", err)
		}
		return func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}, nil

	case "memory":
		// The store lives in this process; reachable by definition.
		return func(ctx context.Context) error { return nil }, nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*httpServer.Server, error) {
	logger := c.Logger()

	secretHandler, err := c.initSecretHandler()
	if err != nil {
		return nil, err
	}

	storeCheck, err := c.storeCheck()
	if err != nil {
		return nil, err
	}

	routerConfig := httpServer.RouterConfig{
		SecretHandler:    secretHandler,
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
	}

	if guard := c.OriginGuard(); guard != nil {
		routerConfig.OriginMiddleware = origin.Middleware(guard, logger)
	}

	if c.config.RateLimitEnabled {
		rateLimiter, err := c.RateLimiter()
		if err != nil {
			return nil, fmt.Errorf("failed to get rate limiter for http server: %w", err)
		}

		routerConfig.ShareRateLimit = ratelimitHTTP.RateLimitMiddleware(
			rateLimiter,
			ratelimitDomain.ClassShare,
			c.config.RateLimitShareLimit,
			c.config.RateLimitShareWindow,
			logger,
		)
		routerConfig.RetrieveRateLimit = ratelimitHTTP.RateLimitMiddleware(
			rateLimiter,
			ratelimitDomain.ClassRetrieve,
			c.config.RateLimitRetrieveLimit,
			c.config.RateLimitRetrieveWindow,
			logger,
		)
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	server := httpServer.NewServer(storeCheck, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(routerConfig)

	return server, nil
}

// initMetricsServer creates the metrics server with its provider.
func (c *Container) initMetricsServer() (*httpServer.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return httpServer.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}
