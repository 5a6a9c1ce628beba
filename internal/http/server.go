// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	secretsHTTP "github.com/allisson/burnbox/internal/secrets/http"
)

// readinessCheckTimeout bounds the store ping so a hanging backend turns
// into a failed readiness probe instead of a stuck one.
const readinessCheckTimeout = 5 * time.Second

// StoreCheck reports whether the backing secret store can serve requests.
// The container wires the active driver's ping here; nil means no store was
// wired and readiness always fails.
type StoreCheck func(ctx context.Context) error

// Server represents the HTTP server.
type Server struct {
	server     *http.Server
	router     *gin.Engine
	storeCheck StoreCheck
	logger     *slog.Logger
}

// NewServer creates a new HTTP server. The router starts empty; call
// SetupRouter before Start.
func NewServer(
	storeCheck StoreCheck,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		storeCheck: storeCheck,
		logger:     logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handler and the optional middleware that
// SetupRouter wires into the route table. A nil middleware means the
// corresponding feature is disabled and the route runs without it.
type RouterConfig struct {
	SecretHandler     *secretsHTTP.SecretHandler
	OriginMiddleware  gin.HandlerFunc
	ShareRateLimit    gin.HandlerFunc
	RetrieveRateLimit gin.HandlerFunc
	MetricsMiddleware gin.HandlerFunc
	CORSEnabled       bool
	CORSAllowOrigins  string
}

// SetupRouter builds the route table and attaches it to the server.
//
// Middleware order on the secret routes is part of the contract: the origin
// guard runs before the share rate limiter, and the identifier format check
// runs before the retrieve rate limiter, so rejected requests never spend
// the caller's quota.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	share := make([]gin.HandlerFunc, 0, 3)
	if cfg.OriginMiddleware != nil {
		share = append(share, cfg.OriginMiddleware)
	}
	if cfg.ShareRateLimit != nil {
		share = append(share, cfg.ShareRateLimit)
	}
	share = append(share, cfg.SecretHandler.ShareHandler)

	retrieve := make([]gin.HandlerFunc, 0, 3)
	retrieve = append(retrieve, secretsHTTP.ValidateSecretID(s.logger))
	if cfg.RetrieveRateLimit != nil {
		retrieve = append(retrieve, cfg.RetrieveRateLimit)
	}
	retrieve = append(retrieve, cfg.SecretHandler.RetrieveHandler)

	v1 := router.Group("/v1")
	{
		v1.POST("/secrets", share...)
		v1.GET("/secrets/:id", retrieve...)
	}

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic, pinging the
// backing store with a bounded timeout.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessCheckTimeout)
	defer cancel()

	components := gin.H{"store": "ok"}
	status := http.StatusOK

	if s.storeCheck == nil {
		components["store"] = "error"
		status = http.StatusServiceUnavailable
	} else if err := s.storeCheck(ctx); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		components["store"] = "error"
		status = http.StatusServiceUnavailable
	}

	body := gin.H{"status": "ready", "components": components}
	if status != http.StatusOK {
		body["status"] = "not_ready"
	}

	c.JSON(status, body)
}

// GetHandler returns the http.Handler for testing purposes.
// Returns nil when SetupRouter has not been called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
