// Package http provides HTTP handlers for one-shot secret exchange.
// Envelopes are sealed and opened on the caller's device; handlers move
// opaque ciphertext and never see key material.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/burnbox/internal/httputil"
	"github.com/allisson/burnbox/internal/secrets/http/dto"
	secretsUseCase "github.com/allisson/burnbox/internal/secrets/usecase"
	customValidation "github.com/allisson/burnbox/internal/validation"
)

// SecretHandler handles HTTP requests for one-shot secret exchange.
type SecretHandler struct {
	secretUseCase secretsUseCase.SecretUseCase
	logger        *slog.Logger
}

// NewSecretHandler creates a new secret handler with required dependencies.
func NewSecretHandler(secretUseCase secretsUseCase.SecretUseCase, logger *slog.Logger) *SecretHandler {
	return &SecretHandler{
		secretUseCase: secretUseCase,
		logger:        logger,
	}
}

// ShareHandler stores a client-encrypted envelope under a fresh identifier.
// POST /v1/secrets
// Returns 201 Created with the identifier. The envelope is never echoed back.
func (h *SecretHandler) ShareHandler(c *gin.Context) {
	var req dto.ShareSecretRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	secret, err := h.secretUseCase.Share(c.Request.Context(), req.EncryptedData)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapSecretToShareResponse(secret)
	c.JSON(http.StatusCreated, response)
}

// RetrieveHandler performs the single take of a stored envelope.
// GET /v1/secrets/:id
// Returns 200 OK with the envelope exactly once. Any later request for the
// same identifier gets 404, indistinguishable from an identifier that never
// existed.
func (h *SecretHandler) RetrieveHandler(c *gin.Context) {
	id := c.Param("id")

	// Call use case
	secret, err := h.secretUseCase.Retrieve(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// The envelope leaves the server exactly once; no cache may hold a copy
	c.Header("Cache-Control", "no-store")

	response := dto.MapSecretToRetrieveResponse(secret)
	c.JSON(http.StatusOK, response)
}
