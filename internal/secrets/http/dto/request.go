// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
	customValidation "github.com/allisson/burnbox/internal/validation"
)

// ShareSecretRequest contains the parameters for storing a one-shot secret.
// The envelope is sealed on the sender's device; the service receives opaque
// ciphertext and never the key that opens it.
type ShareSecretRequest struct {
	EncryptedData string `json:"encrypted_data" binding:"required"`
}

// Validate checks if the share secret request is valid.
func (r *ShareSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EncryptedData,
			validation.Required,
			validation.Length(secretsDomain.MinEnvelopeChars, secretsDomain.MaxEnvelopeChars),
			customValidation.Base64URL,
		),
	)
}
