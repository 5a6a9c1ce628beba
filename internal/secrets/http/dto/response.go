package dto

import (
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// ShareSecretResponse returns the identifier of a freshly stored secret.
type ShareSecretResponse struct {
	ID string `json:"id"`
}

// MapSecretToShareResponse converts a stored secret to a share response.
// Only the identifier leaves the server; the envelope is never echoed back.
func MapSecretToShareResponse(secret *secretsDomain.Secret) ShareSecretResponse {
	return ShareSecretResponse{
		ID: secret.ID,
	}
}

// RetrieveSecretResponse carries the envelope back to the recipient, with
// the storage timestamp in Unix milliseconds.
type RetrieveSecretResponse struct {
	EncryptedData string `json:"encrypted_data"`
	CreatedAt     int64  `json:"created_at"`
}

// MapSecretToRetrieveResponse converts a taken secret to a retrieve response.
func MapSecretToRetrieveResponse(secret *secretsDomain.Secret) RetrieveSecretResponse {
	return RetrieveSecretResponse{
		EncryptedData: secret.Envelope,
		CreatedAt:     secret.CreatedAt.UnixMilli(),
	}
}
