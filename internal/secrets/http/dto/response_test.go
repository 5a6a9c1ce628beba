package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

func TestMapSecretToShareResponse(t *testing.T) {
	secret := &secretsDomain.Secret{
		ID:       "V1StGXR8_Z5jdHi6B-myT",
		Envelope: "dG9wLXNlY3JldC1lbnZlbG9wZQ",
	}

	response := MapSecretToShareResponse(secret)

	assert.Equal(t, "V1StGXR8_Z5jdHi6B-myT", response.ID)
}

func TestMapSecretToRetrieveResponse(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := &secretsDomain.Secret{
		ID:        "V1StGXR8_Z5jdHi6B-myT",
		Envelope:  "dG9wLXNlY3JldC1lbnZlbG9wZQ",
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(24 * time.Hour),
	}

	response := MapSecretToRetrieveResponse(secret)

	assert.Equal(t, "dG9wLXNlY3JldC1lbnZlbG9wZQ", response.EncryptedData)
	assert.Equal(t, createdAt.UnixMilli(), response.CreatedAt)
}
