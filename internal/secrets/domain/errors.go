// Package domain defines core domain models and errors for secrets.
package domain

import (
	"github.com/allisson/burnbox/internal/errors"
)

// Secret-specific error definitions.
var (
	// ErrSecretNotFound indicates the secret never existed, already expired,
	// or was already taken. The three cases are deliberately indistinguishable.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "secret not found")

	// ErrInvalidSecretID indicates an identifier outside the 21-character
	// [A-Za-z0-9_-] format.
	ErrInvalidSecretID = errors.Wrap(errors.ErrInvalidInput, "invalid secret id")

	// ErrInvalidEnvelope indicates a transport envelope outside the accepted
	// size bounds or encoding.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid envelope")
)
