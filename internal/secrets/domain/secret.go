// Package domain defines the core domain models for one-shot secrets. A
// secret is an opaque client-encrypted envelope stored under an unguessable
// identifier until its single successful retrieval or TTL expiry, whichever
// comes first.
package domain

import (
	"fmt"
	"time"

	"github.com/allisson/burnbox/internal/random"
)

// IDAlphabet is the 64-symbol identifier alphabet. 64 divides the byte range
// evenly, so uniform draws never hit the rejection path.
const IDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

const (
	// IDLength is the fixed identifier length.
	IDLength = 21

	// MinEnvelopeChars is the smallest valid transport envelope: a 12-byte
	// nonce plus a 16-byte tag in padding-free base64.
	MinEnvelopeChars = 38

	// MaxEnvelopeChars bounds the transport envelope, derived from the
	// 10,000-character plaintext ceiling plus AEAD and encoding overhead.
	MaxEnvelopeChars = 15000

	// DefaultTTL is the fixed retention horizon for stored secrets.
	DefaultTTL = 24 * time.Hour
)

// Secret represents a stored one-shot secret.
type Secret struct {
	// ID is the unguessable identifier the recipient presents to claim the secret.
	ID string
	// Envelope is the client-encrypted payload in transport encoding; the
	// service never sees a decrypted form of it.
	Envelope string
	// CreatedAt is the UTC timestamp when the secret was stored.
	CreatedAt time.Time
	// ExpiresAt is the UTC timestamp after which the secret is indistinguishable
	// from one that never existed.
	ExpiresAt time.Time
}

// NewSecret builds a Secret with a fresh identifier and UTC timestamps.
func NewSecret(envelope string, ttl time.Duration) (*Secret, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Secret{
		ID:        id,
		Envelope:  envelope,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// NewID draws a fresh 21-symbol identifier uniformly from IDAlphabet using
// the secure random source. Collision probability is negligible at expected
// volumes (64^21 values).
func NewID() (string, error) {
	id := make([]byte, IDLength)
	for i := range id {
		n, err := random.Int(len(IDAlphabet))
		if err != nil {
			return "", fmt.Errorf("failed to generate secret id: %w", err)
		}
		id[i] = IDAlphabet[n]
	}
	return string(id), nil
}

// ValidateEnvelope checks the transport envelope size bounds. Encoding is
// enforced at the transport layer; the bounds hold for every entry point.
func ValidateEnvelope(envelope string) error {
	if len(envelope) < MinEnvelopeChars || len(envelope) > MaxEnvelopeChars {
		return ErrInvalidEnvelope
	}
	return nil
}

// ValidateID checks the identifier length and alphabet. Malformed identifiers
// are rejected before any store or quota access.
func ValidateID(id string) error {
	if len(id) != IDLength {
		return ErrInvalidSecretID
	}
	for i := 0; i < len(id); i++ {
		if !isIDChar(id[i]) {
			return ErrInvalidSecretID
		}
	}
	return nil
}

// isIDChar checks membership in the identifier alphabet [A-Za-z0-9_-].
func isIDChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
