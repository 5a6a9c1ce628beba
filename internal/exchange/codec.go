// Package exchange implements the client-side authenticated-encryption
// envelope: key generation, AEAD sealing with nonce framing, and the URL-safe
// text encoding used to move envelopes through the relay. The relay only ever
// sees one opaque blob; it cannot tell the nonce from the payload, and the key
// travels out of band in the URL fragment.
package exchange

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	apperrors "github.com/allisson/burnbox/internal/errors"
	"github.com/allisson/burnbox/internal/random"
)

// Algorithm selects the AEAD construction used by a Codec.
//
// Both algorithms use a 256-bit key, a 12-byte nonce, and a 16-byte
// authentication tag, so envelopes have the same framing either way.
type Algorithm string

const (
	// AESGCM is AES-256-GCM, the default algorithm.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305, preferred on hosts without AES
	// hardware acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Envelope framing sizes. A serialized envelope is nonce || ciphertext+tag;
// the first 12 bytes are always the nonce.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)

// Codec seals and opens envelopes under a single 256-bit key.
type Codec struct {
	aead cipher.AEAD
}

// New creates a Codec for the given key and algorithm.
// Returns ErrInvalidKeySize if the key is not 32 bytes or
// ErrUnsupportedAlgorithm if the algorithm is unknown.
func New(key []byte, alg Algorithm) (*Codec, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	switch alg {
	case AESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", err)
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return &Codec{aead: aead}, nil
	case ChaCha20:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
		}
		return &Codec{aead: aead}, nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// GenerateKey returns a fresh 256-bit key from the secure random source.
func GenerateKey() ([]byte, error) {
	key, err := random.Bytes(KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// Encrypt seals plaintext under a freshly drawn nonce and returns the
// serialized envelope (nonce || ciphertext+tag). The nonce is independent per
// call and never reused under the same key.
func (c *Codec) Encrypt(plaintext []byte) ([]byte, error) {
	nonce, err := random.Bytes(NonceSize)
	if err != nil {
		return nil, apperrors.Wrap(ErrEncryptionFailed, "failed to generate nonce")
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Decrypt opens a serialized envelope: the first 12 bytes are the nonce, the
// remainder is ciphertext+tag. Any open failure surfaces as
// ErrAuthenticationFailed.
func (c *Codec) Decrypt(envelope []byte) ([]byte, error) {
	if len(envelope) < NonceSize+TagSize {
		return nil, ErrAuthenticationFailed
	}

	nonce := envelope[:NonceSize]
	ciphertext := envelope[NonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
