package exchange

import (
	apperrors "github.com/allisson/burnbox/internal/errors"
)

// Codec error definitions.
//
// These wrap standard errors from internal/errors so boundary layers can map
// them without knowing the cryptographic detail. Authentication failures are
// deliberately opaque: a wrong key, a flipped bit, and a truncated envelope
// all surface the same way.
var (
	// ErrInvalidKeySize indicates a key that is not exactly 32 bytes (256 bits).
	ErrInvalidKeySize = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid key size")

	// ErrUnsupportedAlgorithm indicates an unknown AEAD algorithm name.
	//
	// Supported algorithms: AESGCM (aes-gcm), ChaCha20 (chacha20-poly1305).
	ErrUnsupportedAlgorithm = apperrors.Wrap(apperrors.ErrInvalidInput, "unsupported algorithm")

	// ErrEncryptionFailed indicates the underlying primitive failed while
	// sealing. It is fatal to the operation and never retried.
	ErrEncryptionFailed = apperrors.New("encryption failed")

	// ErrAuthenticationFailed indicates an envelope that cannot be opened:
	// tampering, the wrong key, or transport corruption. The cause is not
	// disclosed and no partial plaintext is ever returned.
	ErrAuthenticationFailed = apperrors.Wrap(apperrors.ErrInvalidInput, "cannot decrypt")

	// ErrMalformedEncoding indicates transport text that is not valid
	// padding-free URL-safe base64, or that decodes below the minimum
	// envelope size.
	ErrMalformedEncoding = apperrors.Wrap(apperrors.ErrInvalidInput, "malformed encoding")
)
