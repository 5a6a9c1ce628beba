package exchange

import (
	"encoding/base64"
)

// EncodeText encodes bytes to URL-safe base64 without padding, the only text
// form that crosses the relay.
func EncodeText(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeText decodes transport text produced by EncodeText. It fails with
// ErrMalformedEncoding on any alphabet violation or when the payload decodes
// below the 12-byte nonce prefix every envelope carries.
func DecodeText(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	if len(data) < NonceSize {
		return nil, ErrMalformedEncoding
	}
	return data, nil
}

// ExportKey encodes a key for the URL fragment.
func ExportKey(key []byte) (string, error) {
	if len(key) != KeySize {
		return "", ErrInvalidKeySize
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

// ImportKey decodes a key exported with ExportKey.
func ImportKey(s string) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return key, nil
}
