// Package random provides uniform random draws over crypto/rand for callers
// that assemble identifiers and passwords from small alphabets.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) {
	if n < 1 {
		return nil, errors.New("n must be at least 1")
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return b, nil
}

// Int returns a uniform random value in [0, n). n must be between 1 and 256.
// Single bytes are drawn from crypto/rand and values at or above the largest
// multiple of n below 256 are discarded, so no residue of the byte range is
// over-represented (rejection sampling, never a bare modulo reduction).
func Int(n int) (int, error) {
	if n < 1 {
		return 0, errors.New("n must be at least 1")
	}
	if n > 256 {
		return 0, errors.New("n must not exceed 256")
	}

	limit := 256 - (256 % n)

	var b [1]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("failed to read random byte: %w", err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}

// Shuffle permutes b in place with a Fisher-Yates pass whose indices come
// from Int, so every permutation is equally likely. Slices longer than 256
// bytes are rejected.
func Shuffle(b []byte) error {
	if len(b) > 256 {
		return errors.New("slice must not exceed 256 bytes")
	}

	for i := len(b) - 1; i > 0; i-- {
		j, err := Int(i + 1)
		if err != nil {
			return fmt.Errorf("failed to pick swap index: %w", err)
		}
		b[i], b[j] = b[j], b[i]
	}

	return nil
}
