// Package password synthesizes random passwords from character-class policies
// and scores passwords for strength. Synthesis draws exclusively from the
// rejection-sampled random source, so no character is statistically favored.
package password

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/burnbox/internal/errors"
	"github.com/allisson/burnbox/internal/random"
)

// Character class alphabets, concatenated in canonical order
// (lowercase, uppercase, numbers, symbols) when building the active charset.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Password length bounds accepted by Policy.
const (
	MinLength = 8
	MaxLength = 128
)

// ErrNoClassEnabled indicates a policy with every character class disabled.
// Such a policy has an empty charset and is rejected before synthesis.
var ErrNoClassEnabled = apperrors.Wrap(apperrors.ErrInvalidInput, "no character class enabled")

// Policy describes the shape of a synthesized password.
type Policy struct {
	// Length is the exact number of characters to produce, between 8 and 128.
	Length int

	// Uppercase enables A-Z.
	Uppercase bool

	// Lowercase enables a-z.
	Lowercase bool

	// Numbers enables 0-9.
	Numbers bool

	// Symbols enables the punctuation set.
	Symbols bool
}

// DefaultPolicy returns a 16-character policy with every class enabled.
func DefaultPolicy() Policy {
	return Policy{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Validate checks the length bounds and requires at least one enabled class.
func (p Policy) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Length, validation.Min(MinLength), validation.Max(MaxLength)),
	); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}

	if !p.Uppercase && !p.Lowercase && !p.Numbers && !p.Symbols {
		return ErrNoClassEnabled
	}

	return nil
}

// classes returns the enabled class alphabets in canonical order.
func (p Policy) classes() []string {
	var out []string
	if p.Lowercase {
		out = append(out, LowercaseChars)
	}
	if p.Uppercase {
		out = append(out, UppercaseChars)
	}
	if p.Numbers {
		out = append(out, NumberChars)
	}
	if p.Symbols {
		out = append(out, SymbolChars)
	}
	return out
}

// Generate synthesizes a password honoring policy. After the uniform fill,
// one position per enabled class (from index 0 upward) is overwritten with a
// symbol from that class alone, so every enabled class appears even when the
// random fill missed it. A final Fisher-Yates shuffle hides which positions
// carried the guaranteed symbols.
func Generate(policy Policy) (string, error) {
	if err := policy.Validate(); err != nil {
		return "", err
	}

	classes := policy.classes()
	charset := strings.Join(classes, "")

	buf := make([]byte, policy.Length)
	for i := range buf {
		idx, err := random.Int(len(charset))
		if err != nil {
			return "", fmt.Errorf("failed to draw password symbol: %w", err)
		}
		buf[i] = charset[idx]
	}

	for i, class := range classes {
		idx, err := random.Int(len(class))
		if err != nil {
			return "", fmt.Errorf("failed to draw class symbol: %w", err)
		}
		buf[i] = class[idx]
	}

	if err := random.Shuffle(buf); err != nil {
		return "", fmt.Errorf("failed to shuffle password: %w", err)
	}

	return string(buf), nil
}
