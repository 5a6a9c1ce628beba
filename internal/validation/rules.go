// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/burnbox/internal/errors"
)

var (
	// secretIDRegex matches the 21-character identifier alphabet used for
	// stored secrets.
	secretIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{21}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// SecretID validates the identifier format for stored secrets: exactly 21
// characters from [A-Za-z0-9_-].
var SecretID = validation.NewStringRuleWithError(
	func(s string) bool {
		return secretIDRegex.MatchString(s)
	},
	validation.NewError("validation_secret_id", "must be a valid secret identifier"),
)
