package origin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/burnbox/internal/errors"
)

func TestGuard_Validate(t *testing.T) {
	guard := NewGuard("burnbox.example.com", ".pages.dev")

	tests := []struct {
		name         string
		origin       string
		referer      string
		secFetchSite string
		shouldErr    bool
		errMsg       string
	}{
		{
			name: "no headers from non-browser client",
		},
		{
			name:         "no headers with sec-fetch-site none",
			secFetchSite: "none",
		},
		{
			name:         "no headers with same-origin navigation",
			secFetchSite: "same-origin",
		},
		{
			name:         "cross-site fetch without origin",
			secFetchSite: "cross-site",
			shouldErr:    true,
			errMsg:       "cross-site request without origin",
		},
		{
			name:         "same-site fetch without origin",
			secFetchSite: "same-site",
			shouldErr:    true,
			errMsg:       "cross-site request without origin",
		},
		{
			name:   "matching https origin",
			origin: "https://burnbox.example.com",
		},
		{
			name:   "matching http origin for local development",
			origin: "http://burnbox.example.com",
		},
		{
			name:      "different host",
			origin:    "https://evil.example.com",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:      "subdomain of the expected host",
			origin:    "https://www.burnbox.example.com",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:      "port mismatch",
			origin:    "https://burnbox.example.com:8443",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:      "opaque null origin",
			origin:    "null",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:    "referer fallback with path",
			referer: "https://burnbox.example.com/share/V1StGXR8_Z5jdHi6B-myT",
		},
		{
			name:      "referer from another site",
			referer:   "https://evil.example.com/page",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:      "origin takes precedence over referer",
			origin:    "https://evil.example.com",
			referer:   "https://burnbox.example.com/",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:   "https preview deployment",
			origin: "https://pr-42.burnbox.pages.dev",
		},
		{
			name:      "preview deployment over plain http",
			origin:    "http://pr-42.burnbox.pages.dev",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:      "non-web scheme",
			origin:    "chrome-extension://abcdefghij",
			shouldErr: true,
			errMsg:    "request origin not allowed",
		},
		{
			name:      "malformed origin header",
			origin:    "://missing-scheme",
			shouldErr: true,
			errMsg:    "unparseable request origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Validate(tt.origin, tt.referer, tt.secFetchSite)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuard_Validate_NoPreviewSuffix(t *testing.T) {
	guard := NewGuard("burnbox.example.com", "")

	err := guard.Validate("https://pr-42.burnbox.pages.dev", "", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "request origin not allowed")
}

func TestGuard_Validate_SuffixNormalization(t *testing.T) {
	// Configured without a leading dot; the guard must add one so the suffix
	// only matches whole subdomain labels.
	guard := NewGuard("burnbox.example.com", "pages.dev")

	err := guard.Validate("https://app.pages.dev", "", "")
	assert.NoError(t, err)

	err = guard.Validate("https://evilpages.dev", "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "request origin not allowed")
}

func TestGuard_Validate_ForbiddenChain(t *testing.T) {
	guard := NewGuard("burnbox.example.com", "")

	err := guard.Validate("https://evil.example.com", "", "")

	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}
