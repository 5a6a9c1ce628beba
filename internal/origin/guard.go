// Package origin validates that state-changing requests come from the
// expected web origin. This is a CSRF-style boundary check: secret creation
// is always guarded, retrieval is read-only and never is.
package origin

import (
	"net/url"
	"strings"

	apperrors "github.com/allisson/burnbox/internal/errors"
)

// Guard checks request provenance headers against the expected host.
type Guard struct {
	expectedHost  string
	previewSuffix string
}

// NewGuard creates a new Guard instance. expectedHost is the host the
// service is published under, without a scheme. previewSuffix optionally
// admits https preview deployments whose host ends with the suffix; a
// leading dot is added when missing so "pages.dev" cannot match
// "evilpages.dev". An empty suffix disables the allowance.
func NewGuard(expectedHost, previewSuffix string) *Guard {
	if previewSuffix != "" && !strings.HasPrefix(previewSuffix, ".") {
		previewSuffix = "." + previewSuffix
	}

	return &Guard{expectedHost: expectedHost, previewSuffix: previewSuffix}
}

// Validate decides whether a state-changing request may proceed based on its
// Origin, Referer and Sec-Fetch-Site headers.
//
// Requests carrying neither Origin nor Referer are allowed only when the
// browser itself vouches for a non-cross-site context (Sec-Fetch-Site
// absent, "none" or "same-origin"); non-browser clients such as curl send no
// fetch metadata and land in the same bucket. When a header is present, the
// effective origin must match the expected host exactly over https (or http,
// for local development) or be an https preview host. Every parse failure or
// mismatch is rejected.
func (g *Guard) Validate(originHeader, refererHeader, secFetchSite string) error {
	effective := originHeader
	if effective == "" {
		effective = refererHeader
	}

	if effective == "" {
		switch secFetchSite {
		case "", "none", "same-origin":
			return nil
		}
		return apperrors.Wrap(apperrors.ErrForbidden, "cross-site request without origin")
	}

	parsed, err := url.Parse(effective)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrForbidden, "unparseable request origin")
	}

	switch parsed.Scheme {
	case "https":
		if parsed.Host == g.expectedHost {
			return nil
		}
		if g.previewSuffix != "" && strings.HasSuffix(parsed.Host, g.previewSuffix) {
			return nil
		}
	case "http":
		// Local development only; previews never run plain http
		if parsed.Host == g.expectedHost {
			return nil
		}
	}

	return apperrors.Wrap(apperrors.ErrForbidden, "request origin not allowed")
}
