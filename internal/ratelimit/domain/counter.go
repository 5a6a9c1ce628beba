// Package domain defines the core domain models for request rate limiting.
// Quota is accounted per (endpoint class, caller identifier) pair in fixed
// windows: the counter resets entirely when its window expires, it never
// slides.
package domain

import "time"

// Endpoint classes with disjoint counters. Exhausting one class never
// starves the other.
const (
	// ClassShare covers secret creation.
	ClassShare = "share"

	// ClassRetrieve covers secret retrieval.
	ClassRetrieve = "retrieve"
)

// Decision is the outcome of a rate limit check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Remaining is the quota left in the current window. Zero when denied.
	Remaining int64
	// ResetAt is the UTC timestamp when the current window expires and the
	// counter starts fresh.
	ResetAt time.Time
}
