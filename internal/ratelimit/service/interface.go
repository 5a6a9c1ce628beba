// Package service implements fixed-window rate limiting decisions on top of
// an atomic counter store. Check consumes quota, CleanupStale sweeps counters
// whose window elapsed on backends without native TTL eviction.
package service

import (
	"context"
	"time"

	ratelimitDomain "github.com/allisson/burnbox/internal/ratelimit/domain"
)

// CounterRepository defines the interface for fixed-window counter storage.
//
// Increment must be a single atomic increment-and-read on the counter keyed
// by (class, identifier): the call that transitions the counter from absent
// or expired to 1 also starts a fresh window of the given length, and no
// interleaving of concurrent calls may initialize the same window twice or
// lose an increment. It returns the post-increment count and the window's
// live expiry.
type CounterRepository interface {
	Increment(ctx context.Context, class, identifier string, now time.Time, window time.Duration) (int64, time.Time, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// RateLimiter defines the interface for request quota decisions.
type RateLimiter interface {
	// Check consumes one unit of quota for (class, identifier) and decides
	// whether the request may proceed. On a counter store failure it fails
	// closed: the returned decision denies the request, and the store error
	// comes back alongside it for logging. Err is nil for a plain quota
	// denial.
	Check(ctx context.Context, identifier, class string, limit int64, window time.Duration) (*ratelimitDomain.Decision, error)

	// CleanupStale removes counters whose window elapsed and reports how many
	// were removed.
	CleanupStale(ctx context.Context) (int64, error)
}
