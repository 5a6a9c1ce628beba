package service

import (
	"context"
	"time"

	apperrors "github.com/allisson/burnbox/internal/errors"
	ratelimitDomain "github.com/allisson/burnbox/internal/ratelimit/domain"
)

// Limiter implements the RateLimiter interface over a CounterRepository.
type Limiter struct {
	counterRepo CounterRepository
	clock       Clock
}

// NewLimiter creates a new Limiter instance backed by the given counter store.
func NewLimiter(counterRepo CounterRepository) *Limiter {
	return &Limiter{
		counterRepo: counterRepo,
		clock:       &SystemClock{},
	}
}

// WithClock sets a custom clock (for testing).
func (l *Limiter) WithClock(clock Clock) *Limiter {
	l.clock = clock
	return l
}

// Check consumes one unit of quota for (class, identifier) and decides
// whether the request may proceed. Quota bypass is never traded for
// availability: an empty identifier or a counter store failure denies the
// request with a synthetic reset one window away, returning the cause
// alongside the denial so callers can log it.
func (l *Limiter) Check(
	ctx context.Context,
	identifier, class string,
	limit int64,
	window time.Duration,
) (*ratelimitDomain.Decision, error) {
	now := l.clock.Now().UTC()

	// An empty identifier would pool unrelated callers into one shared
	// counter; deny instead of accounting against it.
	if identifier == "" {
		return deniedDecision(now, window), apperrors.Wrap(apperrors.ErrInvalidInput, "rate limit identifier is empty")
	}

	count, resetAt, err := l.counterRepo.Increment(ctx, class, identifier, now, window)
	if err != nil {
		return deniedDecision(now, window), apperrors.Wrap(err, "rate limit counter unavailable")
	}

	if count > limit {
		return &ratelimitDomain.Decision{
			Allowed:   false,
			Remaining: 0,
			ResetAt:   resetAt.UTC(),
		}, nil
	}

	return &ratelimitDomain.Decision{
		Allowed:   true,
		Remaining: limit - count,
		ResetAt:   resetAt.UTC(),
	}, nil
}

// CleanupStale removes counters whose window elapsed and reports how many
// were removed.
func (l *Limiter) CleanupStale(ctx context.Context) (int64, error) {
	return l.counterRepo.DeleteExpired(ctx, l.clock.Now().UTC())
}

// deniedDecision is the fail-closed outcome: no quota, reset a full window out.
func deniedDecision(now time.Time, window time.Duration) *ratelimitDomain.Decision {
	return &ratelimitDomain.Decision{
		Allowed:   false,
		Remaining: 0,
		ResetAt:   now.Add(window),
	}
}
