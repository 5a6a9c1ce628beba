// Package usecase implements business logic orchestration for one-shot
// secrets. Share stores a client-encrypted envelope under a fresh unguessable
// identifier, Retrieve performs the single atomic take, and CleanupExpired
// sweeps expired envelopes on backends without native TTL eviction.
package usecase

import (
	"context"
	"time"

	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// SecretRepository defines the interface for Secret persistence operations.
// Take must be atomic: for any identifier, at most one call ever returns the
// secret, regardless of concurrency or process count. A read failure must be
// reported as an error, never as an absent secret.
type SecretRepository interface {
	Create(ctx context.Context, secret *secretsDomain.Secret) error
	Take(ctx context.Context, id string, now time.Time) (*secretsDomain.Secret, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SecretUseCase defines the interface for one-shot secret business logic.
type SecretUseCase interface {
	Share(ctx context.Context, envelope string) (*secretsDomain.Secret, error)
	Retrieve(ctx context.Context, id string) (*secretsDomain.Secret, error)
	CleanupExpired(ctx context.Context) (int64, error)
}
