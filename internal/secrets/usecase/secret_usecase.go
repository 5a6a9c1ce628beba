package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/burnbox/internal/errors"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// secretUseCase implements the SecretUseCase interface for one-shot secrets.
type secretUseCase struct {
	secretRepo SecretRepository
	ttl        time.Duration
}

// NewSecretUseCase creates a new secret use case instance. Non-positive TTLs
// fall back to the domain default.
func NewSecretUseCase(secretRepo SecretRepository, ttl time.Duration) SecretUseCase {
	if ttl <= 0 {
		ttl = secretsDomain.DefaultTTL
	}
	return &secretUseCase{secretRepo: secretRepo, ttl: ttl}
}

// Share stores a client-encrypted envelope under a fresh identifier. The
// envelope is opaque to the service; only its size bounds are checked here.
func (s *secretUseCase) Share(ctx context.Context, envelope string) (*secretsDomain.Secret, error) {
	if err := secretsDomain.ValidateEnvelope(envelope); err != nil {
		return nil, err
	}

	secret, err := secretsDomain.NewSecret(envelope, s.ttl)
	if err != nil {
		return nil, err
	}

	if err := s.secretRepo.Create(ctx, secret); err != nil {
		return nil, storageError(err)
	}

	return secret, nil
}

// Retrieve performs the one-shot take. Absent, expired, and already-taken
// secrets all surface as ErrSecretNotFound; store failures surface as
// ErrStorageUnavailable so a degraded backend never reads as a burned secret.
func (s *secretUseCase) Retrieve(ctx context.Context, id string) (*secretsDomain.Secret, error) {
	if err := secretsDomain.ValidateID(id); err != nil {
		return nil, err
	}

	secret, err := s.secretRepo.Take(ctx, id, time.Now().UTC())
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, storageError(err)
	}

	return secret, nil
}

// CleanupExpired sweeps expired envelopes and reports how many were removed.
func (s *secretUseCase) CleanupExpired(ctx context.Context) (int64, error) {
	count, err := s.secretRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, storageError(err)
	}
	return count, nil
}

// storageError marks a repository failure as a storage outage.
func storageError(err error) error {
	return apperrors.Wrap(apperrors.ErrStorageUnavailable, err.Error())
}
