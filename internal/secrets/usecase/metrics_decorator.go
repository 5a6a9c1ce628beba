package usecase

import (
	"context"
	"time"

	"github.com/allisson/burnbox/internal/metrics"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// secretUseCaseWithMetrics decorates SecretUseCase with metrics instrumentation.
type secretUseCaseWithMetrics struct {
	next    SecretUseCase
	metrics metrics.BusinessMetrics
}

// NewSecretUseCaseWithMetrics wraps a SecretUseCase with metrics recording.
func NewSecretUseCaseWithMetrics(useCase SecretUseCase, m metrics.BusinessMetrics) SecretUseCase {
	return &secretUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Share records metrics for share operations.
func (s *secretUseCaseWithMetrics) Share(
	ctx context.Context,
	envelope string,
) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.Share(ctx, envelope)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", "secret_share", status)
	s.metrics.RecordDuration(ctx, "secrets", "secret_share", time.Since(start), status)

	return secret, err
}

// Retrieve records metrics for retrieve operations.
func (s *secretUseCaseWithMetrics) Retrieve(
	ctx context.Context,
	id string,
) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.Retrieve(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", "secret_retrieve", status)
	s.metrics.RecordDuration(ctx, "secrets", "secret_retrieve", time.Since(start), status)

	return secret, err
}

// CleanupExpired records metrics for expired-envelope sweeps.
func (s *secretUseCaseWithMetrics) CleanupExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := s.next.CleanupExpired(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", "cleanup_expired", status)
	s.metrics.RecordDuration(ctx, "secrets", "cleanup_expired", time.Since(start), status)

	return count, err
}
