// Package repository implements envelope persistence for one-shot secrets.
// Four backends share one contract (PostgreSQL, MySQL, Redis, and an
// in-process memory store for development); each delegates the atomic take to
// its native claim-and-delete primitive so no backend ever returns the same
// secret twice.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/burnbox/internal/database"
	apperrors "github.com/allisson/burnbox/internal/errors"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// PostgreSQLSecretRepository implements Secret persistence for PostgreSQL databases.
type PostgreSQLSecretRepository struct {
	db *sql.DB
}

// NewPostgreSQLSecretRepository creates a new PostgreSQL Secret repository instance.
func NewPostgreSQLSecretRepository(db *sql.DB) *PostgreSQLSecretRepository {
	return &PostgreSQLSecretRepository{db: db}
}

// Create inserts a new secret into the PostgreSQL database.
func (p *PostgreSQLSecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO secrets (id, envelope, created_at, expires_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		secret.ID,
		secret.Envelope,
		secret.CreatedAt,
		secret.ExpiresAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create secret")
	}

	return nil
}

// Take atomically claims and deletes a live secret. The single
// DELETE ... RETURNING round-trip guarantees at most one caller ever
// observes the row; expired rows are excluded in the same statement, so an
// expired secret is indistinguishable from one that never existed.
func (p *PostgreSQLSecretRepository) Take(
	ctx context.Context,
	id string,
	now time.Time,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM secrets
			  WHERE id = $1 AND expires_at > $2
			  RETURNING id, envelope, created_at, expires_at`

	var secret secretsDomain.Secret
	err := querier.QueryRowContext(ctx, query, id, now).Scan(
		&secret.ID,
		&secret.Envelope,
		&secret.CreatedAt,
		&secret.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to take secret")
	}

	return &secret, nil
}

// DeleteExpired purges rows whose TTL elapsed and reports how many were removed.
func (p *PostgreSQLSecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM secrets WHERE expires_at <= $1`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired secrets")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count deleted secrets")
	}

	return count, nil
}
