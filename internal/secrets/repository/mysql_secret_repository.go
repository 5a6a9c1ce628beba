package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/burnbox/internal/database"
	apperrors "github.com/allisson/burnbox/internal/errors"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// MySQLSecretRepository implements Secret persistence for MySQL databases.
type MySQLSecretRepository struct {
	db        *sql.DB
	txManager database.TxManager
}

// NewMySQLSecretRepository creates a new MySQL Secret repository instance.
func NewMySQLSecretRepository(db *sql.DB) *MySQLSecretRepository {
	return &MySQLSecretRepository{db: db, txManager: database.NewTxManager(db)}
}

// Create inserts a new secret into the MySQL database.
func (m *MySQLSecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO secrets (id, envelope, created_at, expires_at)
			  VALUES (?, ?, ?, ?)`

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

// Take atomically claims and deletes a live secret. MySQL has no
// DELETE ... RETURNING, so the claim runs as SELECT ... FOR UPDATE plus
// DELETE inside one transaction: the row lock serializes concurrent takers
// and every loser observes an absent row after commit.
func (m *MySQLSecretRepository) Take(
	ctx context.Context,
	id string,
	now time.Time,
) (*secretsDomain.Secret, error) {
	var secret secretsDomain.Secret

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		querier := database.GetTx(ctx, m.db)

		query := `SELECT id, envelope, created_at, expires_at
				  FROM secrets
				  WHERE id = ? AND expires_at > ?
				  FOR UPDATE`

		err := querier.QueryRowContext(ctx, query, id, now).Scan(
			&secret.ID,
			&secret.Envelope,
			&secret.CreatedAt,
			&secret.ExpiresAt,
		)
		if err != nil {
			if err == sql.ErrNoRows {
				return apperrors.ErrNotFound
			}
			return apperrors.Wrap(err, "failed to lock secret")
		}

		deleteQuery := `DELETE FROM secrets WHERE id = ?`
		if _, err := querier.ExecContext(ctx, deleteQuery, id); err != nil {
			return apperrors.Wrap(err, "failed to delete taken secret")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &secret, nil
}

// DeleteExpired purges rows whose TTL elapsed and reports how many were removed.
func (m *MySQLSecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM secrets WHERE expires_at <= ?`

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
