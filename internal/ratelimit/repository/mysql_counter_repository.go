package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/burnbox/internal/database"
	apperrors "github.com/allisson/burnbox/internal/errors"
)

// MySQLCounterRepository implements rate counter persistence for MySQL databases.
type MySQLCounterRepository struct {
	db        *sql.DB
	txManager database.TxManager
}

// NewMySQLCounterRepository creates a new MySQL rate counter repository instance.
func NewMySQLCounterRepository(db *sql.DB) *MySQLCounterRepository {
	return &MySQLCounterRepository{db: db, txManager: database.NewTxManager(db)}
}

// Increment atomically bumps the counter for (class, identifier) and returns
// the post-increment count with the window's live expiry. MySQL upserts
// cannot return the row, so the read-back runs in the same transaction under
// the row lock the upsert still holds; a concurrent increment blocks until
// commit and then sees this one's result.
func (m *MySQLCounterRepository) Increment(
	ctx context.Context,
	class, identifier string,
	now time.Time,
	window time.Duration,
) (int64, time.Time, error) {
	var count int64
	var resetAt time.Time

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		querier := database.GetTx(ctx, m.db)

		// MySQL evaluates upsert assignments left to right: count must come
		// first so the expires_at IF sees the post-reset count and refreshes
		// the window exactly when the counter restarted at 1.
		upsert := `INSERT INTO rate_counters (endpoint_class, identifier, count, expires_at)
				   VALUES (?, ?, 1, ?)
				   ON DUPLICATE KEY UPDATE
					   count = IF(expires_at <= ?, 1, count + 1),
					   expires_at = IF(count = 1, VALUES(expires_at), expires_at)`

		if _, err := querier.ExecContext(ctx, upsert, class, identifier, now.Add(window), now); err != nil {
			return apperrors.Wrap(err, "failed to increment rate counter")
		}

		query := `SELECT count, expires_at FROM rate_counters
				  WHERE endpoint_class = ? AND identifier = ?`

		if err := querier.QueryRowContext(ctx, query, class, identifier).Scan(&count, &resetAt); err != nil {
			return apperrors.Wrap(err, "failed to read rate counter")
		}

		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	return count, resetAt, nil
}

// DeleteExpired purges counters whose window elapsed and reports how many were removed.
func (m *MySQLCounterRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM rate_counters WHERE expires_at <= ?`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete stale rate counters")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count deleted rate counters")
	}

	return count, nil
}
