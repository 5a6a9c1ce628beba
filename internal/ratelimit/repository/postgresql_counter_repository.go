// Package repository implements fixed-window counter persistence for rate
// limiting. Four backends share one contract (PostgreSQL, MySQL, Redis, and
// an in-process memory store for development); each performs the
// increment-and-read as a single atomic operation so concurrent requests can
// never split a window initialization.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/burnbox/internal/database"
	apperrors "github.com/allisson/burnbox/internal/errors"
)

// PostgreSQLCounterRepository implements rate counter persistence for PostgreSQL databases.
type PostgreSQLCounterRepository struct {
	db *sql.DB
}

// NewPostgreSQLCounterRepository creates a new PostgreSQL rate counter repository instance.
func NewPostgreSQLCounterRepository(db *sql.DB) *PostgreSQLCounterRepository {
	return &PostgreSQLCounterRepository{db: db}
}

// Increment atomically bumps the counter for (class, identifier) and returns
// the post-increment count with the window's live expiry. The single upsert
// round-trip restarts the counter at 1 when its window already elapsed, so
// two concurrent first requests can never both initialize the window.
func (p *PostgreSQLCounterRepository) Increment(
	ctx context.Context,
	class, identifier string,
	now time.Time,
	window time.Duration,
) (int64, time.Time, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO rate_counters (endpoint_class, identifier, count, expires_at)
			  VALUES ($1, $2, 1, $3)
			  ON CONFLICT (endpoint_class, identifier) DO UPDATE SET
				  count = CASE WHEN rate_counters.expires_at <= $4 THEN 1 ELSE rate_counters.count + 1 END,
				  expires_at = CASE WHEN rate_counters.expires_at <= $4 THEN $3 ELSE rate_counters.expires_at END
			  RETURNING count, expires_at`

	var count int64
	var resetAt time.Time
	err := querier.QueryRowContext(ctx, query, class, identifier, now.Add(window), now).Scan(&count, &resetAt)
	if err != nil {
		return 0, time.Time{}, apperrors.Wrap(err, "failed to increment rate counter")
	}

	return count, resetAt, nil
}

// DeleteExpired purges counters whose window elapsed and reports how many were removed.
func (p *PostgreSQLCounterRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM rate_counters WHERE expires_at <= $1`

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
