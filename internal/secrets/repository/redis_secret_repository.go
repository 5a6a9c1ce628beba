package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/burnbox/internal/errors"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// secretKeyPrefix namespaces secret keys so rate counters and secrets can
// share one Redis database.
const secretKeyPrefix = "secret:"

// redisSecretRecord is the stored JSON value for a secret.
type redisSecretRecord struct {
	Envelope  string    `json:"envelope"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisSecretRepository implements Secret persistence on Redis. TTL expiry is
// enforced by the server itself and the one-shot take maps to GETDEL, a
// single atomic round-trip.
type RedisSecretRepository struct {
	client redis.UniversalClient
}

// NewRedisSecretRepository creates a new Redis Secret repository instance.
func NewRedisSecretRepository(client redis.UniversalClient) *RedisSecretRepository {
	return &RedisSecretRepository{client: client}
}

// Create stores the secret under its key with the record's full TTL.
func (r *RedisSecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	payload, err := json.Marshal(redisSecretRecord{
		Envelope:  secret.Envelope,
		CreatedAt: secret.CreatedAt,
		ExpiresAt: secret.ExpiresAt,
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to encode secret")
	}

	ttl := secret.ExpiresAt.Sub(secret.CreatedAt)
	if ttl <= 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "secret ttl must be positive")
	}

	if err := r.client.Set(ctx, secretKeyPrefix+secret.ID, payload, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store secret")
	}

	return nil
}

// Take atomically claims and deletes a live secret via GETDEL: concurrent
// callers race on the server side and exactly one receives the value.
func (r *RedisSecretRepository) Take(
	ctx context.Context,
	id string,
	now time.Time,
) (*secretsDomain.Secret, error) {
	payload, err := r.client.GetDel(ctx, secretKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to take secret")
	}

	var record redisSecretRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode secret")
	}

	// The server evicts on TTL by itself; this guard only covers clock skew
	// between the application and the Redis server.
	if !record.ExpiresAt.After(now) {
		return nil, apperrors.ErrNotFound
	}

	return &secretsDomain.Secret{
		ID:        id,
		Envelope:  record.Envelope,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

// DeleteExpired is a no-op on Redis: key TTLs already purge expired secrets
// server-side, so there is never anything to sweep.
func (r *RedisSecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
