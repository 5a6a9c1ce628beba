package repository

import (
	"context"
	_ "embed"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/burnbox/internal/errors"
)

// counterKeyPrefix namespaces counter keys so rate counters and secrets can
// share one Redis database.
const counterKeyPrefix = "ratelimit:"

//go:embed increment.lua
var incrementLuaScript string

// RedisCounterRepository implements rate counter persistence on Redis. The
// increment-and-read runs as one Lua script, so the INCR, the first-request
// PEXPIRE, and the TTL readback are a single atomic server-side step.
type RedisCounterRepository struct {
	client redis.UniversalClient
	script *redis.Script
}

// NewRedisCounterRepository creates a new Redis rate counter repository instance.
func NewRedisCounterRepository(client redis.UniversalClient) *RedisCounterRepository {
	return &RedisCounterRepository{
		client: client,
		script: redis.NewScript(incrementLuaScript),
	}
}

// Increment atomically bumps the counter for (class, identifier) and returns
// the post-increment count with the window's live expiry. Run executes the
// script by hash and transparently reloads it when the server does not have
// it cached.
func (r *RedisCounterRepository) Increment(
	ctx context.Context,
	class, identifier string,
	now time.Time,
	window time.Duration,
) (int64, time.Time, error) {
	key := counterKeyPrefix + class + ":" + identifier

	result, err := r.script.Run(ctx, r.client, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, time.Time{}, apperrors.Wrap(err, "failed to increment rate counter")
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return 0, time.Time{}, apperrors.New("unexpected rate counter script reply")
	}

	count, countOK := values[0].(int64)
	ttlMillis, ttlOK := values[1].(int64)
	if !countOK || !ttlOK {
		return 0, time.Time{}, apperrors.New("unexpected rate counter script reply")
	}

	resetAt := now.Add(time.Duration(ttlMillis) * time.Millisecond)

	return count, resetAt, nil
}

// DeleteExpired is a no-op on Redis: key TTLs already purge stale counters
// server-side, so there is never anything to sweep.
func (r *RedisCounterRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
