package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	ratelimitDomain "github.com/allisson/burnbox/internal/ratelimit/domain"
	"github.com/allisson/burnbox/internal/testutil"
)

func TestNewRedisCounterRepository(t *testing.T) {
	testutil.SkipIfNoRedis(t)

	client := testutil.SetupRedis(t)
	defer testutil.TeardownRedis(t, client)

	repo := NewRedisCounterRepository(client)
	assert.NotNil(t, repo)
}

func TestRedisCounterRepository_Increment(t *testing.T) {
	testutil.SkipIfNoRedis(t)

	client := testutil.SetupRedis(t)
	defer testutil.TeardownRedis(t, client)

	repo := NewRedisCounterRepository(client)
	ctx := context.Background()
	now := time.Now().UTC()

	count, resetAt, err := repo.Increment(ctx, ratelimitDomain.ClassShare, "203.0.113.7", now, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.WithinDuration(t, now.Add(time.Minute), resetAt, 2*time.Second)
}

func TestRedisCounterRepository_Increment_Sequential(t *testing.T) {
	testutil.SkipIfNoRedis(t)

	client := testutil.SetupRedis(t)
	defer testutil.TeardownRedis(t, client)

	repo := NewRedisCounterRepository(client)
	ctx := context.Background()
	now := time.Now().UTC()

	for want := int64(1); want <= 3; want++ {
		count, resetAt, err := repo.Increment(ctx, ratelimitDomain.ClassShare, "203.0.113.7", now, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, want, count)
		// The TTL was set by the first request and only shrinks afterwards
		assert.WithinDuration(t, now.Add(time.Minute), resetAt, 2*time.Second)
	}
}

func TestRedisCounterRepository_Increment_WindowExpiry(t *testing.T) {
	testutil.SkipIfNoRedis(t)

	client := testutil.SetupRedis(t)
	defer testutil.TeardownRedis(t, client)

	repo := NewRedisCounterRepository(client)
	ctx := context.Background()

	count, _, err := repo.Increment(ctx, ratelimitDomain.ClassShare, "203.0.113.7", time.Now().UTC(), 100*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// The server evicts the key at the end of the window
	time.Sleep(150 * time.Millisecond)

	count, _, err = repo.Increment(ctx, ratelimitDomain.ClassShare, "203.0.113.7", time.Now().UTC(), 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisCounterRepository_Increment_DisjointClasses(t *testing.T) {
	testutil.SkipIfNoRedis(t)

	client := testutil.SetupRedis(t)
	defer testutil.TeardownRedis(t, client)

	repo := NewRedisCounterRepository(client)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		_, _, err := repo.Increment(ctx, ratelimitDomain.ClassShare, "203.0.113.7", now, time.Minute)
		require.NoError(t, err)
	}

	count, _, err := repo.Increment(ctx, ratelimitDomain.ClassRetrieve, "203.0.113.7", now, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "exhausting one endpoint class must not starve the other")
}

func TestRedisCounterRepository_Increment_Concurrent(t *testing.T) {
	testutil.SkipIfNoRedis(t)

	client := testutil.SetupRedis(t)
	defer testutil.TeardownRedis(t, client)

	repo := NewRedisCounterRepository(client)
	ctx := context.Background()
	now := time.Now().UTC()

	const goroutines = 16

	var mu sync.Mutex
	seen := make(map[int64]bool, goroutines)

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			count, _, err := repo.Increment(ctx, ratelimitDomain.ClassShare, "203.0.113.7", now, time.Minute)
			if err != nil {
				return err
			}
			mu.Lock()
			seen[count] = true
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// The script runs atomically server-side: the returned counts must be a
	// permutation of 1..goroutines, with no lost updates.
	assert.Len(t, seen, goroutines)
	for want := int64(1); want <= goroutines; want++ {
		assert.True(t, seen[want], "count %d was never returned", want)
	}
}

func TestRedisCounterRepository_DeleteExpired(t *testing.T) {
	// Key TTLs purge stale counters server-side; the sweep never touches Redis.
	repo := NewRedisCounterRepository(nil)

	count, err := repo.DeleteExpired(context.Background(), time.Now().UTC())

	assert.NoError(t, err)
	assert.Zero(t, count)
}
