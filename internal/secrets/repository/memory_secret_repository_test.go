package repository

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/burnbox/internal/errors"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

func TestNewMemorySecretRepository(t *testing.T) {
	t.Run("without cleanup interval", func(t *testing.T) {
		repo := NewMemorySecretRepository(0)
		defer repo.Close()

		assert.NotNil(t, repo)
		assert.Nil(t, repo.janitor, "zero interval should not start a janitor")
	})

	t.Run("with cleanup interval", func(t *testing.T) {
		repo := NewMemorySecretRepository(time.Minute)
		defer repo.Close()

		assert.NotNil(t, repo.janitor)
	})
}

func TestMemorySecretRepository_CreateAndTake(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	secret := newTestSecret(t, time.Hour)
	err := repo.Create(ctx, secret)
	require.NoError(t, err)

	taken, err := repo.Take(ctx, secret.ID, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, taken)

	assert.Equal(t, secret.ID, taken.ID)
	assert.Equal(t, secret.Envelope, taken.Envelope)
	assert.Equal(t, secret.CreatedAt, taken.CreatedAt)
	assert.Equal(t, secret.ExpiresAt, taken.ExpiresAt)
}

func TestMemorySecretRepository_Create_DuplicateID(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	secret1 := newTestSecret(t, time.Hour)
	err := repo.Create(ctx, secret1)
	require.NoError(t, err)

	secret2 := newTestSecret(t, time.Hour)
	secret2.ID = secret1.ID

	err = repo.Create(ctx, secret2)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestMemorySecretRepository_Take_NotFound(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()

	secret, err := repo.Take(context.Background(), "V1StGXR8_Z5jdHi6B-myT", time.Now().UTC())

	assert.Nil(t, secret)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySecretRepository_Take_SecondCallNotFound(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	secret := newTestSecret(t, time.Hour)
	err := repo.Create(ctx, secret)
	require.NoError(t, err)

	_, err = repo.Take(ctx, secret.ID, time.Now().UTC())
	require.NoError(t, err)

	taken, err := repo.Take(ctx, secret.ID, time.Now().UTC())
	assert.Nil(t, taken)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySecretRepository_Take_Expired(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := &secretsDomain.Secret{
		ID:        "V1StGXR8_Z5jdHi6B-myT",
		Envelope:  "ZW52ZWxvcGU",
		CreatedAt: base,
		ExpiresAt: base.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, secret))

	// Expiry is exclusive: a take at exactly expires_at already misses.
	taken, err := repo.Take(ctx, secret.ID, base.Add(time.Hour))
	assert.Nil(t, taken)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySecretRepository_Take_ExpiredRecordIsDropped(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := &secretsDomain.Secret{
		ID:        "V1StGXR8_Z5jdHi6B-myT",
		Envelope:  "ZW52ZWxvcGU",
		CreatedAt: base,
		ExpiresAt: base.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, secret))

	_, err := repo.Take(ctx, secret.ID, base.Add(2*time.Hour))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The expired record was removed on read, so the sweep finds nothing.
	count, err := repo.DeleteExpired(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemorySecretRepository_Take_ConcurrentSingleWinner(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	secret := newTestSecret(t, time.Hour)
	require.NoError(t, repo.Create(ctx, secret))

	var winners int64
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			_, err := repo.Take(ctx, secret.ID, time.Now().UTC())
			if err != nil {
				if apperrors.Is(err, apperrors.ErrNotFound) {
					return nil
				}
				return err
			}
			atomic.AddInt64(&winners, 1)
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int64(1), winners, "exactly one concurrent take should succeed")
}

func TestMemorySecretRepository_DeleteExpired(t *testing.T) {
	repo := NewMemorySecretRepository(0)
	defer repo.Close()
	ctx := context.Background()

	live := newTestSecret(t, time.Hour)
	require.NoError(t, repo.Create(ctx, live))

	expired1 := newTestSecret(t, -time.Hour)
	require.NoError(t, repo.Create(ctx, expired1))

	expired2 := newTestSecret(t, -time.Minute)
	require.NoError(t, repo.Create(ctx, expired2))

	count, err := repo.DeleteExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The live secret must survive the sweep
	taken, err := repo.Take(ctx, live.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, live.Envelope, taken.Envelope)
}

func TestMemorySecretRepository_JanitorSweepsExpired(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	repo := NewMemorySecretRepository(10 * time.Millisecond)
	ctx := context.Background()

	expired := newTestSecret(t, -time.Hour)
	require.NoError(t, repo.Create(ctx, expired))

	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.records) == 0
	}, time.Second, 10*time.Millisecond, "janitor should sweep the expired record")

	require.NoError(t, repo.Close())
}

func TestMemorySecretRepository_Close_Idempotent(t *testing.T) {
	repo := NewMemorySecretRepository(time.Minute)

	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())
}
