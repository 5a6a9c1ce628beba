package repository

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/allisson/burnbox/internal/errors"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// memorySecretRecord is the stored value for a secret in the memory backend.
type memorySecretRecord struct {
	envelope  string
	createdAt time.Time
	expiresAt time.Time
}

// MemorySecretRepository implements Secret persistence in process memory for
// local development and tests. The mutex makes take atomic; a janitor
// goroutine sweeps expired records so an idle instance does not accumulate
// envelopes past their TTL.
type MemorySecretRepository struct {
	mu        sync.Mutex
	records   map[string]memorySecretRecord
	janitor   *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemorySecretRepository creates a new memory Secret repository instance.
// cleanupInterval controls the expired-record sweep; 0 disables it, which is
// fine for tests since Take filters expired records on read anyway.
func NewMemorySecretRepository(cleanupInterval time.Duration) *MemorySecretRepository {
	m := &MemorySecretRepository{
		records: make(map[string]memorySecretRecord),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		m.janitor = time.NewTicker(cleanupInterval)
		go m.cleanupLoop()
	}

	return m
}

// Create stores the secret, rejecting duplicate identifiers.
func (m *MemorySecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[secret.ID]; exists {
		return apperrors.Wrap(apperrors.ErrConflict, "secret id already exists")
	}

	m.records[secret.ID] = memorySecretRecord{
		envelope:  secret.Envelope,
		createdAt: secret.CreatedAt,
		expiresAt: secret.ExpiresAt,
	}

	return nil
}

// Take claims and deletes a live secret under the lock, so concurrent calls
// for the same id observe the record at most once in total.
func (m *MemorySecretRepository) Take(
	ctx context.Context,
	id string,
	now time.Time,
) (*secretsDomain.Secret, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.records[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	delete(m.records, id)

	if !record.expiresAt.After(now) {
		return nil, apperrors.ErrNotFound
	}

	return &secretsDomain.Secret{
		ID:        id,
		Envelope:  record.envelope,
		CreatedAt: record.createdAt,
		ExpiresAt: record.expiresAt,
	}, nil
}

// DeleteExpired removes expired records and reports how many were removed.
func (m *MemorySecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for id, record := range m.records {
		if !record.expiresAt.After(now) {
			delete(m.records, id)
			count++
		}
	}

	return count, nil
}

// cleanupLoop sweeps expired records until Close.
func (m *MemorySecretRepository) cleanupLoop() {
	for {
		select {
		case <-m.janitor.C:
			_, _ = m.DeleteExpired(context.Background(), time.Now().UTC())
		case <-m.done:
			return
		}
	}
}

// Close stops the janitor goroutine. Safe to call multiple times.
func (m *MemorySecretRepository) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		if m.janitor != nil {
			m.janitor.Stop()
		}
	})
	return nil
}
