package repository

import (
	"context"
	"sync"
	"time"
)

// counterKey identifies one fixed-window counter.
type counterKey struct {
	class      string
	identifier string
}

// memoryCounterRecord is the stored value for a counter in the memory backend.
type memoryCounterRecord struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterRepository implements rate counter persistence in process
// memory for local development and tests. The mutex makes increment-and-read
// atomic; a janitor goroutine sweeps stale counters so identifiers that never
// return do not accumulate entries forever.
type MemoryCounterRepository struct {
	mu        sync.Mutex
	counters  map[counterKey]*memoryCounterRecord
	janitor   *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryCounterRepository creates a new memory rate counter repository
// instance. cleanupInterval controls the stale-counter sweep; 0 disables it,
// which is fine for tests since Increment restarts expired windows on touch
// anyway.
func NewMemoryCounterRepository(cleanupInterval time.Duration) *MemoryCounterRepository {
	m := &MemoryCounterRepository{
		counters: make(map[counterKey]*memoryCounterRecord),
		done:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		m.janitor = time.NewTicker(cleanupInterval)
		go m.cleanupLoop()
	}

	return m
}

// Increment bumps the counter for (class, identifier) under the lock and
// returns the post-increment count with the window's expiry. An expired
// window restarts at count 1 with a fresh expiry.
func (m *MemoryCounterRepository) Increment(
	ctx context.Context,
	class, identifier string,
	now time.Time,
	window time.Duration,
) (int64, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := counterKey{class: class, identifier: identifier}

	record, exists := m.counters[key]
	if !exists || !record.expiresAt.After(now) {
		record = &memoryCounterRecord{expiresAt: now.Add(window)}
		m.counters[key] = record
	}

	record.count++

	return record.count, record.expiresAt, nil
}

// DeleteExpired removes stale counters and reports how many were removed.
func (m *MemoryCounterRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for key, record := range m.counters {
		if !record.expiresAt.After(now) {
			delete(m.counters, key)
			count++
		}
	}

	return count, nil
}

// cleanupLoop sweeps stale counters until Close.
func (m *MemoryCounterRepository) cleanupLoop() {
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
func (m *MemoryCounterRepository) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		if m.janitor != nil {
			m.janitor.Stop()
		}
	})
	return nil
}
