package lock

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	owner    string
	deadline time.Time
}

// MemoryLocker is an in-process implementation of
// domain.DistributedLocker. It keeps the same owner-token and TTL
// contract as the redis-backed locker, which makes it usable for tests
// and single-node deployments.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]entry
	now   func() time.Time
}

// NewMemoryLocker creates an empty locker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]entry),
		now:   time.Now,
	}
}

// Acquire sets the key to ownerToken only if it is absent or expired.
// It never blocks.
func (m *MemoryLocker) Acquire(_ context.Context, key, ownerToken string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.locks[key]; ok && e.deadline.After(now) {
		return false, nil
	}

	m.locks[key] = entry{owner: ownerToken, deadline: now.Add(ttl)}
	return true, nil
}

// Release deletes the key only when the stored token matches. An expired
// entry counts as already released.
func (m *MemoryLocker) Release(_ context.Context, key, ownerToken string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[key]
	if !ok || !e.deadline.After(m.now()) || e.owner != ownerToken {
		return false, nil
	}

	delete(m.locks, key)
	return true, nil
}
