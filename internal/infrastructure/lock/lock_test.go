package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLocker_AcquireAndConflict(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	ok, err := locker.Acquire(ctx, "deduct_lock:p1", "owner-a", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = locker.Acquire(ctx, "deduct_lock:p1", "owner-b", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok, "second acquire on a held lock must fail fast")

	// Different key is independent
	ok, err = locker.Acquire(ctx, "deduct_lock:p2", "owner-b", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLocker_ReleaseWrongOwnerIsNoop(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	ok, _ := locker.Acquire(ctx, "approve:log1", "owner-a", time.Minute)
	assert.True(t, ok)

	released, err := locker.Release(ctx, "approve:log1", "owner-b")
	assert.NoError(t, err)
	assert.False(t, released)

	// Key must still be held by owner-a
	ok, _ = locker.Acquire(ctx, "approve:log1", "owner-c", time.Minute)
	assert.False(t, ok)

	released, err = locker.Release(ctx, "approve:log1", "owner-a")
	assert.NoError(t, err)
	assert.True(t, released)

	// Now free again
	ok, _ = locker.Acquire(ctx, "approve:log1", "owner-c", time.Minute)
	assert.True(t, ok)
}

func TestMemoryLocker_ExpiryFreesTheKey(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	current := time.Now()
	locker.now = func() time.Time { return current }

	ok, _ := locker.Acquire(ctx, "reward_lock:p1:100", "owner-a", 5*time.Second)
	assert.True(t, ok)

	current = current.Add(6 * time.Second)

	// The debounce window has passed, a new owner may take the key.
	ok, _ = locker.Acquire(ctx, "reward_lock:p1:100", "owner-b", 5*time.Second)
	assert.True(t, ok)

	// The stale owner can no longer release what it lost.
	released, err := locker.Release(ctx, "reward_lock:p1:100", "owner-a")
	assert.NoError(t, err)
	assert.False(t, released)
}
