package domain

import (
	"context"
	"fmt"
	"time"
)

// Distributed lock key builders. Keys are deliberately operation-scoped:
// the grant key doubles as a request fingerprint for debouncing.
func RewardLockKey(playerID string, amount int64) string {
	return fmt.Sprintf("reward_lock:%s:%d", playerID, amount)
}

func DeductLockKey(playerID string) string {
	return fmt.Sprintf("deduct_lock:%s", playerID)
}

func ApproveLockKey(logID string) string {
	return fmt.Sprintf("approve:%s", logID)
}

// Lock TTLs
const (
	RewardLockTTL  = 5 * time.Second
	DeductLockTTL  = 10 * time.Second
	ApproveLockTTL = 30 * time.Second
)

// DistributedLocker is an expiring named mutex backed by a shared
// key-value store.
type DistributedLocker interface {
	// Acquire sets key to ownerToken only if the key is absent, with
	// automatic expiry after ttl. It never waits; false means someone
	// else holds the lock. A store failure is reported as (false, err)
	// so callers fail closed.
	Acquire(ctx context.Context, key, ownerToken string, ttl time.Duration) (bool, error)

	// Release deletes key only when its current value equals ownerToken.
	// The check-then-delete is a single atomic operation; releasing with
	// the wrong token is a no-op returning false.
	Release(ctx context.Context, key, ownerToken string) (bool, error)
}

// SessionStore marks player sessions and tokens invalid through the
// shared key-value store.
type SessionStore interface {
	// BlacklistPlayer forces the player's sessions offline until expiry.
	BlacklistPlayer(ctx context.Context, playerID string, expiry time.Duration) error
	IsPlayerBlacklisted(ctx context.Context, playerID string) (bool, error)
	RemovePlayerBlacklist(ctx context.Context, playerID string) error

	BlacklistToken(ctx context.Context, token string, expiry time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	// OnlineCount reports the size of the live session registry.
	OnlineCount(ctx context.Context) (int64, error)
}
