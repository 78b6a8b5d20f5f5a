package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

const (
	lockPrefix      = "lock:"
	blacklistPrefix = "token:blacklist:"
	onlineSetKey    = "online:players"
)

// releaseScript deletes the lock key only when it still holds the
// caller's token. Running it as a Lua script makes check-then-delete a
// single atomic operation, so a holder whose TTL already expired cannot
// delete a lock re-acquired by someone else.
var releaseScript = redis.NewScript(`
if redis.call('get', KEYS[1]) == ARGV[1] then
    return redis.call('del', KEYS[1])
else
    return 0
end`)

// Config holds redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Service implements domain.DistributedLocker and domain.SessionStore on
// top of a shared redis instance.
type Service struct {
	client *redis.Client
	logger *logger.Logger
}

// NewService connects to redis and verifies the connection
func NewService(cfg *Config, log *logger.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", cfg.Addr))
	return &Service{client: client, logger: log}, nil
}

// Acquire sets the lock key with SET NX PX. A transport error is
// reported to the caller so lock acquisition fails closed.
func (s *Service) Acquire(ctx context.Context, key, ownerToken string, ttl time.Duration) (bool, error) {
	fullKey := lockPrefix + key

	ok, err := s.client.SetNX(ctx, fullKey, ownerToken, ttl).Result()
	if err != nil {
		s.logger.Error("Redis lock acquisition failed",
			zap.String("key", fullKey),
			zap.Error(err))
		return false, domain.NewAppError(domain.ErrCodeStoreUnavailable, "Lock store unreachable", 503, err)
	}

	s.logger.Debug("Redis lock acquire",
		zap.String("key", fullKey),
		zap.Bool("acquired", ok),
		zap.Duration("ttl", ttl))
	return ok, nil
}

// Release runs the atomic compare-and-delete script
func (s *Service) Release(ctx context.Context, key, ownerToken string) (bool, error) {
	fullKey := lockPrefix + key

	res, err := releaseScript.Run(ctx, s.client, []string{fullKey}, ownerToken).Int()
	if err != nil {
		s.logger.Error("Redis lock release failed",
			zap.String("key", fullKey),
			zap.Error(err))
		return false, domain.NewAppError(domain.ErrCodeStoreUnavailable, "Lock store unreachable", 503, err)
	}

	return res == 1, nil
}

// BlacklistPlayer marks the player's sessions invalid (forced logoff)
func (s *Service) BlacklistPlayer(ctx context.Context, playerID string, expiry time.Duration) error {
	key := blacklistPrefix + "user:" + playerID
	if err := s.client.Set(ctx, key, "1", expiry).Err(); err != nil {
		return domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unreachable", 503, err)
	}
	return nil
}

// IsPlayerBlacklisted checks the forced-logoff marker
func (s *Service) IsPlayerBlacklisted(ctx context.Context, playerID string) (bool, error) {
	key := blacklistPrefix + "user:" + playerID
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unreachable", 503, err)
	}
	return n > 0, nil
}

// RemovePlayerBlacklist lifts the forced-logoff marker (unban)
func (s *Service) RemovePlayerBlacklist(ctx context.Context, playerID string) error {
	key := blacklistPrefix + "user:" + playerID
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unreachable", 503, err)
	}
	return nil
}

// BlacklistToken revokes a JWT until it would have expired anyway
func (s *Service) BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	if err := s.client.Set(ctx, blacklistPrefix+token, "1", expiry).Err(); err != nil {
		return domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unreachable", 503, err)
	}
	return nil
}

// IsTokenBlacklisted checks whether a JWT has been revoked
func (s *Service) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unreachable", 503, err)
	}
	return n > 0, nil
}

// OnlineCount reports the cardinality of the live session set maintained
// by the game servers.
func (s *Service) OnlineCount(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, onlineSetKey).Result()
	if err != nil {
		return 0, domain.NewAppError(domain.ErrCodeStoreUnavailable, "Session store unreachable", 503, err)
	}
	return n, nil
}

// Close shuts down the client
func (s *Service) Close() error {
	return s.client.Close()
}
