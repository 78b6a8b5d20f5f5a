package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

const sweepBatchSize = 200

// BanExpirySweeper periodically lifts bans whose expiry has passed and
// clears the matching session blacklist entries.
type BanExpirySweeper struct {
	playerRepo domain.PlayerRepository
	sessions   domain.SessionStore
	publisher  domain.EventPublisher
	logger     *logger.Logger
	cron       *cron.Cron
}

// NewBanExpirySweeper creates a sweeper that runs every minute once started
func NewBanExpirySweeper(
	playerRepo domain.PlayerRepository,
	sessions domain.SessionStore,
	publisher domain.EventPublisher,
	log *logger.Logger,
) *BanExpirySweeper {
	return &BanExpirySweeper{
		playerRepo: playerRepo,
		sessions:   sessions,
		publisher:  publisher,
		logger:     log,
		cron:       cron.New(),
	}
}

// Start registers the sweep job and starts the scheduler
func (s *BanExpirySweeper) Start() error {
	if _, err := s.cron.AddFunc("@every 1m", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Ban expiry sweeper started")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *BanExpirySweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Ban expiry sweeper stopped")
}

func (s *BanExpirySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	players, err := s.playerRepo.ListExpiredBans(time.Now(), sweepBatchSize)
	if err != nil {
		s.logger.Error("Failed to list expired bans", zap.Error(err))
		return
	}
	if len(players) == 0 {
		return
	}

	cleared := 0
	for _, p := range players {
		p.IsBanned = false
		p.BanReason = nil
		p.BanExpiresAt = nil
		if err := s.playerRepo.SetBanState(p); err != nil {
			s.logger.Error("Failed to clear expired ban",
				zap.String("player_id", p.ID),
				zap.Error(err))
			continue
		}

		if err := s.sessions.RemovePlayerBlacklist(ctx, p.ID); err != nil {
			// Blacklist entries carry their own TTL, so a failed delete
			// only delays the player's return.
			s.logger.Warn("Failed to remove player blacklist",
				zap.String("player_id", p.ID),
				zap.Error(err))
		}

		s.publisher.PublishPlayerStatusChanged(domain.PlayerStatusEvent{
			PlayerID: p.ID,
			Status:   "unbanned",
		})
		cleared++
	}

	s.logger.Info("Ban expiry sweep finished",
		zap.Int("expired", len(players)),
		zap.Int("cleared", cleared))
	s.publisher.PublishStatsUpdated()
}
