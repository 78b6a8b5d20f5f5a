package player

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// permanentBlacklistTTL backs "no expiry" bans. The session blacklist
// store requires a TTL on every key, so permanent means ten years.
const permanentBlacklistTTL = 87600 * time.Hour

// banPlayer marks the player banned and blacklists their sessions so the
// game servers drop them on the next request
func (uc *PlayerUseCase) banPlayer(ctx context.Context, req domain.BanPlayerRequest, operatorID string) error {
	player, err := uc.getPlayer(uc.playerRepo, req.PlayerID)
	if err != nil {
		return err
	}

	var expiresAt *time.Time
	blacklistTTL := permanentBlacklistTTL
	if req.DurationHours > 0 {
		blacklistTTL = time.Duration(req.DurationHours) * time.Hour
		t := time.Now().Add(blacklistTTL)
		expiresAt = &t
	}

	player.IsBanned = true
	player.BanReason = &req.Reason
	player.BanExpiresAt = expiresAt

	if err := uc.playerRepo.SetBanState(player); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update ban state", 500, err)
	}

	if err := uc.sessions.BlacklistPlayer(ctx, req.PlayerID, blacklistTTL); err != nil {
		// Ban state is already persisted; the call is safe to repeat.
		uc.logger.Error("Failed to blacklist player sessions",
			zap.String("player_id", req.PlayerID),
			zap.Error(err))
		return err
	}

	log := domain.NewOperationLog(operatorID, req.PlayerID, domain.OperationBanPlayer, domain.JSONB{
		"reason":         req.Reason,
		"duration_hours": req.DurationHours,
	}, domain.OperationStatusSuccess)
	if err := uc.logRepo.Create(log); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create operation log", 500, err)
	}

	uc.logger.Info("Player banned",
		zap.String("player_id", req.PlayerID),
		zap.String("reason", req.Reason),
		zap.Int("duration_hours", req.DurationHours))

	uc.publisher.PublishPlayerStatusChanged(domain.PlayerStatusEvent{
		PlayerID: req.PlayerID,
		Status:   "banned",
	})
	uc.publisher.PublishStatsUpdated()
	return nil
}

// unbanPlayer lifts a ban ahead of its expiry
func (uc *PlayerUseCase) unbanPlayer(ctx context.Context, req domain.UnbanPlayerRequest, operatorID string) error {
	player, err := uc.getPlayer(uc.playerRepo, req.PlayerID)
	if err != nil {
		return err
	}

	if !player.IsBanned {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Player is not banned", 400, nil)
	}

	player.IsBanned = false
	player.BanReason = nil
	player.BanExpiresAt = nil

	if err := uc.playerRepo.SetBanState(player); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update ban state", 500, err)
	}

	if err := uc.sessions.RemovePlayerBlacklist(ctx, req.PlayerID); err != nil {
		uc.logger.Error("Failed to remove player blacklist",
			zap.String("player_id", req.PlayerID),
			zap.Error(err))
		return err
	}

	log := domain.NewOperationLog(operatorID, req.PlayerID, domain.OperationUnbanPlayer, domain.JSONB{
		"reason": req.Reason,
	}, domain.OperationStatusSuccess)
	if err := uc.logRepo.Create(log); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create operation log", 500, err)
	}

	uc.logger.Info("Player unbanned",
		zap.String("player_id", req.PlayerID),
		zap.String("reason", req.Reason))

	uc.publisher.PublishPlayerStatusChanged(domain.PlayerStatusEvent{
		PlayerID: req.PlayerID,
		Status:   "unbanned",
	})
	uc.publisher.PublishStatsUpdated()
	return nil
}
