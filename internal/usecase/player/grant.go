package player

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// giveItem grants currency to a player. The reward lock key includes the
// amount, so an identical resubmission inside the lock TTL bounces with a
// duplicate error while a different grant to the same player goes through.
// The lock is kept on success and only released on failure; its expiry is
// the debounce window.
func (uc *PlayerUseCase) giveItem(ctx context.Context, req domain.GiveItemRequest, operatorID string) (*domain.GrantResult, error) {
	if req.Amount <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be greater than 0", 400, nil)
	}

	lockKey := domain.RewardLockKey(req.PlayerID, req.Amount)
	ownerToken := uuid.NewString()

	if err := uc.acquireLock(ctx, lockKey, ownerToken, domain.RewardLockTTL,
		domain.ErrCodeDuplicateRequest, "An identical grant was just submitted, please wait"); err != nil {
		return nil, err
	}

	player, err := uc.getPlayer(uc.playerRepo, req.PlayerID)
	if err != nil {
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, err
	}

	if req.Amount > uc.threshold {
		return uc.createPendingGrant(ctx, req, player, operatorID, lockKey, ownerToken)
	}

	return uc.applyGrant(ctx, req, player, operatorID, lockKey, ownerToken)
}

// createPendingGrant records the grant for second-authority approval
// without touching the balance
func (uc *PlayerUseCase) createPendingGrant(ctx context.Context, req domain.GiveItemRequest, player *domain.Player, operatorID, lockKey, ownerToken string) (*domain.GrantResult, error) {
	log := domain.NewOperationLog(operatorID, req.PlayerID, domain.OperationGiveItem, domain.JSONB{
		"item_type":       req.ItemType,
		"amount":          req.Amount,
		"current_balance": player.Gold,
	}, domain.OperationStatusPending)

	if err := uc.logRepo.Create(log); err != nil {
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create pending operation", 500, err)
	}

	uc.logger.Info("Grant routed to approval",
		zap.String("log_id", log.ID),
		zap.String("player_id", req.PlayerID),
		zap.Int64("amount", req.Amount))
	uc.publisher.PublishStatsUpdated()

	return &domain.GrantResult{
		PlayerID:   req.PlayerID,
		ItemType:   req.ItemType,
		Amount:     req.Amount,
		OperatedAt: time.Now(),
		Status:     string(domain.OperationStatusPending),
		Message:    "Amount exceeds the approval threshold, awaiting review",
	}, nil
}

// applyGrant credits the balance and writes the log in one transaction
func (uc *PlayerUseCase) applyGrant(ctx context.Context, req domain.GiveItemRequest, player *domain.Player, operatorID, lockKey, ownerToken string) (*domain.GrantResult, error) {
	tx, txPlayerRepo, txLogRepo, err := uc.setupTransactionDB()
	if err != nil {
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, err
	}

	if err = txPlayerRepo.AddGold(req.PlayerID, req.Amount); err != nil {
		tx.Rollback()
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to credit player balance", 500, err)
	}

	newBalance, err := txPlayerRepo.GetGold(req.PlayerID)
	if err != nil {
		tx.Rollback()
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to read player balance", 500, err)
	}

	log := domain.NewOperationLog(operatorID, req.PlayerID, domain.OperationGiveItem, domain.JSONB{
		"item_type":        req.ItemType,
		"amount":           req.Amount,
		"previous_balance": player.Gold,
		"new_balance":      newBalance,
	}, domain.OperationStatusSuccess)

	if err = txLogRepo.Create(log); err != nil {
		tx.Rollback()
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create operation log", 500, err)
	}

	if err = uc.commitTransaction(tx); err != nil {
		uc.releaseLock(ctx, lockKey, ownerToken)
		return nil, err
	}

	uc.logger.Info("Grant applied",
		zap.String("player_id", req.PlayerID),
		zap.String("nickname", player.Nickname),
		zap.Int64("amount", req.Amount),
		zap.Int64("new_balance", newBalance))
	uc.publisher.PublishStatsUpdated()

	return &domain.GrantResult{
		PlayerID:   req.PlayerID,
		ItemType:   req.ItemType,
		Amount:     req.Amount,
		NewBalance: newBalance,
		OperatedAt: time.Now(),
		Status:     string(domain.OperationStatusSuccess),
	}, nil
}
