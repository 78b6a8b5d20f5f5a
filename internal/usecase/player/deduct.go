package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// deductGold removes currency from a player. The debit itself is a single
// conditional update, so a stale read can never drive the balance negative;
// the player scoped lock only serializes concurrent operator submissions.
func (uc *PlayerUseCase) deductGold(ctx context.Context, req domain.DeductGoldRequest, operatorID string) (*domain.GrantResult, error) {
	if req.Amount <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be greater than 0", 400, nil)
	}

	lockKey := domain.DeductLockKey(req.PlayerID)
	ownerToken := uuid.NewString()

	if err := uc.acquireLock(ctx, lockKey, ownerToken, domain.DeductLockTTL,
		domain.ErrCodeOperationBusy, "Another deduction for this player is in progress"); err != nil {
		return nil, err
	}
	defer uc.releaseLock(ctx, lockKey, ownerToken)

	tx, txPlayerRepo, txLogRepo, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	affected, err := txPlayerRepo.DeductGoldIfSufficient(req.PlayerID, req.Amount)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to debit player balance", 500, err)
	}

	if affected == 0 {
		// Zero rows is either a missing player or an insufficient balance.
		// Re-read to tell the operator which.
		balance, readErr := txPlayerRepo.GetGold(req.PlayerID)
		tx.Rollback()
		if readErr != nil {
			if isNotFound(readErr) {
				return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
			}
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to read player balance", 500, readErr)
		}
		return nil, domain.NewAppError(domain.ErrCodeInsufficientGold,
			fmt.Sprintf("Insufficient gold: balance is %d, requested %d", balance, req.Amount), 409, nil)
	}

	newBalance, err := txPlayerRepo.GetGold(req.PlayerID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to read player balance", 500, err)
	}

	log := domain.NewOperationLog(operatorID, req.PlayerID, domain.OperationDeductGold, domain.JSONB{
		"amount":      req.Amount,
		"reason":      req.Reason,
		"new_balance": newBalance,
	}, domain.OperationStatusSuccess)

	if err = txLogRepo.Create(log); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create operation log", 500, err)
	}

	if err = uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	uc.logger.Info("Deduction applied",
		zap.String("player_id", req.PlayerID),
		zap.Int64("amount", req.Amount),
		zap.Int64("new_balance", newBalance))
	uc.publisher.PublishStatsUpdated()

	return &domain.GrantResult{
		PlayerID:   req.PlayerID,
		ItemType:   "gold",
		Amount:     req.Amount,
		NewBalance: newBalance,
		OperatedAt: time.Now(),
		Status:     string(domain.OperationStatusSuccess),
	}, nil
}
