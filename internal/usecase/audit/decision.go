package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// Approve applies a pending grant and flips its status to Success. The
// status flip is conditional on the row still being Pending, so a racing
// second approval loses even if it slipped past the approval lock.
func (uc *AuditUseCase) Approve(ctx context.Context, logID, approverID string) (*domain.AuditDecision, error) {
	lockKey := domain.ApproveLockKey(logID)
	ownerToken := uuid.NewString()

	acquired, err := uc.locker.Acquire(ctx, lockKey, ownerToken, domain.ApproveLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.NewBusyError(domain.ErrCodeOperationBusy, "This operation is being reviewed by someone else")
	}
	defer uc.releaseLock(ctx, lockKey, ownerToken)

	pending, err := uc.getPending(logID)
	if err != nil {
		return nil, err
	}

	amount := pending.Details.Int64("amount")
	now := time.Now()

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	txLogRepo := uc.logRepo.WithTransaction(tx)
	txPlayerRepo := uc.playerRepo.WithTransaction(tx)

	affected, err := txLogRepo.MarkDecided(logID, domain.OperationStatusSuccess, approverID, now)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update operation status", 500, err)
	}
	if affected == 0 {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodePendingNotFound, "Operation was already decided", 409, nil)
	}

	if err = txPlayerRepo.AddGold(pending.TargetPlayerID, amount); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to credit player balance", 500, err)
	}

	newBalance, err := txPlayerRepo.GetGold(pending.TargetPlayerID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to read player balance", 500, err)
	}

	if err = tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Pending grant approved",
		zap.String("log_id", logID),
		zap.String("approver_id", approverID),
		zap.Int64("amount", amount),
		zap.Int64("new_balance", newBalance))
	uc.publisher.PublishStatsUpdated()

	return &domain.AuditDecision{
		LogID:       logID,
		PlayerID:    pending.TargetPlayerID,
		Status:      string(domain.OperationStatusSuccess),
		Message:     "Operation approved and applied",
		NewBalance:  &newBalance,
		ProcessedAt: now,
	}, nil
}

// Reject declines a pending grant. The balance is never touched.
func (uc *AuditUseCase) Reject(ctx context.Context, logID, reason, rejecterID string) (*domain.AuditDecision, error) {
	lockKey := domain.ApproveLockKey(logID)
	ownerToken := uuid.NewString()

	acquired, err := uc.locker.Acquire(ctx, lockKey, ownerToken, domain.ApproveLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.NewBusyError(domain.ErrCodeOperationBusy, "This operation is being reviewed by someone else")
	}
	defer uc.releaseLock(ctx, lockKey, ownerToken)

	pending, err := uc.getPending(logID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	affected, err := uc.logRepo.MarkDecided(logID, domain.OperationStatusRejected, rejecterID, now)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update operation status", 500, err)
	}
	if affected == 0 {
		return nil, domain.NewAppError(domain.ErrCodePendingNotFound, "Operation was already decided", 409, nil)
	}

	uc.logger.Info("Pending grant rejected",
		zap.String("log_id", logID),
		zap.String("rejecter_id", rejecterID),
		zap.String("reason", reason))
	uc.publisher.PublishStatsUpdated()

	return &domain.AuditDecision{
		LogID:       logID,
		PlayerID:    pending.TargetPlayerID,
		Status:      string(domain.OperationStatusRejected),
		Message:     "Operation rejected",
		ProcessedAt: now,
	}, nil
}

// getPending loads the log and verifies it is still awaiting a decision
func (uc *AuditUseCase) getPending(logID string) (*domain.OperationLog, error) {
	pending, err := uc.logRepo.GetPendingByID(logID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get pending operation", 500, err)
	}
	if pending == nil {
		return nil, domain.NewAppError(domain.ErrCodePendingNotFound, "Pending operation not found", 404, nil)
	}
	return pending, nil
}

// releaseLock releases a held lock, logging instead of failing on error
func (uc *AuditUseCase) releaseLock(ctx context.Context, key, ownerToken string) {
	if _, err := uc.locker.Release(ctx, key, ownerToken); err != nil {
		uc.logger.Warn("Failed to release lock", zap.String("key", key), zap.Error(err))
	}
}
