package player

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// *****  Database Transaction Management

// setupTransactionDB sets up a database transaction with repositories
func (uc *PlayerUseCase) setupTransactionDB() (*gorm.DB, domain.PlayerRepository, domain.OperationLogRepository, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	txPlayerRepo := uc.playerRepo.WithTransaction(tx)
	txLogRepo := uc.logRepo.WithTransaction(tx)

	return tx, txPlayerRepo, txLogRepo, nil
}

// commitTransaction commits database transaction with error handling
func (uc *PlayerUseCase) commitTransaction(dbTx *gorm.DB) error {
	if err := dbTx.Commit().Error; err != nil {
		uc.logger.Error("Failed to commit database transaction", zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}
	return nil
}

// *****  Locking

// acquireLock takes the named lock or maps the refusal to the given busy code
func (uc *PlayerUseCase) acquireLock(ctx context.Context, key, ownerToken string, ttl time.Duration, busyCode, busyMessage string) error {
	acquired, err := uc.locker.Acquire(ctx, key, ownerToken, ttl)
	if err != nil {
		uc.logger.Error("Lock store unavailable", zap.String("key", key), zap.Error(err))
		return err
	}
	if !acquired {
		uc.logger.Warn("Lock contention", zap.String("key", key))
		return domain.NewBusyError(busyCode, busyMessage)
	}
	return nil
}

// releaseLock releases a held lock, logging instead of failing on error
func (uc *PlayerUseCase) releaseLock(ctx context.Context, key, ownerToken string) {
	released, err := uc.locker.Release(ctx, key, ownerToken)
	if err != nil {
		uc.logger.Warn("Failed to release lock", zap.String("key", key), zap.Error(err))
		return
	}
	if !released {
		uc.logger.Warn("Lock already expired or stolen", zap.String("key", key))
	}
}

// *****  Player Lookup

// getPlayer fetches a player or returns a not found error
func (uc *PlayerUseCase) getPlayer(repo domain.PlayerRepository, playerID string) (*domain.Player, error) {
	player, err := repo.GetByID(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player from DB", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// isNotFound reports whether err is the gorm missing row sentinel
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
