package audit

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// AuditUseCase implements the approval workflow and audit log listing
type AuditUseCase struct {
	logRepo    domain.OperationLogRepository
	playerRepo domain.PlayerRepository
	adminRepo  domain.AdminRepository
	locker     domain.DistributedLocker
	publisher  domain.EventPublisher
	db         *gorm.DB
	logger     *logger.Logger
}

// NewAuditUseCase creates a new audit usecase
func NewAuditUseCase(
	logRepo domain.OperationLogRepository,
	playerRepo domain.PlayerRepository,
	adminRepo domain.AdminRepository,
	locker domain.DistributedLocker,
	publisher domain.EventPublisher,
	db *gorm.DB,
	logger *logger.Logger,
) domain.AuditUseCase {
	logger.Info("AuditUseCase initialized successfully")
	return &AuditUseCase{
		logRepo:    logRepo,
		playerRepo: playerRepo,
		adminRepo:  adminRepo,
		locker:     locker,
		publisher:  publisher,
		db:         db,
		logger:     logger,
	}
}

// ListPending returns pending operations enriched with operator and player
// names for the review screen
func (uc *AuditUseCase) ListPending(ctx context.Context) ([]*domain.PendingOperation, error) {
	logs, err := uc.logRepo.ListPending()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list pending operations", 500, err)
	}

	operatorIDs := make([]string, 0, len(logs))
	for _, l := range logs {
		operatorIDs = append(operatorIDs, l.OperatorID)
	}
	names, err := uc.adminRepo.GetUsernames(operatorIDs)
	if err != nil {
		uc.logger.Warn("Failed to resolve operator names", zap.Error(err))
		names = map[string]string{}
	}

	pending := make([]*domain.PendingOperation, 0, len(logs))
	for _, l := range logs {
		op := &domain.PendingOperation{
			LogID:        l.ID,
			OperatorID:   l.OperatorID,
			OperatorName: names[l.OperatorID],
			PlayerID:     l.TargetPlayerID,
			Amount:       l.Details.Int64("amount"),
			CreatedAt:    l.CreatedAt,
		}
		if itemType, ok := l.Details["item_type"].(string); ok {
			op.ItemType = itemType
		}

		player, err := uc.playerRepo.GetByID(l.TargetPlayerID)
		if err == nil && player != nil {
			op.PlayerNickname = player.Nickname
		}
		pending = append(pending, op)
	}

	return pending, nil
}

// ListLogs returns the audit trail filtered by date range and operation type
func (uc *AuditUseCase) ListLogs(ctx context.Context, query domain.LogQuery) (*domain.PagedResult[*domain.OperationLog], error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 200 {
		query.PageSize = 50
	}

	logs, total, err := uc.logRepo.List(query)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list operation logs", 500, err)
	}

	return &domain.PagedResult[*domain.OperationLog]{
		Items:      logs,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
