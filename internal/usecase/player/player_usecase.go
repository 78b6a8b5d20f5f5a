package player

import (
	"context"

	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// PlayerUseCase implements the player administration business logic
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	logRepo    domain.OperationLogRepository
	adminRepo  domain.AdminRepository
	locker     domain.DistributedLocker
	sessions   domain.SessionStore
	publisher  domain.EventPublisher
	db         *gorm.DB
	logger     *logger.Logger
	threshold  int64
}

// NewPlayerUseCase creates a new player usecase
func NewPlayerUseCase(
	playerRepo domain.PlayerRepository,
	logRepo domain.OperationLogRepository,
	adminRepo domain.AdminRepository,
	locker domain.DistributedLocker,
	sessions domain.SessionStore,
	publisher domain.EventPublisher,
	db *gorm.DB,
	logger *logger.Logger,
	threshold int64,
) domain.PlayerUseCase {
	logger.Info("PlayerUseCase initialized successfully")
	return &PlayerUseCase{
		playerRepo: playerRepo,
		logRepo:    logRepo,
		adminRepo:  adminRepo,
		locker:     locker,
		sessions:   sessions,
		publisher:  publisher,
		db:         db,
		logger:     logger,
		threshold:  threshold,
	}
}

// SearchPlayers lists players matching the query with pagination
func (uc *PlayerUseCase) SearchPlayers(query domain.PlayerQuery) (*domain.PagedResult[*domain.Player], error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	players, total, err := uc.playerRepo.Search(query)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to search players", 500, err)
	}

	return &domain.PagedResult[*domain.Player]{
		Items:      players,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

// GiveItem grants currency to a player, routing large amounts to approval
func (uc *PlayerUseCase) GiveItem(ctx context.Context, req domain.GiveItemRequest, operatorID string) (*domain.GrantResult, error) {
	return uc.giveItem(ctx, req, operatorID)
}

// DeductGold removes currency from a player if the balance allows it
func (uc *PlayerUseCase) DeductGold(ctx context.Context, req domain.DeductGoldRequest, operatorID string) (*domain.GrantResult, error) {
	return uc.deductGold(ctx, req, operatorID)
}

// BanPlayer bans a single player and forces their sessions offline
func (uc *PlayerUseCase) BanPlayer(ctx context.Context, req domain.BanPlayerRequest, operatorID string) error {
	return uc.banPlayer(ctx, req, operatorID)
}

// UnbanPlayer lifts a ban ahead of its expiry
func (uc *PlayerUseCase) UnbanPlayer(ctx context.Context, req domain.UnbanPlayerRequest, operatorID string) error {
	return uc.unbanPlayer(ctx, req, operatorID)
}

// GetDailyStats aggregates the dashboard numbers for the current day
func (uc *PlayerUseCase) GetDailyStats(ctx context.Context) (*domain.DailyStats, error) {
	return uc.getDailyStats(ctx)
}
