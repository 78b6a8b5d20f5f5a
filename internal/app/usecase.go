package app

import (
	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/usecase/admin"
	"github.com/jingjie2002/GM-Tools-Admin/internal/usecase/audit"
	"github.com/jingjie2002/GM-Tools-Admin/internal/usecase/player"
)

func (a *application) InitPlayerUseCase(
	playerRepo domain.PlayerRepository,
	logRepo domain.OperationLogRepository,
	adminRepo domain.AdminRepository,
	locker domain.DistributedLocker,
	sessions domain.SessionStore,
	publisher domain.EventPublisher,
	db *gorm.DB,
	log *logger.Logger,
) domain.PlayerUseCase {
	return player.NewPlayerUseCase(playerRepo, logRepo, adminRepo, locker, sessions, publisher, db, log, a.config.ApprovalThreshold())
}

// InitPlayerBanner exposes the player use case to the ban queue workers
func (a *application) InitPlayerBanner(uc domain.PlayerUseCase) domain.PlayerBanner {
	return uc
}

func (a *application) InitAuditUseCase(
	logRepo domain.OperationLogRepository,
	playerRepo domain.PlayerRepository,
	adminRepo domain.AdminRepository,
	locker domain.DistributedLocker,
	publisher domain.EventPublisher,
	db *gorm.DB,
	log *logger.Logger,
) domain.AuditUseCase {
	return audit.NewAuditUseCase(logRepo, playerRepo, adminRepo, locker, publisher, db, log)
}

func (a *application) InitAdminUseCase(adminRepo domain.AdminRepository, jwtService auth.JWTService, log *logger.Logger) domain.AdminUseCase {
	return admin.NewAdminUseCase(adminRepo, jwtService, log)
}
