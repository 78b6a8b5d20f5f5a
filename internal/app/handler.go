package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/http/handlers"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

func (a *application) InitAdminHandler(adminUseCase domain.AdminUseCase, jwtService auth.JWTService, sessions domain.SessionStore) *handlers.AdminHandler {
	return handlers.NewAdminHandler(adminUseCase, jwtService, sessions)
}

func (a *application) InitPlayerHandler(playerUseCase domain.PlayerUseCase, banQueue domain.BanQueue, log *logger.Logger) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(playerUseCase, banQueue, a.config.MaxBatchSize(), log)
}

func (a *application) InitAuditHandler(auditUseCase domain.AuditUseCase, log *logger.Logger) *handlers.AuditHandler {
	return handlers.NewAuditHandler(auditUseCase, log)
}
