package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/scheduler"
)

func (a *application) InitBanExpirySweeper(
	playerRepo domain.PlayerRepository,
	sessions domain.SessionStore,
	publisher domain.EventPublisher,
	log *logger.Logger,
) *scheduler.BanExpirySweeper {
	return scheduler.NewBanExpirySweeper(playerRepo, sessions, publisher, log)
}
