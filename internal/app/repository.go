package app

import (
	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/repository"
)

func (a *application) InitRepositories(db *gorm.DB) (domain.PlayerRepository, domain.OperationLogRepository, domain.AdminRepository) {
	return repository.NewPlayerRepository(db),
		repository.NewOperationLogRepository(db),
		repository.NewAdminRepository(db)
}
