package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// AdminRepository implements domain.AdminRepository
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &AdminRepository{db: db}
}

// GetByID retrieves an admin user by ID
func (r *AdminRepository) GetByID(id string) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	result := r.db.Where("id = ?", id).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &admin, nil
}

// GetByUsername retrieves an admin user by username
func (r *AdminRepository) GetByUsername(username string) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	result := r.db.Where("username = ?", username).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &admin, nil
}

// Create creates a new admin user
func (r *AdminRepository) Create(admin *domain.AdminUser) error {
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()
	return r.db.Create(admin).Error
}

// GetUsernames resolves admin ids to usernames in one query
func (r *AdminRepository) GetUsernames(ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var admins []domain.AdminUser
	result := r.db.Select("id", "username").Where("id IN ?", ids).Find(&admins)
	if result.Error != nil {
		return nil, result.Error
	}

	names := make(map[string]string, len(admins))
	for _, a := range admins {
		names[a.ID] = a.Username
	}
	return names, nil
}

// WithTransaction returns a repository bound to the given transaction
func (r *AdminRepository) WithTransaction(tx *gorm.DB) domain.AdminRepository {
	return &AdminRepository{db: tx}
}
