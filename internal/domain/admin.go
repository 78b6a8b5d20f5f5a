package domain

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles
const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// AdminUser represents a back-office operator
type AdminUser struct {
	ID        string    `json:"admin_id" gorm:"primaryKey;column:id;type:uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Password  string    `json:"-" gorm:"not null;type:varchar(128)"`
	Role      string    `json:"role" gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for AdminUser
func (a AdminUser) TableName() string {
	return "admin_users"
}

// AdminRepository defines the interface for admin user data
type AdminRepository interface {
	GetByID(id string) (*AdminUser, error)
	GetByUsername(username string) (*AdminUser, error)
	Create(admin *AdminUser) error
	GetUsernames(ids []string) (map[string]string, error)
	WithTransaction(tx *gorm.DB) AdminRepository
}

// AdminUseCase defines the interface for admin authentication
type AdminUseCase interface {
	Authenticate(username, password string) (string, error)
	GetAdminInfo(adminID string) (*AdminUser, error)
}
