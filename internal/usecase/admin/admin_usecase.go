package admin

import (
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// AdminUseCase implements domain.AdminUseCase
type AdminUseCase struct {
	adminRepo domain.AdminRepository
	jwtSvc    auth.JWTService
	logger    *logger.Logger
}

// NewAdminUseCase creates a new admin use case
func NewAdminUseCase(adminRepo domain.AdminRepository, jwtSvc auth.JWTService, logger *logger.Logger) domain.AdminUseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
	}
}

// Authenticate validates admin credentials and returns a JWT token
func (uc *AdminUseCase) Authenticate(username, password string) (string, error) {
	if username == "" || password == "" {
		uc.logger.Warn("Authentication attempt with empty credentials",
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	admin, err := uc.adminRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get admin from database during authentication",
			zap.String("username", username),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get admin", 500, err)
	}

	if admin == nil {
		uc.logger.Warn("Authentication failed - admin not found",
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if !uc.verifyPassword(password, admin.Password) {
		uc.logger.Warn("Authentication failed - invalid password",
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		uc.logger.Error("Failed to generate JWT token",
			zap.String("admin_id", admin.ID),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	uc.logger.Info("Admin authentication successful",
		zap.String("admin_id", admin.ID),
		zap.String("username", username),
		zap.String("role", admin.Role))

	return token, nil
}

// GetAdminInfo retrieves admin information by id
func (uc *AdminUseCase) GetAdminInfo(adminID string) (*domain.AdminUser, error) {
	if adminID == "" {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid admin ID", 400, nil)
	}

	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get admin", 500, err)
	}
	if admin == nil {
		return nil, domain.NewNotFoundError("Admin")
	}

	return admin, nil
}

// verifyPassword checks if the provided password matches the stored hash
func (uc *AdminUseCase) verifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}

	hash := sha256.Sum256([]byte(password))
	passwordHash := hex.EncodeToString(hash[:])
	return passwordHash == hashedPassword
}
