package admin

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingjie2002/GM-Tools-Admin/internal/config"
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain/mocks"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

func newTestUseCase(t *testing.T, repo domain.AdminRepository) (*AdminUseCase, auth.JWTService) {
	t.Helper()

	jwtSvc := auth.NewJWTService(&config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
	return &AdminUseCase{
		adminRepo: repo,
		jwtSvc:    jwtSvc,
		logger:    logger.NewLogger("test", "error"),
	}, jwtSvc
}

func hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	uc, jwtSvc := newTestUseCase(t, mockRepo)

	mockRepo.EXPECT().GetByUsername("gm_alice").Return(&domain.AdminUser{
		ID:       "admin-1",
		Username: "gm_alice",
		Password: hashPassword("secret123"),
		Role:     domain.RoleSuperAdmin,
	}, nil)

	token, err := uc.Authenticate("gm_alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "gm_alice", claims.Username)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	uc, _ := newTestUseCase(t, mockRepo)

	mockRepo.EXPECT().GetByUsername("gm_alice").Return(&domain.AdminUser{
		ID:       "admin-1",
		Username: "gm_alice",
		Password: hashPassword("secret123"),
		Role:     domain.RoleAdmin,
	}, nil)

	_, err := uc.Authenticate("gm_alice", "wrong")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	uc, _ := newTestUseCase(t, mockRepo)

	mockRepo.EXPECT().GetByUsername("ghost").Return(nil, nil)

	_, err := uc.Authenticate("ghost", "whatever")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUseCase(t, mocks.NewMockAdminRepository(ctrl))

	_, err := uc.Authenticate("", "")
	require.Error(t, err)
}
