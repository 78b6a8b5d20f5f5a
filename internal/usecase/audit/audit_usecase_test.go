package audit

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/events"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/lock"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Player{}, &domain.OperationLog{}, &domain.AdminUser{}))
	return db
}

func setupUseCase(t *testing.T, db *gorm.DB) *AuditUseCase {
	t.Helper()

	newLogger := logger.NewLogger("test", "error")
	return &AuditUseCase{
		logRepo:    repository.NewOperationLogRepository(db),
		playerRepo: repository.NewPlayerRepository(db),
		adminRepo:  repository.NewAdminRepository(db),
		locker:     lock.NewMemoryLocker(),
		publisher:  events.NewPublisher(newLogger),
		db:         db,
		logger:     newLogger,
	}
}

func createPendingGrant(t *testing.T, db *gorm.DB, playerID string, amount int64) *domain.OperationLog {
	t.Helper()

	log := domain.NewOperationLog("operator-1", playerID, domain.OperationGiveItem, domain.JSONB{
		"item_type": "gold",
		"amount":    amount,
	}, domain.OperationStatusPending)
	require.NoError(t, db.Create(log).Error)
	return log
}

func TestApprove_CreditsBalanceOnce(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db)

	player := domain.NewPlayer("test_player", 10, 100)
	require.NoError(t, db.Create(player).Error)
	pending := createPendingGrant(t, db, player.ID, 8000)

	decision, err := uc.Approve(context.Background(), pending.ID, "approver-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.OperationStatusSuccess), decision.Status)
	require.NotNil(t, decision.NewBalance)
	assert.Equal(t, int64(8100), *decision.NewBalance)

	var updated domain.OperationLog
	require.NoError(t, db.First(&updated, "id = ?", pending.ID).Error)
	assert.Equal(t, domain.OperationStatusSuccess, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "approver-1", *updated.ApprovedBy)

	// A second approval must not credit again
	_, err = uc.Approve(context.Background(), pending.ID, "approver-2")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePendingNotFound, appErr.Code)

	var p domain.Player
	require.NoError(t, db.First(&p, "id = ?", player.ID).Error)
	assert.Equal(t, int64(8100), p.Gold)
}

func TestReject_LeavesBalanceUntouched(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db)

	player := domain.NewPlayer("test_player", 10, 100)
	require.NoError(t, db.Create(player).Error)
	pending := createPendingGrant(t, db, player.ID, 8000)

	decision, err := uc.Reject(context.Background(), pending.ID, "suspicious", "approver-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.OperationStatusRejected), decision.Status)
	assert.Nil(t, decision.NewBalance)

	var p domain.Player
	require.NoError(t, db.First(&p, "id = ?", player.ID).Error)
	assert.Equal(t, int64(100), p.Gold)

	// Approving after a rejection is refused
	_, err = uc.Approve(context.Background(), pending.ID, "approver-2")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePendingNotFound, appErr.Code)
}

func TestApprove_UnknownLog(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db)

	_, err := uc.Approve(context.Background(), "00000000-0000-0000-0000-000000000000", "approver-1")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePendingNotFound, appErr.Code)
}

func TestListPending_Enriched(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db)

	admin := &domain.AdminUser{ID: "11111111-1111-1111-1111-111111111111", Username: "gm_alice", Password: "x", Role: domain.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)
	player := domain.NewPlayer("DragonSlayer", 42, 0)
	require.NoError(t, db.Create(player).Error)

	log := domain.NewOperationLog(admin.ID, player.ID, domain.OperationGiveItem, domain.JSONB{
		"item_type": "gold",
		"amount":    int64(9000),
	}, domain.OperationStatusPending)
	require.NoError(t, db.Create(log).Error)

	pending, err := uc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "gm_alice", pending[0].OperatorName)
	assert.Equal(t, "DragonSlayer", pending[0].PlayerNickname)
	assert.Equal(t, int64(9000), pending[0].Amount)
	assert.Equal(t, "gold", pending[0].ItemType)
}

func TestListLogs_Filtered(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db)

	player := domain.NewPlayer("test_player", 1, 0)
	require.NoError(t, db.Create(player).Error)

	give := domain.NewOperationLog("op-1", player.ID, domain.OperationGiveItem, domain.JSONB{"amount": int64(10)}, domain.OperationStatusSuccess)
	ban := domain.NewOperationLog("op-1", player.ID, domain.OperationBanPlayer, domain.JSONB{"reason": "x"}, domain.OperationStatusSuccess)
	require.NoError(t, db.Create(give).Error)
	require.NoError(t, db.Create(ban).Error)

	result, err := uc.ListLogs(context.Background(), domain.LogQuery{OperationType: string(domain.OperationBanPlayer)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalCount)
	require.Len(t, result.Items, 1)
	assert.Equal(t, domain.OperationBanPlayer, result.Items[0].OperationType)
}
