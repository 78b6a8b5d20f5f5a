package player

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain/mocks"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/events"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/lock"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/repository"
)

const testThreshold = 5000

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Player{}, &domain.OperationLog{}, &domain.AdminUser{}))
	return db
}

func setupUseCase(t *testing.T, db *gorm.DB, sessions domain.SessionStore) *PlayerUseCase {
	t.Helper()

	newLogger := logger.NewLogger("test", "error")
	return &PlayerUseCase{
		playerRepo: repository.NewPlayerRepository(db),
		logRepo:    repository.NewOperationLogRepository(db),
		adminRepo:  repository.NewAdminRepository(db),
		locker:     lock.NewMemoryLocker(),
		sessions:   sessions,
		publisher:  events.NewPublisher(newLogger),
		db:         db,
		logger:     newLogger,
		threshold:  testThreshold,
	}
}

func createTestPlayer(t *testing.T, db *gorm.DB, gold int64) *domain.Player {
	t.Helper()

	player := domain.NewPlayer("test_player", 10, gold)
	require.NoError(t, db.Create(player).Error)
	return player
}

func TestGiveItem_BelowThreshold(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 100)

	result, err := uc.GiveItem(context.Background(), domain.GiveItemRequest{
		PlayerID: player.ID,
		ItemType: "gold",
		Amount:   500,
	}, "operator-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.OperationStatusSuccess), result.Status)
	assert.Equal(t, int64(600), result.NewBalance)

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.Equal(t, int64(600), updated.Gold)

	var logs []domain.OperationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.OperationGiveItem, logs[0].OperationType)
	assert.Equal(t, domain.OperationStatusSuccess, logs[0].Status)
	assert.Equal(t, int64(100), logs[0].Details.Int64("previous_balance"))
	assert.Equal(t, int64(600), logs[0].Details.Int64("new_balance"))
}

func TestGiveItem_AtThresholdAppliedDirectly(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 100)

	// Review kicks in only above the threshold; exactly at it the grant
	// is applied immediately.
	result, err := uc.GiveItem(context.Background(), domain.GiveItemRequest{
		PlayerID: player.ID,
		ItemType: "gold",
		Amount:   testThreshold,
	}, "operator-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.OperationStatusSuccess), result.Status)
	assert.Equal(t, int64(100+testThreshold), result.NewBalance)

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.Equal(t, int64(100+testThreshold), updated.Gold)
}

func TestGiveItem_AboveThresholdGoesPending(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 100)

	result, err := uc.GiveItem(context.Background(), domain.GiveItemRequest{
		PlayerID: player.ID,
		ItemType: "gold",
		Amount:   testThreshold + 1,
	}, "operator-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.OperationStatusPending), result.Status)

	// Balance untouched until approval
	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.Equal(t, int64(100), updated.Gold)

	var logs []domain.OperationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.OperationStatusPending, logs[0].Status)
	assert.Equal(t, int64(testThreshold+1), logs[0].Details.Int64("amount"))
	assert.Equal(t, int64(100), logs[0].Details.Int64("current_balance"))
}

func TestGiveItem_DuplicateDebounced(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 0)

	req := domain.GiveItemRequest{PlayerID: player.ID, ItemType: "gold", Amount: 200}

	_, err := uc.GiveItem(context.Background(), req, "operator-1")
	require.NoError(t, err)

	// Identical resubmission inside the lock TTL bounces
	_, err = uc.GiveItem(context.Background(), req, "operator-1")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeDuplicateRequest, appErr.Code)

	// A different amount is a different fingerprint and goes through
	_, err = uc.GiveItem(context.Background(), domain.GiveItemRequest{
		PlayerID: player.ID, ItemType: "gold", Amount: 300,
	}, "operator-1")
	require.NoError(t, err)

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.Equal(t, int64(500), updated.Gold)
}

func TestGiveItem_PlayerNotFound(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)

	_, err := uc.GiveItem(context.Background(), domain.GiveItemRequest{
		PlayerID: "00000000-0000-0000-0000-000000000000",
		ItemType: "gold",
		Amount:   100,
	}, "operator-1")

	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
}

func TestDeductGold_Sufficient(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 1000)

	result, err := uc.DeductGold(context.Background(), domain.DeductGoldRequest{
		PlayerID: player.ID,
		Amount:   400,
		Reason:   "exploit rollback",
	}, "operator-1")

	require.NoError(t, err)
	assert.Equal(t, int64(600), result.NewBalance)

	var logs []domain.OperationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.OperationDeductGold, logs[0].OperationType)
}

func TestDeductGold_InsufficientNeverGoesNegative(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 100)

	// First deduction drains most of the balance, the second sees the
	// post-deduction state and must fail instead of going negative.
	_, err := uc.DeductGold(context.Background(), domain.DeductGoldRequest{
		PlayerID: player.ID, Amount: 80, Reason: "first",
	}, "operator-1")
	require.NoError(t, err)

	_, err = uc.DeductGold(context.Background(), domain.DeductGoldRequest{
		PlayerID: player.ID, Amount: 80, Reason: "second",
	}, "operator-2")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientGold, appErr.Code)
	assert.Contains(t, appErr.Message, "20")

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.Equal(t, int64(20), updated.Gold)
}

func TestDeductGold_PlayerNotFound(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)

	_, err := uc.DeductGold(context.Background(), domain.DeductGoldRequest{
		PlayerID: "00000000-0000-0000-0000-000000000000",
		Amount:   50,
		Reason:   "test",
	}, "operator-1")

	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
}

func TestBanPlayer_Temporary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := setupTestDB(t)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	uc := setupUseCase(t, db, mockSessions)
	player := createTestPlayer(t, db, 0)

	mockSessions.EXPECT().
		BlacklistPlayer(gomock.Any(), player.ID, gomock.Any()).
		Return(nil)

	err := uc.BanPlayer(context.Background(), domain.BanPlayerRequest{
		PlayerID:      player.ID,
		Reason:        "botting",
		DurationHours: 24,
	}, "operator-1")
	require.NoError(t, err)

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.True(t, updated.IsBanned)
	require.NotNil(t, updated.BanReason)
	assert.Equal(t, "botting", *updated.BanReason)
	assert.NotNil(t, updated.BanExpiresAt)
}

func TestBanPlayer_PermanentHasNoExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := setupTestDB(t)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	uc := setupUseCase(t, db, mockSessions)
	player := createTestPlayer(t, db, 0)

	mockSessions.EXPECT().
		BlacklistPlayer(gomock.Any(), player.ID, permanentBlacklistTTL).
		Return(nil)

	err := uc.BanPlayer(context.Background(), domain.BanPlayerRequest{
		PlayerID:      player.ID,
		Reason:        "fraud",
		DurationHours: 0,
	}, "operator-1")
	require.NoError(t, err)

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.True(t, updated.IsBanned)
	assert.Nil(t, updated.BanExpiresAt)
}

func TestUnbanPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := setupTestDB(t)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	uc := setupUseCase(t, db, mockSessions)
	player := createTestPlayer(t, db, 0)

	mockSessions.EXPECT().BlacklistPlayer(gomock.Any(), player.ID, gomock.Any()).Return(nil)
	mockSessions.EXPECT().RemovePlayerBlacklist(gomock.Any(), player.ID).Return(nil)

	require.NoError(t, uc.BanPlayer(context.Background(), domain.BanPlayerRequest{
		PlayerID: player.ID, Reason: "botting", DurationHours: 24,
	}, "operator-1"))

	require.NoError(t, uc.UnbanPlayer(context.Background(), domain.UnbanPlayerRequest{
		PlayerID: player.ID, Reason: "appeal accepted",
	}, "operator-2"))

	var updated domain.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.False(t, updated.IsBanned)
	assert.Nil(t, updated.BanReason)

	var logs []domain.OperationLog
	require.NoError(t, db.Order("created_at").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, domain.OperationUnbanPlayer, logs[1].OperationType)
}

func TestUnbanPlayer_NotBanned(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)
	player := createTestPlayer(t, db, 0)

	err := uc.UnbanPlayer(context.Background(), domain.UnbanPlayerRequest{
		PlayerID: player.ID, Reason: "noop",
	}, "operator-1")
	require.Error(t, err)
}

func TestSearchPlayers(t *testing.T) {
	db := setupTestDB(t)
	uc := setupUseCase(t, db, nil)

	require.NoError(t, db.Create(domain.NewPlayer("DragonSlayer", 42, 100)).Error)
	require.NoError(t, db.Create(domain.NewPlayer("ShadowMage", 17, 200)).Error)
	require.NoError(t, db.Create(domain.NewPlayer("DragonRider", 30, 300)).Error)

	result, err := uc.SearchPlayers(domain.PlayerQuery{Keyword: "Dragon", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalCount)
	assert.Len(t, result.Items, 2)
}

func TestGetDailyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := setupTestDB(t)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	uc := setupUseCase(t, db, mockSessions)
	player := createTestPlayer(t, db, 0)

	admin := &domain.AdminUser{ID: "11111111-1111-1111-1111-111111111111", Username: "gm_alice", Password: "x", Role: domain.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	mockSessions.EXPECT().OnlineCount(gomock.Any()).Return(int64(42), nil)

	_, err := uc.GiveItem(context.Background(), domain.GiveItemRequest{
		PlayerID: player.ID, ItemType: "gold", Amount: 300,
	}, admin.ID)
	require.NoError(t, err)

	stats, err := uc.GetDailyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.OnlineCount)
	assert.Equal(t, int64(300), stats.TotalGoldIssued)
	require.Len(t, stats.TopAdmins, 1)
	assert.Equal(t, "gm_alice", stats.TopAdmins[0].AdminName)
	assert.Equal(t, int64(300), stats.TopAdmins[0].TotalAmount)
}
