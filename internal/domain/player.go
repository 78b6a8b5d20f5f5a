package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player represents a game player managed by the back office
type Player struct {
	ID           string     `json:"player_id" gorm:"primaryKey;column:id;type:uuid"`
	Nickname     string     `json:"nickname" gorm:"index;not null;type:varchar(64)"`
	Level        int        `json:"level" gorm:"not null;default:1"`
	Gold         int64      `json:"gold" gorm:"type:bigint;not null;default:0;check:gold >= 0"`
	IsBanned     bool       `json:"is_banned" gorm:"not null;default:false;index"`
	BanReason    *string    `json:"ban_reason,omitempty" gorm:"type:varchar(256)"`
	BanExpiresAt *time.Time `json:"ban_expires_at,omitempty"` // nil = permanent
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// NewPlayer creates a new player with a generated id
func NewPlayer(nickname string, level int, gold int64) *Player {
	return &Player{
		ID:       uuid.NewString(),
		Nickname: nickname,
		Level:    level,
		Gold:     gold,
	}
}

// PlayerQuery holds search parameters for the player list
type PlayerQuery struct {
	Keyword  string `form:"keyword"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// PagedResult is a generic paginated response container
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id string) (*Player, error)
	Search(query PlayerQuery) ([]*Player, int64, error)
	Create(player *Player) error
	Update(player *Player) error

	// AddGold atomically increments the player's balance.
	AddGold(playerID string, amount int64) error

	// DeductGoldIfSufficient runs the conditional update
	// "gold = gold - amount WHERE id = ? AND gold >= amount" and reports
	// how many rows were affected. Zero rows means the player is missing
	// or the balance is insufficient; callers must disambiguate.
	DeductGoldIfSufficient(playerID string, amount int64) (int64, error)

	GetGold(playerID string) (int64, error)
	SetBanState(player *Player) error
	ListExpiredBans(now time.Time, limit int) ([]*Player, error)
	CountBanned() (int64, error)
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// GrantResult is returned by grant/deduct operations
type GrantResult struct {
	PlayerID   string    `json:"player_id"`
	ItemType   string    `json:"item_type"`
	Amount     int64     `json:"amount"`
	NewBalance int64     `json:"new_balance"`
	OperatedAt time.Time `json:"operated_at"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
}

// BanPlayerRequest asks for a single player to be banned
type BanPlayerRequest struct {
	PlayerID      string `json:"player_id" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"gte=0,lte=87600"` // 0 = permanent
}

// GiveItemRequest asks for currency to be granted to a player
type GiveItemRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	ItemType string `json:"item_type" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// DeductGoldRequest asks for currency to be removed from a player
type DeductGoldRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Reason   string `json:"reason" binding:"required"`
}

// UnbanPlayerRequest lifts a ban
type UnbanPlayerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// TopAdmin is one row of the daily grant leaderboard
type TopAdmin struct {
	AdminID        string `json:"admin_id"`
	AdminName      string `json:"admin_name"`
	TotalAmount    int64  `json:"total_amount"`
	OperationCount int    `json:"operation_count"`
}

// DailyStats aggregates operational numbers for the dashboard
type DailyStats struct {
	OnlineCount     int64      `json:"online_count"`
	TotalGoldIssued int64      `json:"total_gold_issued"`
	PendingCount    int64      `json:"pending_count"`
	BannedCount     int64      `json:"banned_count"`
	TopAdmins       []TopAdmin `json:"top_admins"`
}

// PlayerUseCase defines the interface for player administration logic
type PlayerUseCase interface {
	SearchPlayers(query PlayerQuery) (*PagedResult[*Player], error)
	GiveItem(ctx context.Context, req GiveItemRequest, operatorID string) (*GrantResult, error)
	DeductGold(ctx context.Context, req DeductGoldRequest, operatorID string) (*GrantResult, error)
	BanPlayer(ctx context.Context, req BanPlayerRequest, operatorID string) error
	UnbanPlayer(ctx context.Context, req UnbanPlayerRequest, operatorID string) error
	GetDailyStats(ctx context.Context) (*DailyStats, error)
}
