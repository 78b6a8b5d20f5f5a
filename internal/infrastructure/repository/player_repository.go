package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// Search retrieves players matching the query with pagination
func (r *PlayerRepository) Search(query domain.PlayerQuery) ([]*domain.Player, int64, error) {
	dbQuery := r.db.Model(&domain.Player{})

	if query.Keyword != "" {
		dbQuery = dbQuery.Where("nickname LIKE ?", "%"+query.Keyword+"%")
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var players []*domain.Player
	result := dbQuery.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&players)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return players, total, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.Create(player).Error
}

// Update updates an existing player
func (r *PlayerRepository) Update(player *domain.Player) error {
	player.UpdatedAt = time.Now()
	return r.db.Save(player).Error
}

// AddGold atomically increments the player's balance
func (r *PlayerRepository) AddGold(playerID string, amount int64) error {
	return r.db.Model(&domain.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"gold":       gorm.Expr("gold + ?", amount),
			"updated_at": time.Now(),
		}).Error
}

// DeductGoldIfSufficient runs the conditional decrement. The WHERE guard
// makes the check-and-subtract a single statement; a concurrent deduction
// can never drive the balance negative.
func (r *PlayerRepository) DeductGoldIfSufficient(playerID string, amount int64) (int64, error) {
	result := r.db.Model(&domain.Player{}).
		Where("id = ? AND gold >= ?", playerID, amount).
		Updates(map[string]interface{}{
			"gold":       gorm.Expr("gold - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetGold reads the current balance
func (r *PlayerRepository) GetGold(playerID string) (int64, error) {
	var gold int64
	result := r.db.Model(&domain.Player{}).
		Where("id = ?", playerID).
		Select("gold").
		Scan(&gold)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return gold, nil
}

// SetBanState persists only the ban-related columns
func (r *PlayerRepository) SetBanState(player *domain.Player) error {
	return r.db.Model(&domain.Player{}).
		Where("id = ?", player.ID).
		Updates(map[string]interface{}{
			"is_banned":      player.IsBanned,
			"ban_reason":     player.BanReason,
			"ban_expires_at": player.BanExpiresAt,
			"updated_at":     time.Now(),
		}).Error
}

// ListExpiredBans returns banned players whose temporary ban has lapsed
func (r *PlayerRepository) ListExpiredBans(now time.Time, limit int) ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.
		Where("is_banned = ? AND ban_expires_at IS NOT NULL AND ban_expires_at <= ?", true, now).
		Limit(limit).
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// CountBanned counts currently banned players
func (r *PlayerRepository) CountBanned() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Player{}).Where("is_banned = ?", true).Count(&count).Error
	return count, err
}

// WithTransaction returns a repository bound to the given transaction
func (r *PlayerRepository) WithTransaction(tx *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: tx}
}
