package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// OperationLogRepository implements domain.OperationLogRepository
type OperationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository creates a new operation log repository
func NewOperationLogRepository(db *gorm.DB) domain.OperationLogRepository {
	return &OperationLogRepository{db: db}
}

// Create creates a new operation log entry
func (r *OperationLogRepository) Create(log *domain.OperationLog) error {
	log.CreatedAt = time.Now()
	return r.db.Create(log).Error
}

// GetByID retrieves a log by ID
func (r *OperationLogRepository) GetByID(id string) (*domain.OperationLog, error) {
	var log domain.OperationLog
	result := r.db.Where("id = ?", id).First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &log, nil
}

// GetPendingByID retrieves a log only when it is still awaiting a decision
func (r *OperationLogRepository) GetPendingByID(id string) (*domain.OperationLog, error) {
	var log domain.OperationLog
	result := r.db.Where("id = ? AND status = ?", id, domain.OperationStatusPending).First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &log, nil
}

// ListPending retrieves all pending operations, newest first
func (r *OperationLogRepository) ListPending() ([]*domain.OperationLog, error) {
	var logs []*domain.OperationLog
	result := r.db.
		Where("status = ?", domain.OperationStatusPending).
		Order("created_at DESC").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

// CountPending counts operations awaiting a decision
func (r *OperationLogRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&domain.OperationLog{}).
		Where("status = ?", domain.OperationStatusPending).
		Count(&count).Error
	return count, err
}

// List retrieves logs matching the query with pagination
func (r *OperationLogRepository) List(query domain.LogQuery) ([]*domain.OperationLog, int64, error) {
	dbQuery := r.db.Model(&domain.OperationLog{})

	if query.StartDate != nil {
		dbQuery = dbQuery.Where("created_at >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		dbQuery = dbQuery.Where("created_at <= ?", *query.EndDate)
	}
	if query.OperationType != "" {
		dbQuery = dbQuery.Where("operation_type = ?", query.OperationType)
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
		pageSize = 50
	}

	var logs []*domain.OperationLog
	result := dbQuery.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return logs, total, nil
}

// ListSuccessfulGrantsSince retrieves completed GiveItem logs for the
// stats aggregation window
func (r *OperationLogRepository) ListSuccessfulGrantsSince(since time.Time) ([]*domain.OperationLog, error) {
	var logs []*domain.OperationLog
	result := r.db.
		Where("created_at >= ? AND status = ? AND operation_type = ?",
			since, domain.OperationStatusSuccess, domain.OperationGiveItem).
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

// MarkDecided transitions a Pending log to its terminal status. The
// status guard in the WHERE clause makes the transition single-shot.
func (r *OperationLogRepository) MarkDecided(id string, status domain.OperationStatus, approverID string, decidedAt time.Time) (int64, error) {
	result := r.db.Model(&domain.OperationLog{}).
		Where("id = ? AND status = ?", id, domain.OperationStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_by": approverID,
			"approved_at": decidedAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// WithTransaction returns a repository bound to the given transaction
func (r *OperationLogRepository) WithTransaction(tx *gorm.DB) domain.OperationLogRepository {
	return &OperationLogRepository{db: tx}
}
