package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONB is a type for handle JSONB field that GORM can automatically marshal/unmarshal JSONB fields.
type JSONB map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// Value implements the driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Int64 reads an int64 field out of the details blob. JSON numbers come
// back as float64 after a round trip through the database.
func (j JSONB) Int64(key string) int64 {
	switch v := j[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

// OperationType tags an administrative action
type OperationType string

const (
	OperationGiveItem    OperationType = "GiveItem"
	OperationDeductGold  OperationType = "DeductGold"
	OperationBanPlayer   OperationType = "BanPlayer"
	OperationUnbanPlayer OperationType = "UnbanPlayer"
)

// OperationStatus represents the approval status of an operation log
type OperationStatus string

const (
	// OperationStatusSuccess operation applied, no (further) approval needed
	OperationStatusSuccess OperationStatus = "Success"

	// OperationStatusPending operation awaits a second authority's decision
	OperationStatusPending OperationStatus = "Pending"

	// OperationStatusRejected operation was declined, balance untouched
	OperationStatusRejected OperationStatus = "Rejected"
)

// OperationLog is the immutable record of an administrative action
type OperationLog struct {
	ID             string          `json:"log_id" gorm:"primaryKey;column:id;type:uuid"`
	OperatorID     string          `json:"operator_id" gorm:"index;not null;type:uuid"`
	TargetPlayerID string          `json:"target_player_id" gorm:"index;not null;type:uuid"`
	OperationType  OperationType   `json:"operation_type" gorm:"type:varchar(32);not null;index"`
	Details        JSONB           `json:"details" gorm:"type:jsonb"`
	Status         OperationStatus `json:"status" gorm:"type:varchar(16);not null;index"`
	ApprovedBy     *string         `json:"approved_by,omitempty" gorm:"type:uuid"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at" gorm:"not null;index"`
}

// TableName specifies the table name for OperationLog
func (o OperationLog) TableName() string {
	return "operation_logs"
}

// NewOperationLog creates a new log entry with a generated id
func NewOperationLog(operatorID, targetPlayerID string, opType OperationType, details JSONB, status OperationStatus) *OperationLog {
	return &OperationLog{
		ID:             uuid.NewString(),
		OperatorID:     operatorID,
		TargetPlayerID: targetPlayerID,
		OperationType:  opType,
		Details:        details,
		Status:         status,
	}
}

// LogQuery filters the audit log listing
type LogQuery struct {
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02"`
	OperationType string     `form:"operation_type"`
	Page          int        `form:"page,default=1"`
	PageSize      int        `form:"page_size,default=50"`
}

// OperationLogRepository defines the interface for operation log data
type OperationLogRepository interface {
	Create(log *OperationLog) error
	GetByID(id string) (*OperationLog, error)

	// GetPendingByID returns the log only when it is still Pending,
	// nil otherwise.
	GetPendingByID(id string) (*OperationLog, error)

	ListPending() ([]*OperationLog, error)
	CountPending() (int64, error)
	List(query LogQuery) ([]*OperationLog, int64, error)
	ListSuccessfulGrantsSince(since time.Time) ([]*OperationLog, error)

	// MarkDecided flips a Pending log to Success or Rejected. The update is
	// conditional on the current status still being Pending; zero affected
	// rows means another decision won.
	MarkDecided(id string, status OperationStatus, approverID string, decidedAt time.Time) (int64, error)

	WithTransaction(tx *gorm.DB) OperationLogRepository
}

// PendingOperation is a pending log enriched for the review screen
type PendingOperation struct {
	LogID          string    `json:"log_id"`
	OperatorID     string    `json:"operator_id"`
	OperatorName   string    `json:"operator_name"`
	PlayerID       string    `json:"player_id"`
	PlayerNickname string    `json:"player_nickname"`
	ItemType       string    `json:"item_type"`
	Amount         int64     `json:"amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuditDecision is the outcome of an approve or reject call
type AuditDecision struct {
	LogID       string    `json:"log_id"`
	PlayerID    string    `json:"player_id"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	NewBalance  *int64    `json:"new_balance,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}

// AuditUseCase defines the interface for the approval workflow
type AuditUseCase interface {
	ListPending(ctx context.Context) ([]*PendingOperation, error)
	Approve(ctx context.Context, logID, approverID string) (*AuditDecision, error)
	Reject(ctx context.Context, logID, reason, rejecterID string) (*AuditDecision, error)
	ListLogs(ctx context.Context, query LogQuery) (*PagedResult[*OperationLog], error)
}
