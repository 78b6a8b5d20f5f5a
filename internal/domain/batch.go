package domain

import "context"

// BatchBanRequest is one submitted set of player ids to ban, tracked as a
// unit with aggregate progress.
type BatchBanRequest struct {
	PlayerIDs     []string `json:"player_ids" binding:"required,min=1"`
	Reason        string   `json:"reason" binding:"required"`
	DurationHours int      `json:"duration_hours" binding:"gte=0,lte=87600"` // 0 = permanent
}

// QueueItem is a single ban task. Immutable once enqueued.
type QueueItem struct {
	BatchID       string
	PlayerID      string
	Reason        string
	DurationHours int
	OperatorID    string
}

// BatchCompleteEvent fires exactly once when every item of a batch has
// been processed.
type BatchCompleteEvent struct {
	BatchID      string `json:"batch_id"`
	TotalCount   int    `json:"total_count"`
	SuccessCount int    `json:"success_count"`
	FailedCount  int    `json:"failed_count"`
}

// PlayerStatusEvent fires after every individual ban.
type PlayerStatusEvent struct {
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
	BatchID  string `json:"batch_id"`
}

// BanQueue accepts batch ban submissions for asynchronous processing.
type BanQueue interface {
	// Enqueue registers the batch and returns its id immediately. Under
	// the fail-fast policy a full queue aborts the whole batch with a
	// busy error instead of blocking the caller.
	Enqueue(ctx context.Context, req BatchBanRequest, operatorID string) (string, error)
}

// PlayerBanner executes the ban for one queue item. Implemented by the
// player usecase; the queue engine only sees this narrow surface.
type PlayerBanner interface {
	BanPlayer(ctx context.Context, req BanPlayerRequest, operatorID string) error
}

// EventPublisher relays engine events outward. Implementations must
// tolerate zero subscribers and must never let a subscriber failure
// propagate back into the caller.
type EventPublisher interface {
	PublishStatsUpdated()
	PublishPlayerStatusChanged(event PlayerStatusEvent)
	PublishBatchComplete(event BatchCompleteEvent)
}
