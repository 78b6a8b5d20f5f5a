package banqueue

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain/mocks"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/metrics"
)

// capturePublisher records events and signals batch completion
type capturePublisher struct {
	mu        sync.Mutex
	statuses  []domain.PlayerStatusEvent
	completes []domain.BatchCompleteEvent
	done      chan domain.BatchCompleteEvent
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{done: make(chan domain.BatchCompleteEvent, 16)}
}

func (p *capturePublisher) PublishStatsUpdated() {}

func (p *capturePublisher) PublishPlayerStatusChanged(event domain.PlayerStatusEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, event)
}

func (p *capturePublisher) PublishBatchComplete(event domain.BatchCompleteEvent) {
	p.mu.Lock()
	p.completes = append(p.completes, event)
	p.mu.Unlock()
	p.done <- event
}

func (p *capturePublisher) completeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.completes)
}

func newTestEngine(t *testing.T, cfg Config, banner domain.PlayerBanner, publisher domain.EventPublisher) *Engine {
	t.Helper()

	engine, err := NewEngine(cfg, banner, publisher,
		metrics.NewQueueMetrics(prometheus.NewRegistry()),
		logger.NewLogger("test", "error"))
	require.NoError(t, err)
	return engine
}

func waitForCompletion(t *testing.T, publisher *capturePublisher) domain.BatchCompleteEvent {
	t.Helper()

	select {
	case event := <-publisher.done:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for batch completion")
		return domain.BatchCompleteEvent{}
	}
}

func TestEngine_ProcessesBatchAndCompletesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const total = 237
	const failing = 7

	playerIDs := make([]string, 0, total)
	for i := 0; i < total-failing; i++ {
		playerIDs = append(playerIDs, fmt.Sprintf("player-%d", i))
	}
	for i := 0; i < failing; i++ {
		playerIDs = append(playerIDs, fmt.Sprintf("bad-%d", i))
	}

	banner := mocks.NewMockPlayerBanner(ctrl)
	banner.EXPECT().
		BanPlayer(gomock.Any(), gomock.Any(), "operator-1").
		DoAndReturn(func(_ context.Context, req domain.BanPlayerRequest, _ string) error {
			if strings.HasPrefix(req.PlayerID, "bad-") {
				return fmt.Errorf("player gone")
			}
			return nil
		}).
		Times(total)

	publisher := newCapturePublisher()
	engine := newTestEngine(t, Config{
		Policy:        PolicyFailFast,
		Capacity:      500,
		RatePerSecond: 5000,
		Workers:       5,
	}, banner, publisher)

	engine.Start()
	defer engine.Stop()

	batchID, err := engine.Enqueue(context.Background(), domain.BatchBanRequest{
		PlayerIDs: playerIDs,
		Reason:    "mass exploit",
	}, "operator-1")
	require.NoError(t, err)
	require.Len(t, batchID, batchIDLength)

	event := waitForCompletion(t, publisher)
	assert.Equal(t, batchID, event.BatchID)
	assert.Equal(t, total, event.TotalCount)
	assert.Equal(t, total-failing, event.SuccessCount)
	assert.Equal(t, failing, event.FailedCount)

	// The completion event must fire exactly once
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, publisher.completeCount())
}

func TestEngine_FailFastRejectsOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banner := mocks.NewMockPlayerBanner(ctrl)
	publisher := newCapturePublisher()

	// Not started: nothing drains, so capacity is consumed by the first
	// batch alone.
	engine := newTestEngine(t, Config{
		Policy:        PolicyFailFast,
		Capacity:      10,
		RatePerSecond: 50,
		Workers:       5,
	}, banner, publisher)

	ids := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s-%d", prefix, i)
		}
		return out
	}

	batchID, err := engine.Enqueue(context.Background(), domain.BatchBanRequest{
		PlayerIDs: ids("first", 6),
		Reason:    "x",
	}, "operator-1")
	require.NoError(t, err)
	require.NotEmpty(t, batchID)

	_, err = engine.Enqueue(context.Background(), domain.BatchBanRequest{
		PlayerIDs: ids("second", 8),
		Reason:    "x",
	}, "operator-1")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeQueueFull, appErr.Code)
	assert.Equal(t, 429, appErr.HTTPStatus)
}

func TestEngine_RejectsEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banner := mocks.NewMockPlayerBanner(ctrl)
	publisher := newCapturePublisher()

	engine := newTestEngine(t, Config{
		Policy:        PolicyFailFast,
		Capacity:      10,
		RatePerSecond: 50,
		Workers:       5,
	}, banner, publisher)

	_, err := engine.Enqueue(context.Background(), domain.BatchBanRequest{
		PlayerIDs: nil,
		Reason:    "x",
	}, "operator-1")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)

	// No orphaned tracking entry and no completion event
	tracked := 0
	engine.progress.Range(func(_, _ any) bool {
		tracked++
		return true
	})
	assert.Zero(t, tracked)
	assert.Zero(t, publisher.completeCount())
}

func TestEngine_PanicInBanIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banner := mocks.NewMockPlayerBanner(ctrl)
	banner.EXPECT().
		BanPlayer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.BanPlayerRequest, _ string) error {
			if req.PlayerID == "boom" {
				panic("storage gone")
			}
			return nil
		}).
		Times(3)

	publisher := newCapturePublisher()
	engine := newTestEngine(t, Config{
		Policy:        PolicyFailFast,
		Capacity:      100,
		RatePerSecond: 5000,
	}, banner, publisher)

	engine.Start()
	defer engine.Stop()

	_, err := engine.Enqueue(context.Background(), domain.BatchBanRequest{
		PlayerIDs: []string{"player-1", "boom", "player-2"},
		Reason:    "x",
	}, "operator-1")
	require.NoError(t, err)

	event := waitForCompletion(t, publisher)
	assert.Equal(t, 3, event.TotalCount)
	assert.Equal(t, 2, event.SuccessCount)
	assert.Equal(t, 1, event.FailedCount)
}

func TestEngine_BlockingPolicyWaitsForSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banner := mocks.NewMockPlayerBanner(ctrl)
	banner.EXPECT().
		BanPlayer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(6)

	publisher := newCapturePublisher()
	engine := newTestEngine(t, Config{
		Policy:        PolicyBlocking,
		Capacity:      2,
		RatePerSecond: 1000,
	}, banner, publisher)

	engine.Start()
	defer engine.Stop()

	// The batch does not fit in the queue, so Enqueue has to wait for the
	// consumer to free space, then return normally.
	batchID, err := engine.Enqueue(context.Background(), domain.BatchBanRequest{
		PlayerIDs: []string{"a", "b", "c", "d", "e", "f"},
		Reason:    "x",
	}, "operator-1")
	require.NoError(t, err)

	event := waitForCompletion(t, publisher)
	assert.Equal(t, batchID, event.BatchID)
	assert.Equal(t, 6, event.TotalCount)
	assert.Equal(t, 6, event.SuccessCount)
}

func TestEngine_BlockingEnqueueHonorsContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banner := mocks.NewMockPlayerBanner(ctrl)
	publisher := newCapturePublisher()

	// Not started: the queue never drains, so the second item blocks
	// until the caller's context expires.
	engine := newTestEngine(t, Config{
		Policy:        PolicyBlocking,
		Capacity:      1,
		RatePerSecond: 50,
	}, banner, publisher)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := engine.Enqueue(ctx, domain.BatchBanRequest{
		PlayerIDs: []string{"a", "b", "c"},
		Reason:    "x",
	}, "operator-1")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
