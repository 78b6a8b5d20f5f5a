package banqueue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/metrics"
)

// Policy selects how the engine reacts to a full queue
type Policy string

const (
	// PolicyBlocking bounded queue, enqueue suspends the caller until
	// space frees, one consumer drains at the configured rate.
	PolicyBlocking Policy = "blocking"

	// PolicyFailFast bounded queue, enqueue never blocks: a full queue
	// aborts the whole batch with a busy error. A fixed pool of
	// consumers shares the configured aggregate rate.
	PolicyFailFast Policy = "failfast"
)

const batchIDLength = 8

// Config holds the engine tuning knobs
type Config struct {
	Policy        Policy
	Capacity      int // queue bound, default 1000
	RatePerSecond int // aggregate target throughput, default 50
	Workers       int // consumer pool size under failfast, default 5
}

func (c Config) withDefaults() Config {
	if c.Policy == "" {
		c.Policy = PolicyFailFast
	}
	if c.Capacity <= 0 {
		c.Capacity = 1000
	}
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 50
	}
	if c.Policy == PolicyBlocking {
		c.Workers = 1
	} else if c.Workers <= 0 {
		c.Workers = 5
	}
	return c
}

type batchProgress struct {
	total     int64
	processed int64
	success   int64
	failed    int64
}

// Engine implements domain.BanQueue: a bounded in-memory work queue with
// rate-limited consumers and per-batch progress tracking. The queue is
// not persisted; a restart loses whatever was in flight.
type Engine struct {
	cfg        Config
	items      chan domain.QueueItem
	progress   sync.Map // batchID -> *batchProgress
	banner     domain.PlayerBanner
	publisher  domain.EventPublisher
	metrics    *metrics.QueueMetrics
	logger     *logger.Logger
	newBatchID func() string

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewEngine creates a stopped engine
func NewEngine(
	cfg Config,
	banner domain.PlayerBanner,
	publisher domain.EventPublisher,
	queueMetrics *metrics.QueueMetrics,
	log *logger.Logger,
) (*Engine, error) {
	idGenerator, err := nanoid.Standard(batchIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch id generator: %w", err)
	}

	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		cfg:        cfg,
		items:      make(chan domain.QueueItem, cfg.Capacity),
		banner:     banner,
		publisher:  publisher,
		metrics:    queueMetrics,
		logger:     log,
		newBatchID: idGenerator,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Enqueue registers a batch and hands its items to the queue. It returns
// the batch id as soon as every item is accepted; processing happens in
// the background.
func (e *Engine) Enqueue(ctx context.Context, req domain.BatchBanRequest, operatorID string) (string, error) {
	total := len(req.PlayerIDs)
	if total == 0 {
		return "", domain.NewAppError(domain.ErrCodeRequiredField, "Batch contains no players", 400, nil)
	}

	batchID := e.newBatchID()

	if e.cfg.Policy == PolicyFailFast && total > e.cfg.Capacity-len(e.items) {
		e.metrics.BatchesRejected.Inc()
		e.logger.Warn("Batch ban rejected, queue full",
			zap.String("batchID", batchID),
			zap.Int("count", total),
			zap.Int("queued", len(e.items)))
		return "", domain.NewBusyError(domain.ErrCodeQueueFull, "System busy, try again later")
	}

	e.progress.Store(batchID, &batchProgress{total: int64(total)})

	for _, playerID := range req.PlayerIDs {
		item := domain.QueueItem{
			BatchID:       batchID,
			PlayerID:      playerID,
			Reason:        req.Reason,
			DurationHours: req.DurationHours,
			OperatorID:    operatorID,
		}

		if err := e.push(ctx, batchID, item); err != nil {
			return "", err
		}
		e.metrics.QueueDepth.Inc()
	}

	e.metrics.BatchesEnqueued.Inc()
	e.logger.Info("Batch ban enqueued",
		zap.String("batchID", batchID),
		zap.Int("count", total),
		zap.String("operatorID", operatorID))

	return batchID, nil
}

// push hands one item to the queue according to the configured policy.
// On failure the batch's tracking entry is removed; items of an aborted
// batch already in the channel are dropped by the consumers.
func (e *Engine) push(ctx context.Context, batchID string, item domain.QueueItem) error {
	if e.cfg.Policy == PolicyFailFast {
		select {
		case e.items <- item:
			return nil
		default:
			e.progress.Delete(batchID)
			e.metrics.BatchesRejected.Inc()
			return domain.NewBusyError(domain.ErrCodeQueueFull, "System busy, try again later")
		}
	}

	select {
	case e.items <- item:
		return nil
	case <-ctx.Done():
		e.progress.Delete(batchID)
		return domain.NewAppError(domain.ErrCodeQueueFull, "Enqueue cancelled", 503, ctx.Err())
	case <-e.ctx.Done():
		e.progress.Delete(batchID)
		return domain.NewAppError(domain.ErrCodeQueueFull, "Queue engine stopped", 503, e.ctx.Err())
	}
}

// Start launches the consumer pool
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.isRunning {
		e.logger.Warn("Ban queue engine is already running")
		return
	}
	e.isRunning = true

	// Each consumer self-throttles to its share of the aggregate rate.
	delay := time.Duration(e.cfg.Workers) * time.Second / time.Duration(e.cfg.RatePerSecond)

	for i := 0; i < e.cfg.Workers; i++ {
		e.wg.Add(1)
		go e.consume(i, delay)
	}

	e.logger.Info("Ban queue engine started",
		zap.String("policy", string(e.cfg.Policy)),
		zap.Int("workers", e.cfg.Workers),
		zap.Int("ratePerSecond", e.cfg.RatePerSecond),
		zap.Int("capacity", e.cfg.Capacity))
}

// Stop cancels the consumers and waits for them to drain their current
// item. Safe to call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isRunning {
		return
	}

	e.cancel()
	e.wg.Wait()
	e.isRunning = false
	e.logger.Info("Ban queue engine stopped")
}

func (e *Engine) consume(worker int, delay time.Duration) {
	defer e.wg.Done()

	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-e.ctx.Done():
			return
		case item := <-e.items:
			e.metrics.QueueDepth.Dec()
			e.processItem(worker, item)

			timer.Reset(delay)
			select {
			case <-timer.C:
			case <-e.ctx.Done():
				timer.Stop()
				return
			}
		}
	}
}

// processItem bans one player and updates the batch bookkeeping. Any
// failure is contained here; the consumer loop must survive every item.
func (e *Engine) processItem(worker int, item domain.QueueItem) {
	value, ok := e.progress.Load(item.BatchID)
	if !ok {
		// Batch was aborted during a fail-fast enqueue.
		e.logger.Debug("Dropping item of aborted batch",
			zap.String("batchID", item.BatchID),
			zap.String("playerID", item.PlayerID))
		return
	}
	progress := value.(*batchProgress)

	err := e.banItem(item)
	if err != nil {
		atomic.AddInt64(&progress.failed, 1)
		e.metrics.ItemsProcessed.WithLabelValues("failed").Inc()
		e.logger.Error("Failed to ban player",
			zap.Int("worker", worker),
			zap.String("batchID", item.BatchID),
			zap.String("playerID", item.PlayerID),
			zap.Error(err))
	} else {
		atomic.AddInt64(&progress.success, 1)
		e.metrics.ItemsProcessed.WithLabelValues("success").Inc()
		e.publisher.PublishPlayerStatusChanged(domain.PlayerStatusEvent{
			PlayerID: item.PlayerID,
			Status:   "banned",
			BatchID:  item.BatchID,
		})
	}

	// The atomic add hands exactly one goroutine the final count, so the
	// completion event cannot fire twice.
	processed := atomic.AddInt64(&progress.processed, 1)
	if processed == progress.total {
		e.progress.Delete(item.BatchID)
		event := domain.BatchCompleteEvent{
			BatchID:      item.BatchID,
			TotalCount:   int(progress.total),
			SuccessCount: int(atomic.LoadInt64(&progress.success)),
			FailedCount:  int(atomic.LoadInt64(&progress.failed)),
		}
		e.publisher.PublishBatchComplete(event)
		e.metrics.BatchesCompleted.Inc()
		e.logger.Info("Batch completed",
			zap.String("batchID", event.BatchID),
			zap.Int("total", event.TotalCount),
			zap.Int("success", event.SuccessCount),
			zap.Int("failed", event.FailedCount))
	}

	e.publisher.PublishStatsUpdated()
}

// banItem invokes the ban operation with panic containment
func (e *Engine) banItem(item domain.QueueItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ban operation panicked: %v", r)
		}
	}()

	return e.banner.BanPlayer(e.ctx, domain.BanPlayerRequest{
		PlayerID:      item.PlayerID,
		Reason:        item.Reason,
		DurationHours: item.DurationHours,
	}, item.OperatorID)
}
