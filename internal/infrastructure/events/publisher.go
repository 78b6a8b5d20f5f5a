package events

import (
	"sync"

	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// Subscriber receives engine events. Implementations must be safe for
// concurrent calls; the publisher shields the engine from their failures
// but not subscribers from each other's latency.
type Subscriber interface {
	StatsUpdated()
	PlayerStatusChanged(event domain.PlayerStatusEvent)
	BatchComplete(event domain.BatchCompleteEvent)
}

// Publisher implements domain.EventPublisher as a concurrency-safe
// subscriber registry. Publishing with zero subscribers is a no-op.
type Publisher struct {
	mu          sync.RWMutex
	subscribers map[string]Subscriber
	logger      *logger.Logger
}

// NewPublisher creates an empty publisher
func NewPublisher(log *logger.Logger) *Publisher {
	return &Publisher{
		subscribers: make(map[string]Subscriber),
		logger:      log,
	}
}

// Attach registers a subscriber under a name, replacing any previous
// subscriber with the same name.
func (p *Publisher) Attach(name string, sub Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers[name] = sub
	p.logger.Info("Event subscriber attached", zap.String("subscriber", name))
}

// Detach removes a subscriber
func (p *Publisher) Detach(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.subscribers, name)
	p.logger.Info("Event subscriber detached", zap.String("subscriber", name))
}

// PublishStatsUpdated fires after every processed item
func (p *Publisher) PublishStatsUpdated() {
	p.each(func(name string, sub Subscriber) {
		sub.StatsUpdated()
	})
}

// PublishPlayerStatusChanged fires after every individual ban
func (p *Publisher) PublishPlayerStatusChanged(event domain.PlayerStatusEvent) {
	p.each(func(name string, sub Subscriber) {
		sub.PlayerStatusChanged(event)
	})
}

// PublishBatchComplete fires once per finished batch
func (p *Publisher) PublishBatchComplete(event domain.BatchCompleteEvent) {
	p.each(func(name string, sub Subscriber) {
		sub.BatchComplete(event)
	})
}

// each delivers to every subscriber, isolating failures so a broken
// subscriber can never reach back into the engine.
func (p *Publisher) each(deliver func(name string, sub Subscriber)) {
	p.mu.RLock()
	subs := make(map[string]Subscriber, len(p.subscribers))
	for name, sub := range p.subscribers {
		subs[name] = sub
	}
	p.mu.RUnlock()

	for name, sub := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.logger.Warn("Event subscriber panicked",
						zap.String("subscriber", name),
						zap.Any("panic", r))
				}
			}()
			deliver(name, sub)
		}()
	}
}
