package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/banqueue"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/metrics"
)

func (a *application) InitBanQueueEngine(
	banner domain.PlayerBanner,
	publisher domain.EventPublisher,
	queueMetrics *metrics.QueueMetrics,
	log *logger.Logger,
) (*banqueue.Engine, error) {
	return banqueue.NewEngine(banqueue.Config{
		Policy:        banqueue.Policy(a.config.Queue.Policy),
		Capacity:      a.config.Queue.Capacity,
		RatePerSecond: a.config.Queue.RatePerSecond,
		Workers:       a.config.Queue.Workers,
	}, banner, publisher, queueMetrics, log)
}

func (a *application) InitBanQueue(engine *banqueue.Engine) domain.BanQueue {
	return engine
}
