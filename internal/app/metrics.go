package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/metrics"
)

func (a *application) InitQueueMetrics() *metrics.QueueMetrics {
	return metrics.NewDefaultQueueMetrics()
}
