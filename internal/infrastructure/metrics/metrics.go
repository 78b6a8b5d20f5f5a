package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QueueMetrics holds the instrumentation for the ban queue engine
type QueueMetrics struct {
	QueueDepth       prometheus.Gauge
	BatchesEnqueued  prometheus.Counter
	BatchesCompleted prometheus.Counter
	BatchesRejected  prometheus.Counter
	ItemsProcessed   *prometheus.CounterVec
}

// NewQueueMetrics registers the queue metrics on the given registerer
func NewQueueMetrics(reg prometheus.Registerer) *QueueMetrics {
	factory := promauto.With(reg)

	return &QueueMetrics{
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ban_queue_depth",
			Help: "Number of ban items currently waiting in the queue",
		}),
		BatchesEnqueued: factory.NewCounter(prometheus.CounterOpts{
			Name: "ban_batches_enqueued_total",
			Help: "Total number of accepted batch ban submissions",
		}),
		BatchesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "ban_batches_completed_total",
			Help: "Total number of fully processed batches",
		}),
		BatchesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "ban_batches_rejected_total",
			Help: "Total number of batch submissions aborted because the queue was full",
		}),
		ItemsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ban_items_processed_total",
			Help: "Total number of processed ban items by result",
		}, []string{"result"}),
	}
}

// NewDefaultQueueMetrics registers on the default prometheus registry
func NewDefaultQueueMetrics() *QueueMetrics {
	return NewQueueMetrics(prometheus.DefaultRegisterer)
}
