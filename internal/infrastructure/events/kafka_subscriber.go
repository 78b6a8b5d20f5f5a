package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

const (
	eventTypePlayerStatus  = "PLAYER_STATUS_CHANGED"
	eventTypeBatchComplete = "BATCH_COMPLETE"
)

// kafkaEvent is the wire envelope for engine events
type kafkaEvent struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// KafkaSubscriber relays engine events to a kafka topic so downstream
// systems (analytics, anti-fraud) see ban activity. StatsUpdated ticks
// are dashboard-only noise and are not forwarded.
type KafkaSubscriber struct {
	writer *kafka.Writer
	logger *logger.Logger
}

// NewKafkaSubscriber creates a subscriber writing to the given brokers
func NewKafkaSubscriber(brokers []string, topic string, log *logger.Logger) *KafkaSubscriber {
	return &KafkaSubscriber{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: log,
	}
}

// StatsUpdated is a no-op for the kafka bridge
func (k *KafkaSubscriber) StatsUpdated() {}

// PlayerStatusChanged publishes one ban event
func (k *KafkaSubscriber) PlayerStatusChanged(event domain.PlayerStatusEvent) {
	k.publish(event.PlayerID, kafkaEvent{
		Type:      eventTypePlayerStatus,
		Payload:   event,
		Timestamp: time.Now(),
	})
}

// BatchComplete publishes the aggregate counts of a finished batch
func (k *KafkaSubscriber) BatchComplete(event domain.BatchCompleteEvent) {
	k.publish(event.BatchID, kafkaEvent{
		Type:      eventTypeBatchComplete,
		Payload:   event,
		Timestamp: time.Now(),
	})
}

func (k *KafkaSubscriber) publish(key string, event kafkaEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		k.logger.Error("Failed to marshal kafka event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		k.logger.Warn("Failed to publish event to kafka",
			zap.String("type", event.Type),
			zap.Error(err))
	}
}

// Close flushes and closes the writer
func (k *KafkaSubscriber) Close() error {
	return k.writer.Close()
}
