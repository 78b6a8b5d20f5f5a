package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/events"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/websocket"
)

func (a *application) InitWebsocketHub(log *logger.Logger) *websocket.Hub {
	return websocket.NewHub(log)
}

// InitEventPublisher wires every configured outward bridge into the
// publisher. The kafka subscriber is returned separately so shutdown can
// flush it; it is nil when no brokers are configured.
func (a *application) InitEventPublisher(hub *websocket.Hub, log *logger.Logger) (domain.EventPublisher, *events.KafkaSubscriber) {
	publisher := events.NewPublisher(log)
	publisher.Attach("websocket", hub)

	var kafkaSub *events.KafkaSubscriber
	if len(a.config.Events.KafkaBrokers) > 0 && a.config.Events.KafkaTopic != "" {
		kafkaSub = events.NewKafkaSubscriber(a.config.Events.KafkaBrokers, a.config.Events.KafkaTopic, log)
		publisher.Attach("kafka", kafkaSub)
	}

	if a.config.Events.WebhookURL != "" {
		publisher.Attach("webhook", events.NewWebhookSubscriber(a.config.Events.WebhookURL, log))
	}

	return publisher, kafkaSub
}
