package events

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// WebhookSubscriber POSTs batch completions to an operator-configured
// endpoint. Deliveries are retried with backoff, giving at-least-once
// notification for the events that matter operationally.
type WebhookSubscriber struct {
	url    string
	client *retryablehttp.Client
	logger *logger.Logger
}

// NewWebhookSubscriber creates a subscriber for the given endpoint
func NewWebhookSubscriber(url string, log *logger.Logger) *WebhookSubscriber {
	client := retryablehttp.NewClient()
	client.RetryMax = 4
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 10 * time.Second
	client.Logger = nil

	return &WebhookSubscriber{
		url:    url,
		client: client,
		logger: log,
	}
}

// StatsUpdated is not delivered over the webhook
func (w *WebhookSubscriber) StatsUpdated() {}

// PlayerStatusChanged is not delivered over the webhook
func (w *WebhookSubscriber) PlayerStatusChanged(domain.PlayerStatusEvent) {}

// BatchComplete posts the batch summary. Delivery runs in its own
// goroutine so retries never stall the queue engine.
func (w *WebhookSubscriber) BatchComplete(event domain.BatchCompleteEvent) {
	go w.deliver(event)
}

func (w *WebhookSubscriber) deliver(event domain.BatchCompleteEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		w.logger.Error("Failed to marshal webhook payload", zap.Error(err))
		return
	}

	resp, err := w.client.Post(w.url, "application/json", bytes.NewReader(body))
	if err != nil {
		w.logger.Warn("Webhook delivery failed after retries",
			zap.String("batchID", event.BatchID),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	w.logger.Info("Webhook delivered",
		zap.String("batchID", event.BatchID),
		zap.Int("status", resp.StatusCode))
}
