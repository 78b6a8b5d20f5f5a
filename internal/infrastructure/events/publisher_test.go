package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

type recordingSubscriber struct {
	stats    int
	statuses []domain.PlayerStatusEvent
	batches  []domain.BatchCompleteEvent
}

func (s *recordingSubscriber) StatsUpdated() { s.stats++ }

func (s *recordingSubscriber) PlayerStatusChanged(event domain.PlayerStatusEvent) {
	s.statuses = append(s.statuses, event)
}

func (s *recordingSubscriber) BatchComplete(event domain.BatchCompleteEvent) {
	s.batches = append(s.batches, event)
}

type panickingSubscriber struct{}

func (panickingSubscriber) StatsUpdated() { panic("stats") }

func (panickingSubscriber) PlayerStatusChanged(domain.PlayerStatusEvent) { panic("status") }

func (panickingSubscriber) BatchComplete(domain.BatchCompleteEvent) { panic("batch") }

func newTestPublisher() *Publisher {
	return NewPublisher(logger.NewLogger("test", "error"))
}

func TestPublisher_ZeroSubscribersIsNoOp(t *testing.T) {
	p := newTestPublisher()

	assert.NotPanics(t, func() {
		p.PublishStatsUpdated()
		p.PublishPlayerStatusChanged(domain.PlayerStatusEvent{PlayerID: "p1"})
		p.PublishBatchComplete(domain.BatchCompleteEvent{BatchID: "b1"})
	})
}

func TestPublisher_DeliversToAllSubscribers(t *testing.T) {
	p := newTestPublisher()
	first := &recordingSubscriber{}
	second := &recordingSubscriber{}
	p.Attach("first", first)
	p.Attach("second", second)

	p.PublishStatsUpdated()
	p.PublishPlayerStatusChanged(domain.PlayerStatusEvent{PlayerID: "p1", Status: "banned"})
	p.PublishBatchComplete(domain.BatchCompleteEvent{BatchID: "b1", TotalCount: 3})

	for _, sub := range []*recordingSubscriber{first, second} {
		assert.Equal(t, 1, sub.stats)
		assert.Len(t, sub.statuses, 1)
		assert.Equal(t, "p1", sub.statuses[0].PlayerID)
		assert.Len(t, sub.batches, 1)
		assert.Equal(t, "b1", sub.batches[0].BatchID)
	}
}

func TestPublisher_DetachStopsDelivery(t *testing.T) {
	p := newTestPublisher()
	sub := &recordingSubscriber{}
	p.Attach("sub", sub)

	p.PublishStatsUpdated()
	p.Detach("sub")
	p.PublishStatsUpdated()

	assert.Equal(t, 1, sub.stats)
}

func TestPublisher_PanicIsolation(t *testing.T) {
	p := newTestPublisher()
	healthy := &recordingSubscriber{}
	p.Attach("broken", panickingSubscriber{})
	p.Attach("healthy", healthy)

	assert.NotPanics(t, func() {
		p.PublishPlayerStatusChanged(domain.PlayerStatusEvent{PlayerID: "p1"})
		p.PublishBatchComplete(domain.BatchCompleteEvent{BatchID: "b1"})
	})

	assert.Len(t, healthy.statuses, 1)
	assert.Len(t, healthy.batches, 1)
}

func TestPublisher_AttachReplacesSameName(t *testing.T) {
	p := newTestPublisher()
	old := &recordingSubscriber{}
	replacement := &recordingSubscriber{}
	p.Attach("sub", old)
	p.Attach("sub", replacement)

	p.PublishStatsUpdated()

	assert.Equal(t, 0, old.stats)
	assert.Equal(t, 1, replacement.stats)
}
