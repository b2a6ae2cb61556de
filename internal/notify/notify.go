package notify

import (
	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/metrics"
)

const queueSize = 256

// Sink fans drop events out to collaborators (notification feed,
// achievements) without ever blocking the open-case path: Publish drops the
// event when the queue is full.
type Sink struct {
	events chan domain.DropEvent
	done   chan struct{}
}

func NewSink() *Sink {
	s := &Sink{
		events: make(chan domain.DropEvent, queueSize),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Sink) run() {
	defer close(s.done)
	for event := range s.events {
		metrics.EventsPublished.Inc()
		zap.L().Info("item dropped",
			zap.Int("userID", event.UserID),
			zap.Int("itemID", event.ItemID),
			zap.String("rarity", event.Rarity),
			zap.Int("caseID", event.CaseID),
		)
	}
}

func (s *Sink) Publish(event domain.DropEvent) {
	select {
	case s.events <- event:
	default:
		zap.L().Warn("drop event queue full, event dropped", zap.Int("userID", event.UserID))
	}
}

func (s *Sink) Close() {
	close(s.events)
	<-s.done
}
