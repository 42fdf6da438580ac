package metrics

import (
	"context"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/event"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to completion and session events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.CompletionChanged,
		event.CompletionRolledBack,
		event.SessionStarted,
		event.SessionEnded,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates counters for one event. It never fails the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CompletionChanged, event.CompletionRolledBack:
		payload, err := event.DecodePayload[domain.CompletionChangedPayload](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		if evt.Type == event.CompletionChanged {
			CompletionChanges.WithLabelValues(string(payload.Action)).Inc()
		} else {
			CompletionRollbacks.WithLabelValues(string(payload.Action)).Inc()
		}
	case event.SessionStarted:
		ActiveSessions.Inc()
	case event.SessionEnded:
		ActiveSessions.Dec()
	}
	return nil
}
