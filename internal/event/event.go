package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Completion and session event types
const (
	CompletionChanged    Type = domain.EventTypeCompletionChanged
	CompletionRolledBack Type = domain.EventTypeCompletionRolledBack
	SessionStarted       Type = domain.EventTypeSessionStarted
	SessionEnded         Type = domain.EventTypeSessionEnded
)

// NewCompletionChangedEvent is published once a completion change has been persisted
func NewCompletionChangedEvent(userID, itemID string, action domain.CompletionAction) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CompletionChanged,
		Payload: domain.CompletionChangedPayload{
			UserID:    userID,
			ItemID:    itemID,
			Action:    action,
			Completed: action == domain.CompletionActionInsert,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCompletionRolledBackEvent is published when a failed write restores the previous state.
// action is the write that failed, so Completed reports the restored membership.
func NewCompletionRolledBackEvent(userID, itemID string, action domain.CompletionAction) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CompletionRolledBack,
		Payload: domain.CompletionChangedPayload{
			UserID:    userID,
			ItemID:    itemID,
			Action:    action,
			Completed: action == domain.CompletionActionDelete,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSessionStartedEvent is published after a user's completion set has been loaded
func NewSessionStartedEvent(userID string, completedCount int) Event {
	return newSessionEvent(SessionStarted, userID, completedCount)
}

// NewSessionEndedEvent is published after a user's completion set has been cleared
func NewSessionEndedEvent(userID string) Event {
	return newSessionEvent(SessionEnded, userID, 0)
}

func newSessionEvent(t Type, userID string, completedCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: domain.SessionPayload{
			UserID:         userID,
			CompletedCount: completedCount,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// DecodePayload returns the payload as T. In-process events already carry the
// struct; anything else goes through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
