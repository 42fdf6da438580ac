package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(CompletionChanged, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	evt := NewCompletionChangedEvent("user-1", "sv-melon", domain.CompletionActionInsert)
	require.NoError(t, bus.Publish(context.Background(), evt))

	require.Len(t, got, 1)
	assert.Equal(t, CompletionChanged, got[0].Type)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewSessionEndedEvent("user-1")))
}

func TestMemoryBus_MultipleHandlersAndErrors(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(SessionStarted, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(SessionStarted, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewSessionStartedEvent("user-1", 3))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, calls, "a failing handler must not stop the others")
}

func TestCompletionEvents_Membership(t *testing.T) {
	tests := []struct {
		name      string
		evt       Event
		completed bool
	}{
		{"changed insert", NewCompletionChangedEvent("u", "i", domain.CompletionActionInsert), true},
		{"changed delete", NewCompletionChangedEvent("u", "i", domain.CompletionActionDelete), false},
		{"rolled back insert", NewCompletionRolledBackEvent("u", "i", domain.CompletionActionInsert), false},
		{"rolled back delete", NewCompletionRolledBackEvent("u", "i", domain.CompletionActionDelete), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := DecodePayload[domain.CompletionChangedPayload](tt.evt.Payload)
			require.NoError(t, err)
			assert.Equal(t, tt.completed, payload.Completed)
			assert.Equal(t, "u", payload.UserID)
		})
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"user_id": "user-9", "completed_count": 4}

	payload, err := DecodePayload[domain.SessionPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "user-9", payload.UserID)
	assert.Equal(t, 4, payload.CompletedCount)
}
