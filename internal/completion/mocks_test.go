package completion

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/event"
)

// MockCompletionRepository is a testify mock for repository.Completion
type MockCompletionRepository struct {
	mock.Mock
}

func (m *MockCompletionRepository) ListCompletedItemIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCompletionRepository) ListCompletions(ctx context.Context, userID string) ([]domain.UserItemCompletion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserItemCompletion), args.Error(1)
}

func (m *MockCompletionRepository) InsertCompletion(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockCompletionRepository) DeleteCompletion(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

// fakeCatalog is a fixed set of known ids
type fakeCatalog map[string]bool

func (f fakeCatalog) Contains(itemID string) bool {
	return f[itemID]
}

var testCatalog = fakeCatalog{
	"sv-melon": true,
	"sv-corn":  true,
	"sv-keg":   true,
	"hy-salt":  true,
}

// recordingBus captures published events
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}
