package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

const testUserID = "3f0c9a52-7d1e-4b7a-9c55-0e6f1d2a8b41"

// MockCompletionService mocks completion.Service
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) Login(ctx context.Context, userID string) (completion.Set, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(completion.Set), args.Error(1)
}

func (m *MockCompletionService) Logout(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}

func (m *MockCompletionService) Completed(userID string) completion.Set {
	args := m.Called(userID)
	return args.Get(0).(completion.Set)
}

func (m *MockCompletionService) Session(ctx context.Context, userID string) (completion.Set, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(completion.Set), args.Error(1)
}

func (m *MockCompletionService) FetchCompletedItems(ctx context.Context, userID string) (completion.Set, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(completion.Set), args.Error(1)
}

func (m *MockCompletionService) Recent(ctx context.Context, userID string, limit int) ([]domain.UserItemCompletion, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserItemCompletion), args.Error(1)
}

func (m *MockCompletionService) ToggleItemCompletion(ctx context.Context, userID, itemID string) (completion.ToggleResult, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(completion.ToggleResult), args.Error(1)
}

func (m *MockCompletionService) MarkItemsAsCompleted(ctx context.Context, userID string, itemIDs []string) (completion.BatchResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	return args.Get(0).(completion.BatchResult), args.Error(1)
}

func (m *MockCompletionService) MarkItemsAsIncomplete(ctx context.Context, userID string, itemIDs []string) (completion.BatchResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	return args.Get(0).(completion.BatchResult), args.Error(1)
}

// MockPinger mocks the readiness dependency
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func intPtr(v int) *int { return &v }

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Item{
		{ID: "sv-melon", Name: "Melon", NamePt: "Melão", Game: domain.GameStardew, Category: domain.CategoryCrops, Value: intPtr(250)},
		{ID: "sv-corn", Name: "Corn", NamePt: "Milho", Game: domain.GameStardew, Category: domain.CategoryCrops, Value: intPtr(50)},
		{ID: "hy-corn", Name: "Corn", NamePt: "Milho", Game: domain.GameHytale, Category: domain.CategoryCrops, HytaleID: "Plant_Crop_Corn_Item"},
		{ID: "hy-salt", Name: "Salt", NamePt: "Sal", Game: domain.GameHytale, Category: domain.CategoryMaterials, HytaleID: "Ingredient_Salt"},
	})
	require.NoError(t, err)
	return c
}

// newRequest builds a request, optionally authenticated and with chi URL params
func newRequest(method, target, body, userID string, params map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	ctx := r.Context()
	if userID != "" {
		ctx = auth.WithUser(ctx, auth.User{ID: userID})
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}
