package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

func TestSessionHandler_Login(t *testing.T) {
	t.Run("anonymous is rejected", func(t *testing.T) {
		svc := new(MockCompletionService)
		w := httptest.NewRecorder()
		NewSessionHandler(svc).HandleLogin(w, newRequest(http.MethodPost, "/api/v1/session/login", "", "", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSignInRequired)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("loads the completed set", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("Login", mock.Anything, testUserID).Return(completion.NewSet([]string{"sv-melon", "hy-salt"}), nil)

		w := httptest.NewRecorder()
		NewSessionHandler(svc).HandleLogin(w, newRequest(http.MethodPost, "/api/v1/session/login", "", testUserID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"`+testUserID+`","count":2,"completed":["hy-salt","sv-melon"]}`, w.Body.String())
	})

	t.Run("store failure serves the cached set", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("Login", mock.Anything, testUserID).
			Return(completion.NewSet([]string{"sv-melon"}), fmt.Errorf("%w: timeout", domain.ErrCompletionFetchFailed))

		w := httptest.NewRecorder()
		NewSessionHandler(svc).HandleLogin(w, newRequest(http.MethodPost, "/api/v1/session/login", "", testUserID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"`+testUserID+`","count":1,"completed":["sv-melon"],"stale":true}`, w.Body.String())
	})

	t.Run("other errors are reported", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("Login", mock.Anything, testUserID).
			Return(completion.NewSet(nil), fmt.Errorf("wrapped: %w", domain.ErrStoreUnavailable))

		w := httptest.NewRecorder()
		NewSessionHandler(svc).HandleLogin(w, newRequest(http.MethodPost, "/api/v1/session/login", "", testUserID, nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnavailableError)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	svc := new(MockCompletionService)
	svc.On("Logout", mock.Anything, testUserID).Return().Once()
	svc.On("Logout", mock.Anything, "").Return().Once()
	h := NewSessionHandler(svc)

	for _, user := range []string{testUserID, ""} {
		w := httptest.NewRecorder()
		h.HandleLogout(w, newRequest(http.MethodPost, "/api/v1/session/logout", "", user, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgSignedOut)
	}
	svc.AssertExpectations(t)
}

func TestCompletionHandler_ListAndProgress(t *testing.T) {
	svc := new(MockCompletionService)
	svc.On("Session", mock.Anything, testUserID).Return(completion.NewSet([]string{"sv-corn", "hy-corn"}), nil)
	recent := []domain.UserItemCompletion{
		{UserID: testUserID, ItemID: "hy-corn", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	svc.On("Recent", mock.Anything, testUserID, RecentCompletionsLimit).Return(recent, nil).Once()
	h := NewCompletionHandler(svc, newTestCatalog(t))

	w := httptest.NewRecorder()
	h.HandleList(w, newRequest(http.MethodGet, "/api/v1/completions", "", testUserID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2,"completed":["hy-corn","sv-corn"],
		"recent":[{"user_id":"`+testUserID+`","item_id":"hy-corn","created_at":"2026-03-01T09:00:00Z"}]}`, w.Body.String())

	w = httptest.NewRecorder()
	h.HandleProgress(w, newRequest(http.MethodGet, "/api/v1/completions/progress", "", testUserID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var progress domain.CompletionProgress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
	assert.Equal(t, 2, progress.Completed)
	assert.Equal(t, 4, progress.Total)
	assert.InDelta(t, 50.0, progress.Percent, 1e-9)
	assert.Equal(t, domain.CountPair{Completed: 2, Total: 3}, progress.ByCategory[domain.CategoryCrops])
}

func TestCompletionHandler_StoreFailureServesCachedSet(t *testing.T) {
	fetchErr := fmt.Errorf("%w: context deadline exceeded", domain.ErrCompletionFetchFailed)

	t.Run("list", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("Session", mock.Anything, testUserID).Return(completion.NewSet([]string{"sv-melon"}), fetchErr)

		w := httptest.NewRecorder()
		NewCompletionHandler(svc, newTestCatalog(t)).HandleList(w, newRequest(http.MethodGet, "/api/v1/completions", "", testUserID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":1,"completed":["sv-melon"],"stale":true}`, w.Body.String())
		svc.AssertNotCalled(t, "Recent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("progress", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("Session", mock.Anything, testUserID).Return(completion.NewSet([]string{"sv-melon"}), fetchErr)

		w := httptest.NewRecorder()
		NewCompletionHandler(svc, newTestCatalog(t)).HandleProgress(w, newRequest(http.MethodGet, "/api/v1/completions/progress", "", testUserID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var progress domain.CompletionProgress
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
		assert.Equal(t, 1, progress.Completed)
	})

	t.Run("other errors are reported", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("Session", mock.Anything, testUserID).Return(completion.NewSet(nil), domain.ErrStoreUnavailable)

		w := httptest.NewRecorder()
		NewCompletionHandler(svc, newTestCatalog(t)).HandleList(w, newRequest(http.MethodGet, "/api/v1/completions", "", testUserID, nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCompletionHandler_RecentFailureOmitsRows(t *testing.T) {
	svc := new(MockCompletionService)
	svc.On("Session", mock.Anything, testUserID).Return(completion.NewSet([]string{"sv-corn"}), nil)
	svc.On("Recent", mock.Anything, testUserID, RecentCompletionsLimit).
		Return(nil, fmt.Errorf("%w: timeout", domain.ErrCompletionFetchFailed))

	w := httptest.NewRecorder()
	NewCompletionHandler(svc, newTestCatalog(t)).HandleList(w, newRequest(http.MethodGet, "/api/v1/completions", "", testUserID, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1,"completed":["sv-corn"]}`, w.Body.String())
}

func TestCompletionHandler_ListAnonymous(t *testing.T) {
	svc := new(MockCompletionService)
	svc.On("Session", mock.Anything, "").Return(completion.NewSet(nil), nil)

	w := httptest.NewRecorder()
	NewCompletionHandler(svc, newTestCatalog(t)).HandleList(w, newRequest(http.MethodGet, "/api/v1/completions", "", "", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"completed":[]}`, w.Body.String())
}

func TestCompletionHandler_Toggle(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		result     completion.ToggleResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "applied",
			userID:     testUserID,
			result:     completion.ToggleResult{ItemID: "sv-melon", Completed: true, Applied: true},
			wantStatus: http.StatusOK,
			wantBody:   `"applied":true`,
		},
		{
			name:       "anonymous is a silent no-op",
			userID:     "",
			result:     completion.ToggleResult{ItemID: "sv-melon"},
			wantStatus: http.StatusOK,
			wantBody:   `"applied":false`,
		},
		{
			name:       "store failure shows notice",
			userID:     testUserID,
			err:        fmt.Errorf("%w: broken pipe", domain.ErrCompletionUpdateFailed),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   domain.ErrMsgCompletionUpdateFailed,
		},
		{
			name:       "in flight",
			userID:     testUserID,
			err:        domain.ErrUpdateInProgress,
			wantStatus: http.StatusConflict,
			wantBody:   ErrMsgUpdateInProgressErr,
		},
		{
			name:       "unknown item",
			userID:     testUserID,
			err:        fmt.Errorf("%w: sv-melon", domain.ErrItemNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   ErrMsgItemNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCompletionService)
			svc.On("ToggleItemCompletion", mock.Anything, tt.userID, "sv-melon").Return(tt.result, tt.err)
			h := NewCompletionHandler(svc, newTestCatalog(t))

			w := httptest.NewRecorder()
			h.HandleToggle(w, newRequest(http.MethodPost, "/api/v1/completions/sv-melon/toggle", "", tt.userID,
				map[string]string{"itemID": "sv-melon"}))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestCompletionHandler_Batch(t *testing.T) {
	t.Run("mark completed with partial failure", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("MarkItemsAsCompleted", mock.Anything, testUserID, []string{"sv-melon", "sv-corn"}).
			Return(completion.BatchResult{Applied: []string{"sv-melon"}, Failed: []string{"sv-corn"}}, nil)

		w := httptest.NewRecorder()
		NewCompletionHandler(svc, newTestCatalog(t)).HandleBatch(w, newRequest(http.MethodPost, "/api/v1/completions/batch",
			`{"item_ids":["sv-melon","sv-corn"],"completed":true}`, testUserID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"applied":["sv-melon"],"failed":["sv-corn"]}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("mark incomplete", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("MarkItemsAsIncomplete", mock.Anything, testUserID, []string{"hy-salt"}).
			Return(completion.BatchResult{Applied: []string{"hy-salt"}, Failed: []string{}}, nil)

		w := httptest.NewRecorder()
		NewCompletionHandler(svc, newTestCatalog(t)).HandleBatch(w, newRequest(http.MethodPost, "/api/v1/completions/batch",
			`{"item_ids":["hy-salt"],"completed":false}`, testUserID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		svc := new(MockCompletionService)
		h := NewCompletionHandler(svc, newTestCatalog(t))

		for _, body := range []string{
			`{"item_ids":[],"completed":true}`,
			`{"item_ids":["sv-melon"]}`,
			`{"item_ids":[""],"completed":true}`,
		} {
			w := httptest.NewRecorder()
			h.HandleBatch(w, newRequest(http.MethodPost, "/api/v1/completions/batch", body, testUserID, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
		svc.AssertNotCalled(t, "MarkItemsAsCompleted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id rejects the batch", func(t *testing.T) {
		svc := new(MockCompletionService)
		svc.On("MarkItemsAsCompleted", mock.Anything, testUserID, []string{"nope"}).
			Return(completion.BatchResult{Applied: []string{}, Failed: []string{}}, fmt.Errorf("%w: nope", domain.ErrItemNotFound))

		w := httptest.NewRecorder()
		NewCompletionHandler(svc, newTestCatalog(t)).HandleBatch(w, newRequest(http.MethodPost, "/api/v1/completions/batch",
			`{"item_ids":["nope"],"completed":true}`, testUserID, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, ErrMsgSignInRequired},
		{domain.ErrInvalidToken, http.StatusUnauthorized, ErrMsgSessionExpired},
		{fmt.Errorf("wrapped: %w", domain.ErrStoreUnavailable), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{fmt.Errorf("%w: x", domain.ErrInvalidBiome), http.StatusBadRequest, ErrMsgInvalidInputError},
		{assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status)
		assert.Equal(t, tt.wantMsg, msg)
	}
}
