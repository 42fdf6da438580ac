package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/event"
	"github.com/osse101/HarvestCodex_Go/internal/livefeed"
)

const testItemID = "sv-parsnip"

// memStore is an in-memory completion store
type memStore struct {
	mu   sync.Mutex
	rows map[string]map[string]struct{}
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]map[string]struct{})}
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) ListCompletedItemIDs(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.rows[userID]))
	for id := range m.rows[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memStore) ListCompletions(ctx context.Context, userID string) ([]domain.UserItemCompletion, error) {
	ids, _ := m.ListCompletedItemIDs(ctx, userID)
	out := make([]domain.UserItemCompletion, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.UserItemCompletion{UserID: userID, ItemID: id})
	}
	return out, nil
}

func (m *memStore) InsertCompletion(_ context.Context, userID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows[userID] == nil {
		m.rows[userID] = make(map[string]struct{})
	}
	m.rows[userID][itemID] = struct{}{}
	return nil
}

func (m *memStore) DeleteCompletion(_ context.Context, userID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows[userID], itemID)
	return nil
}

type testEnv struct {
	router   http.Handler
	verifier *auth.Verifier
	store    *memStore
	hub      *livefeed.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.Load(context.Background())
	require.NoError(t, err)

	verifier, err := auth.NewVerifier(auth.VerifierConfig{
		Secret:   "router-test-secret-router-test-secret",
		Audience: "authenticated",
	})
	require.NoError(t, err)

	store := newMemStore()
	bus := event.NewMemoryBus()
	hub := livefeed.NewHub(nil)
	hub.Register(bus)
	svc := completion.NewService(store, cat, bus, completion.Options{})

	return &testEnv{
		router: NewRouter(Options{Version: "test"}, Dependencies{
			Store:       store,
			Catalog:     cat,
			Completions: svc,
			Verifier:    verifier,
			LiveFeed:    hub,
		}),
		verifier: verifier,
		store:    store,
		hub:      hub,
	}
}

func (e *testEnv) token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := e.verifier.Issue(userID, time.Hour)
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		r.Header.Set(auth.HeaderAuthorization, auth.BearerPrefix+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

func TestRouter_PublicEndpoints(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		w := env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Contains(t, env.do(http.MethodGet, "/version", "", "").Body.String(), `"version":"test"`)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/v1/nope", "", "").Code)
}

func TestRouter_ItemsAndSimulators(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/items?game=stardew&category=crops", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testItemID)

	w = env.do(http.MethodGet, "/api/v1/items/"+testItemID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/v1/simulators/comfort", "", `{"unique_crops":12,"decor_value":40,"has_water_feature":true}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/simulators/seasons/table", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CompressesLargeResponses(t *testing.T) {
	env := newTestEnv(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), testItemID)
}

func TestRouter_Authentication(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.NewString()

	t.Run("bad token is rejected", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/v1/completions", "not-a-token", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("anonymous toggle is a silent no-op", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/completions/"+testItemID+"/toggle", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"applied":false`)
		assert.Empty(t, env.store.rows)
	})

	t.Run("signed-in toggle persists", func(t *testing.T) {
		tok := env.token(t, userID)

		w := env.do(http.MethodPost, "/api/v1/session/login", tok, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(http.MethodPost, "/api/v1/completions/"+testItemID+"/toggle", tok, "")
		require.Equal(t, http.StatusOK, w.Code)
		var result completion.ToggleResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Applied)
		assert.True(t, result.Completed)

		w = env.do(http.MethodGet, "/api/v1/completions", tok, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testItemID)

		w = env.do(http.MethodPost, "/api/v1/completions/batch", tok, `{"item_ids":["`+testItemID+`"],"completed":false}`)
		require.Equal(t, http.StatusOK, w.Code)
		ids, _ := env.store.ListCompletedItemIDs(context.Background(), userID)
		assert.Empty(t, ids)
	})
}

func TestRouter_LiveFeedThroughMiddleware(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	t.Cleanup(func() {
		env.hub.Close()
		srv.Close()
	})

	userID := uuid.NewString()
	tok := env.token(t, userID)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/completions/live?access_token=" + tok
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	read := func() livefeed.Message {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg livefeed.Message
		require.NoError(t, conn.ReadJSON(&msg))
		return msg
	}
	assert.Equal(t, livefeed.MessageTypeHello, read().Type)
	require.Eventually(t, func() bool { return env.hub.Clients(userID) == 1 }, time.Second, 10*time.Millisecond)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/completions/"+testItemID+"/toggle", nil)
	require.NoError(t, err)
	req.Header.Set(auth.HeaderAuthorization, auth.BearerPrefix+tok)
	toggleResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	toggleResp.Body.Close()
	require.Equal(t, http.StatusOK, toggleResp.StatusCode)

	msg := read()
	assert.Equal(t, string(event.CompletionChanged), msg.Type)
	assert.Equal(t, testItemID, msg.ItemID)
	assert.True(t, msg.Completed)
}
