// Package livefeed pushes a user's completion changes to their other open
// tabs over websocket.
package livefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/event"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/metrics"
)

// Message is one frame sent to clients. Completed is the item's membership
// after the change, so a rollback carries the restored state.
type Message struct {
	Type      string `json:"type"`
	ItemID    string `json:"item_id,omitempty"`
	Completed bool   `json:"completed"`
	Timestamp int64  `json:"timestamp"`
}

type client struct {
	userID string
	conn   *websocket.Conn
	out    chan []byte
}

// Hub fans completion events out to every connection of the affected user
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
}

// NewHub creates a hub. allowedOrigins restricts browser origins; empty
// means same host only and "*" allows any.
func NewHub(allowedOrigins []string) *Hub {
	h := &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  bufferSize,
			WriteBufferSize: bufferSize,
		},
	}
	if len(allowedOrigins) > 0 {
		h.upgrader.CheckOrigin = originChecker(allowedOrigins)
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if slices.Contains(allowed, AllowAnyOrigin) {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if strings.EqualFold(origin, a) {
				return true
			}
		}
		return false
	}
}

// Register subscribes the hub to completion events
func (h *Hub) Register(bus event.Bus) {
	bus.Subscribe(event.CompletionChanged, h.HandleEvent)
	bus.Subscribe(event.CompletionRolledBack, h.HandleEvent)
}

// HandleEvent forwards a completion event to the user's connections.
// Delivery is best effort and never fails the publish.
func (h *Hub) HandleEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CompletionChangedPayload](evt.Payload)
	if err != nil || payload.UserID == "" {
		logger.FromContext(ctx).Debug(LogMsgPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	h.send(payload.UserID, Message{
		Type:      string(evt.Type),
		ItemID:    payload.ItemID,
		Completed: payload.Completed,
		Timestamp: payload.Timestamp,
	})
	return nil
}

func (h *Hub) send(userID string, msg Message) {
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.out <- b:
		default:
			logger.FromContext(context.Background()).Warn(LogMsgClientLagging, logger.AttrKeyUserID, userID)
		}
	}
}

// Clients returns how many connections the user has open
func (h *Hub) Clients(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	metrics.LiveFeedClients.Inc()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[c.userID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	metrics.LiveFeedClients.Dec()
}

// Close drops every connection. Their handlers unwind and deregister.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			_ = c.conn.Close()
		}
	}
}

// Handler upgrades an authenticated request and streams the user's
// completion changes until the client goes away
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		log := logger.FromContext(r.Context())
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": ErrMsgSignInRequired})
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		c := &client{userID: userID, conn: conn, out: make(chan []byte, clientQueue)}
		if err := writeJSON(conn, Message{Type: MessageTypeHello, Timestamp: time.Now().UnixMilli()}); err != nil {
			return
		}
		h.add(c)
		defer h.remove(c)
		log.Info(LogMsgClientConnected, "clients", h.Clients(userID))

		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.writeLoop(ctx, c, cancel)
		}()

		h.readLoop(conn)
		cancel()
		wg.Wait()
		log.Info(LogMsgClientDisconnected)
	}
}

// writeLoop drains the client queue and keeps the connection alive with pings
func (h *Hub) writeLoop(ctx context.Context, c *client, cancel context.CancelFunc) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case b := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				cancel()
				_ = c.conn.Close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				cancel()
				_ = c.conn.Close()
				return
			}
		}
	}
}

// readLoop discards client frames; it exists to process pongs and notice
// disconnects
func (h *Hub) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, b)
}
