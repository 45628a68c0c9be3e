package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultInterval is how often the latest message is pushed to clients.
const DefaultInterval = 50 * time.Millisecond

// Message is the envelope every client receives.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans the most recent published message out to websocket clients. The
// simulation publishes every frame; clients see at most one message per
// Interval, always the newest.
type Hub struct {
	Interval time.Duration

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*SafeWriter]struct{}
	latest  *Message
	dirty   bool
}

func NewHub() *Hub {
	return &Hub{
		Interval: DefaultInterval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*SafeWriter]struct{}),
	}
}

// Publish replaces the pending message. It never blocks on clients.
func (h *Hub) Publish(kind string, v any) {
	h.mu.Lock()
	h.latest = &Message{Type: kind, Data: v}
	h.dirty = true
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler serves the websocket endpoint at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Telemetry: upgrade failed: %v", err)
		return
	}
	client := NewSafeWriter(conn)

	h.mu.Lock()
	latest := h.latest
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	log.Printf("Telemetry: client connected from %s", conn.RemoteAddr())

	if latest != nil {
		if err := client.WriteJSON(latest); err != nil {
			h.drop(client)
			return
		}
	}

	// Clients only listen; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(client)
			return
		}
	}
}

func (h *Hub) drop(client *SafeWriter) {
	h.mu.Lock()
	_, ok := h.clients[client]
	delete(h.clients, client)
	h.mu.Unlock()
	if ok {
		client.Close()
		log.Printf("Telemetry: client disconnected")
	}
}

// Run pushes pending messages every Interval until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	interval := h.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			h.flush()
		}
	}
}

func (h *Hub) flush() {
	h.mu.Lock()
	if !h.dirty {
		h.mu.Unlock()
		return
	}
	msg := h.latest
	h.dirty = false
	clients := make([]*SafeWriter, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.WriteJSON(msg); err != nil {
			h.drop(c)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*SafeWriter]struct{})
	h.mu.Unlock()
	for c := range clients {
		c.Close()
	}
}

// ListenAndServe runs the hub and an HTTP server on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	log.Printf("Telemetry: serving ws://%s/ws", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
