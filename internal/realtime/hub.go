// Package realtime pushes engine events to connected renderers over websockets.
package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/mmynk/pricewise/internal/engine"
)

const (
	sendBuffer      = 16
	broadcastBuffer = 64
	writeWait       = 10 * time.Second
	pingPeriod      = 30 * time.Second
	pongWait        = pingPeriod + 10*time.Second
)

// Message is what a renderer receives for every product change.
type Message struct {
	Type      string `json:"type"`
	ProductID string `json:"productId"`
	Product   any    `json:"product,omitempty"`
}

// EncodeFunc converts an engine breakdown into its wire form.
type EncodeFunc func(event engine.Event) any

// AuthorizeFunc decides whether a websocket upgrade request may connect.
type AuthorizeFunc func(r *http.Request) error

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts messages.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*client]struct{}
	broadcast chan []byte

	encode    EncodeFunc
	authorize AuthorizeFunc
	upgrader  websocket.Upgrader
}

var _ engine.Listener = (*Hub)(nil)

// NewHub creates a hub. encode may be nil to send events without a product
// payload; authorize may be nil to accept every connection.
func NewHub(encode EncodeFunc, authorize AuthorizeFunc) *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		broadcast: make(chan []byte, broadcastBuffer),
		encode:    encode,
		authorize: authorize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run fans broadcast messages out to clients until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ProductEvent queues an event for broadcast. It never blocks the engine:
// when the queue is full the event is dropped.
func (h *Hub) ProductEvent(_ context.Context, event engine.Event) {
	msg := Message{
		Type:      "product." + string(event.Kind),
		ProductID: event.ProductID,
	}
	if h.encode != nil && event.Breakdown != nil {
		msg.Product = h.encode(event)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("Realtime: failed to encode event", "product_id", event.ProductID, "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		slog.Warn("Realtime: broadcast queue full, dropping event", "product_id", event.ProductID)
	}
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.authorize != nil {
		if err := h.authorize(r); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Realtime: upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Debug("Realtime: client connected", "remote_addr", r.RemoteAddr)

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) fanOut(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Slow client; drop it rather than stall everyone else.
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// readPump discards inbound messages; it exists to notice disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
