package broadcast

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	auction "waste-auction/internal/auctionService"
	"waste-auction/utils"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Subscribers are read-only; cross-origin reads are acceptable here.
		return true
	},
}

// Hub fans committed auction events out to WebSocket subscribers. It
// implements auction.EventSink; delivery is best-effort and a slow or broken
// subscriber is dropped rather than allowed to stall the engine.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Subscribe upgrades an HTTP request to a WebSocket subscription
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	utils.Info("websocket subscriber connected", map[string]any{"remote": conn.RemoteAddr().String()})

	// Drain (and discard) client frames so pings and close frames are handled;
	// the read loop ending means the subscriber is gone.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish implements auction.EventSink
func (h *Hub) Publish(event auction.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		utils.Error("failed to encode event for broadcast", map[string]any{
			"type":  event.Type,
			"error": err.Error(),
		})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			utils.Warn("dropping websocket subscriber", map[string]any{
				"remote": conn.RemoteAddr().String(),
				"error":  err.Error(),
			})
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Close disconnects all subscribers
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}
