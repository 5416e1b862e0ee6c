package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	xlogger "CryptoAPI/pkg/logger"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Hub fans out price ticks to websocket subscribers.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	metrics  drepo.Metrics
	logger   *xlogger.Logger
}

// NewHub creates an empty subscriber hub.
func NewHub(metrics drepo.Metrics, logger *xlogger.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
		metrics: metrics,
		logger:  logger,
	}
}

// Subscribe upgrades the connection and registers it with the hub.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade: %w", err)
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.metrics.SetStreamSubscribers(count)

	h.logger.Debug("stream subscriber joined", xlogger.Int("subscribers", count))

	go h.reader(conn)
	return nil
}

// reader drains inbound frames so pings work and close is detected.
func (h *Hub) reader(conn *websocket.Conn) {
	defer h.drop(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends ticks to every subscriber, dropping dead connections.
func (h *Hub) Broadcast(ticks []models.PriceTick) {
	if len(ticks) == 0 {
		return
	}

	payload, err := json.Marshal(ticks)
	if err != nil {
		h.logger.Error("marshal price ticks", xlogger.Error(err))
		return
	}

	h.mu.Lock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
	count := len(h.clients)
	h.mu.Unlock()

	h.metrics.SetStreamSubscribers(count)
}

// Count returns the current number of subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.metrics.SetStreamSubscribers(count)
}

// Close disconnects all subscribers.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
	h.metrics.SetStreamSubscribers(0)
	return nil
}
