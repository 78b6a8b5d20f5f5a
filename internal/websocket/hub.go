package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboard clients come from the admin frontend; origin policy is
	// enforced at the gateway.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the envelope pushed to dashboard clients
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Message types pushed to the dashboard
const (
	MessageStatsUpdated        = "STATS_UPDATED"
	MessagePlayerStatusChanged = "PLAYER_STATUS_CHANGED"
	MessageBatchJobFinished    = "BATCH_JOB_FINISHED"
)

// client is one connected dashboard session
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans engine events out to connected dashboard clients. It
// implements the event subscriber surface, so attaching it to the
// publisher is all the wiring it needs.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *logger.Logger
}

// NewHub creates an empty hub
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  log,
	}
}

// StatsUpdated notifies clients that dashboard numbers are stale
func (h *Hub) StatsUpdated() {
	h.broadcast(Message{Type: MessageStatsUpdated})
}

// PlayerStatusChanged pushes a single player's ban state change
func (h *Hub) PlayerStatusChanged(event domain.PlayerStatusEvent) {
	h.broadcast(Message{Type: MessagePlayerStatusChanged, Payload: event})
}

// BatchComplete pushes the final tally of a finished batch
func (h *Hub) BatchComplete(event domain.BatchCompleteEvent) {
	h.broadcast(Message{Type: MessageBatchJobFinished, Payload: event})
}

// ServeWS upgrades an HTTP request to a websocket session
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Dashboard client connected", zap.Int("clients", count))

	go h.writePump(cl)
	go h.readPump(cl)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		close(cl.send)
		delete(h.clients, cl)
	}
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to marshal websocket message", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			// Slow client, drop the message instead of blocking the
			// publisher.
		}
	}
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
	_ = cl.conn.Close()
}

// readPump discards client messages and watches for disconnects
func (h *Hub) readPump(cl *client) {
	defer h.drop(cl)

	cl.conn.SetReadLimit(512)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case data, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
