package stream

import (
	"sync"

	"concession-stand-api/models"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event types pushed to connected clients
const (
	EventOrderUpdate = "order_update"
)

// Message is the envelope for every broadcast
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans order updates out to every connected confirmation screen.
// It satisfies lifecycle.Notifier.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     *logrus.Logger
}

// NewHub returns an empty hub
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
	}
}

// Register adds a connection to the broadcast set
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

// Unregister drops a connection and closes it
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// OrderUpdated broadcasts an order's new state to all clients
func (h *Hub) OrderUpdated(order models.Order) {
	h.broadcast(Message{Event: EventOrderUpdate, Data: order})
}

func (h *Hub) broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			if h.log != nil {
				h.log.WithError(err).Warn("dropping websocket client")
			}
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
