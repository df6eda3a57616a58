package realtime

import (
	"sync"

	"jobboard-backend/internal/logger"
)

// Envelope is the wire frame pushed to clients: a named event with a JSON
// payload.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Standard event names pushed by the notification handler. Both are advisory;
// a client that misses them re-queries the API.
const (
	EventNotification      = "notification"
	EventApplicationUpdate = "application:update"
)

// Hub is the process-local presence registry: user id to live connections.
// One user may hold several connections (multiple tabs). Nothing here is
// durable; a restart simply means everyone looks disconnected until they
// reconnect.
type Hub struct {
	mu          sync.RWMutex
	connections map[int32][]*Client
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int32][]*Client)}
}

// Register files the client under userID. A client re-registering under a new
// identity is moved, never duplicated.
func (h *Hub) Register(userID int32, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.userID != 0 && c.userID != userID {
		h.removeLocked(c.userID, c)
	}
	c.userID = userID

	for _, existing := range h.connections[userID] {
		if existing == c {
			return
		}
	}
	h.connections[userID] = append(h.connections[userID], c)
	logger.Debug("Realtime client registered", "user_id", userID, "connection_id", c.id)
}

// Unregister removes the client from whatever user it was filed under and
// closes its send channel. Other live connections for the same user survive.
// Holding the write lock here means no Notify can be mid-send on the channel
// when it closes.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.userID == 0 {
		return
	}
	h.removeLocked(c.userID, c)
	close(c.send)
	logger.Debug("Realtime client unregistered", "user_id", c.userID, "connection_id", c.id)
}

func (h *Hub) removeLocked(userID int32, c *Client) {
	conns := h.connections[userID]
	for i, existing := range conns {
		if existing == c {
			h.connections[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.connections[userID]) == 0 {
		delete(h.connections, userID)
	}
}

// Notify pushes the event to every live connection for userID. Fire-and-forget:
// no connections means no-op, a connection whose buffer is full is skipped. The
// durable side of the event has already been persisted before this is called.
func (h *Hub) Notify(userID int32, event string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := h.connections[userID]
	if len(conns) == 0 {
		return
	}

	env := Envelope{Event: event, Data: payload}
	for _, c := range conns {
		select {
		case c.send <- env:
		default:
			logger.Warn("Realtime send buffer full, dropping event",
				"user_id", userID, "connection_id", c.id, "event", event)
		}
	}
}

// ConnectionCount reports how many live connections userID currently holds.
func (h *Hub) ConnectionCount(userID int32) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[userID])
}
