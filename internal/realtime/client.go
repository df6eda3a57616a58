package realtime

import (
	"encoding/json"
	"time"

	"jobboard-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client wraps one websocket connection. Writes go through the send channel so
// Hub.Notify never blocks on a slow peer.
type Client struct {
	id           string
	hub          *Hub
	conn         *websocket.Conn
	send         chan Envelope
	writeTimeout time.Duration
	userID       int32
}

func NewClient(hub *Hub, conn *websocket.Conn, sendBuffer int, writeTimeout time.Duration) *Client {
	if sendBuffer < 1 {
		sendBuffer = 16
	}
	return &Client{
		id:           uuid.NewString(),
		hub:          hub,
		conn:         conn,
		send:         make(chan Envelope, sendBuffer),
		writeTimeout: writeTimeout,
	}
}

// registerMessage is the identity re-affirm a client may send after the
// handshake, for clients that could not present a token at connect time.
type registerMessage struct {
	Event  string `json:"event"`
	UserID int32  `json:"user_id"`
}

// Run starts the read and write pumps and blocks until the connection dies.
// On return the client has been removed from the hub.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		// Unregister closes the send channel, which in turn stops writePump.
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Realtime connection closed unexpectedly", "connection_id", c.id, "error", err)
			}
			return
		}

		var msg registerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("Ignoring malformed realtime message", "connection_id", c.id)
			continue
		}
		// Re-affirm only: a connection bound to a user at handshake time
		// cannot be rebound to someone else by a client message.
		if msg.Event == "register" && msg.UserID > 0 {
			if c.userID != 0 && c.userID != msg.UserID {
				logger.Warn("Ignoring register for mismatched user",
					"connection_id", c.id, "bound_user", c.userID, "requested_user", msg.UserID)
				continue
			}
			c.hub.Register(msg.UserID, c)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(env); err != nil {
				logger.Debug("Realtime write failed", "connection_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
