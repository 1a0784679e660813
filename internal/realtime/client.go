package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size
	maxMessageSize = 512
)

// Client is one authenticated websocket connection. The identity is
// bound at handshake time and never changes for the connection's
// lifetime.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	UserID string
	Email  string
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, email string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		UserID: userID,
		Email:  email,
	}
}

// clientSignal is what clients may send upward: channel subscription
// adjustments when their membership set changes without reconnecting.
type clientSignal struct {
	Type     string `json:"type"`
	FamilyID string `json:"family_id"`
}

// ReadPump pumps inbound messages from the websocket to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var signal clientSignal
		if err := json.Unmarshal(message, &signal); err != nil {
			continue
		}

		switch signal.Type {
		case "join-family":
			if signal.FamilyID != "" {
				c.hub.JoinFamily(c, signal.FamilyID)
			}
		case "leave-family":
			if signal.FamilyID != "" {
				c.hub.LeaveFamily(c, signal.FamilyID)
			}
		}
	}
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
