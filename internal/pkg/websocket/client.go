package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// Client is one WebSocket connection. Writes go through a bounded queue drained by a
// single writer goroutine, so Send never blocks the caller.
type Client struct {
	ID     string
	UserID string
	Role   string

	conn *websocket.Conn
	cfg  models.WebSocketConfig
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func newClient(id string, conn *websocket.Conn, cfg models.WebSocketConfig) *Client {
	c := &Client{
		ID:   id,
		conn: conn,
		cfg:  cfg,
		send: make(chan []byte, cfg.SendBuffer),
	}

	if cfg.MaxMessageSize > 0 {
		conn.SetReadLimit(cfg.MaxMessageSize)
	}
	_ = conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	})
	return c
}

// Send marshals an event envelope and enqueues it. It returns false when the client is
// closed or its queue is full; the message is dropped in both cases.
func (c *Client) Send(event string, data interface{}) bool {
	payload, err := encode(event, data)
	if err != nil {
		logger.Error("Failed to encode websocket message",
			logger.Identity(c.ID),
			logger.String("event", event),
			logger.Err(err))
		return false
	}
	return c.enqueue(payload)
}

// SendError sends an error event
func (c *Client) SendError(code, message string) bool {
	return c.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

func (c *Client) enqueue(payload []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return false
	}

	select {
	case c.send <- payload:
		return true
	default:
		logger.Debug("Dropping message for slow client",
			logger.Identity(c.ID))
		return false
	}
}

// ReadMessage blocks until the next frame arrives and returns its raw payload
func (c *Client) ReadMessage() ([]byte, error) {
	_, payload, err := c.conn.ReadMessage()
	return payload, err
}

// Close stops accepting messages; the writer flushes what is queued and sends a close frame
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PongTimeout * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Debug("WebSocket write failed",
					logger.Identity(c.ID),
					logger.Err(err))
				// unblock the reader so the connection handler returns
				_ = c.conn.Close()
				c.drain()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close()
				c.drain()
				return
			}
		}
	}
}

// drain discards queued messages until Close so late senders never fill a dead queue
func (c *Client) drain() {
	for range c.send {
	}
}

func encode(event string, data interface{}) ([]byte, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return json.Marshal(models.WSMessage{Event: event, Data: raw})
}
