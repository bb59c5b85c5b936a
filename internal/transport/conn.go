package transport

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danieljhkim/previewsync/internal/geometry"
	"github.com/danieljhkim/previewsync/internal/message"
)

// Conn is one WebSocket peer. Writes are serialized; reads happen on the
// connection's own goroutine.
type Conn struct {
	ws           *websocket.Conn
	writeTimeout time.Duration

	mu     sync.Mutex
	closed bool
}

func newConn(ws *websocket.Conn, writeTimeout time.Duration) *Conn {
	return &Conn{ws: ws, writeTimeout: writeTimeout}
}

// Send writes m as a JSON text frame.
func (c *Conn) Send(m message.Message) error {
	data, err := message.Encode(m)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("connection closed")
	}
	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write %s message: %w", m.Type, err)
	}
	return nil
}

// next returns the next non-empty text frame. Any error ends the
// connection.
func (c *Conn) next() ([]byte, error) {
	for {
		kind, data, err := c.ws.ReadMessage()
		if err != nil {
			return nil, err
		}
		if kind == websocket.TextMessage && len(data) > 0 {
			return data, nil
		}
	}
}

func (c *Conn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	_ = c.ws.Close()
}

// AppConn is the connection of a host app.
type AppConn struct {
	*Conn
	id string
}

// ID returns the app id the connection registered with.
func (a *AppConn) ID() string { return a.id }

// RemoteNode stands in for a node rendered by a remote surface. The surface
// reports its geometry with every pointer event.
type RemoteNode struct {
	ID   string
	Rect geometry.Rect
}

func (n *RemoteNode) BoundingRect() geometry.Rect { return n.Rect }

func remoteNode(d message.NodeData) *RemoteNode {
	return &RemoteNode{
		ID:   d.ID,
		Rect: geometry.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height},
	}
}

// fanout delivers to every sender in order and reports the first failure.
type fanout []message.Sender

func (f fanout) Send(m message.Message) error {
	var first error
	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.Send(m); err != nil && first == nil {
			first = err
		}
	}
	return first
}
