package remote

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"absorb/internal/sim"
	"absorb/internal/view"
)

// Conn is one browser session's socket plus its latest input.
type Conn struct {
	ID     uuid.UUID
	ws     *websocket.Conn
	mu     sync.Mutex // protects input, pointer and ws writes
	keys   sim.Input
	ptr    sim.Input
	closed bool
}

func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ID: uuid.New(), ws: ws}
}

// Send serializes msg to JSON and writes it to the socket.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Input is the merged keyboard and pointer snapshot.
func (c *Conn) Input() sim.Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return view.Merge(c.keys, c.ptr)
}

func (c *Conn) setKeys(in sim.Input) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = in
}

// setPointer takes an offset from the canvas centre in [-0.5, 0.5] with y down.
func (c *Conn) setPointer(x, y float64, on bool) {
	in := sim.Input{}
	if on {
		in = view.PointerInput(x+0.5, y+0.5, 1, 1)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ptr = in
}

func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ReadLoop applies client messages until the socket closes.
func (c *Conn) ReadLoop(logger *log.Logger) {
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Printf("bad message from %s: %v", c.ID, err)
			continue
		}

		switch msg.Type {
		case MsgInput:
			c.setKeys(msg.keys())
		case MsgPointer:
			c.setPointer(msg.X, msg.Y, msg.On == 1)
		}
	}
}
