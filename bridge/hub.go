package bridge

import (
	"sync"
	"sync/atomic"
)

// hub fans encoded frames out to connected clients
// A client whose queue is full misses frames instead of stalling the engine
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	gauge   *atomic.Int64
}

type client struct {
	send    chan []byte
	dropped atomic.Int64
}

func newHub(gauge *atomic.Int64) *hub {
	return &hub{clients: make(map[*client]struct{}), gauge: gauge}
}

func (h *hub) join(queue int) *client {
	c := &client{send: make(chan []byte, queue)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.gauge.Store(int64(len(h.clients)))
	h.mu.Unlock()
	return c
}

func (h *hub) leave(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.gauge.Store(int64(len(h.clients)))
	h.mu.Unlock()
}

func (h *hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *hub) broadcast(b []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- b:
		default:
			c.dropped.Add(1)
		}
	}
}
