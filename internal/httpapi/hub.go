package httpapi

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/hexmind/hexengine/internal/engine"
)

// hub fans one game's state out to every browser watching it over a
// websocket, the same push-on-change shape statefullgame uses.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain and discard inbound frames; this socket is push-only. When
	// the client disconnects, ReadMessage returns an error and we drop it.
	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

func (h *hub) broadcast(state engine.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(state); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
