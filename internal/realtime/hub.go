package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hirewire/hirewire/pkg/logger"
	"github.com/hirewire/hirewire/pkg/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 16
)

// Envelope is the typed event wrapper pushed to connected clients.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Hub maps a user identity to at most one live websocket connection.
// A later connection for the same identity replaces the earlier registry
// entry; the displaced channel is left to its own read loop to wind down.
type Hub struct {
	mu       sync.RWMutex
	conns    map[string]*connection
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewHub constructs an empty connection registry.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*connection),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				// Browser clients connect from the separately-hosted frontend.
				return true
			},
		},
		log: logger.WithModule("realtime"),
	}
}

// Serve upgrades the request to a WebSocket and registers it under identity.
// The protocol is receive-only from the client's perspective: inbound frames
// are drained and discarded, and the handler returns when the peer goes away.
func (h *Hub) Serve(identity string, w http.ResponseWriter, r *http.Request) {
	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.String("identity", identity), zap.Error(err))
		return
	}

	conn := &connection{socket: socket, identity: identity, done: make(chan struct{})}
	h.register(identity, conn)

	go conn.pingLoop()
	conn.readLoop()

	h.dropIf(identity, conn)
	conn.close()
}

// Send attempts best-effort delivery of payload to the identity's connection.
// Any transmission failure evicts the registry entry and reports non-delivery;
// it never surfaces an error to the caller.
func (h *Hub) Send(identity string, payload any) bool {
	h.mu.RLock()
	conn := h.conns[identity]
	h.mu.RUnlock()

	if conn == nil {
		return false
	}

	if err := conn.writeJSON(payload); err != nil {
		h.log.Debug("send failed, evicting connection",
			zap.String("identity", identity), zap.Error(err))
		h.dropIf(identity, conn)
		conn.close()
		return false
	}
	return true
}

// Broadcast delivers payload to every registered identity. Individual send
// failures are swallowed and do not affect delivery to the others.
func (h *Hub) Broadcast(payload any) {
	h.mu.RLock()
	identities := make([]string, 0, len(h.conns))
	for identity := range h.conns {
		identities = append(identities, identity)
	}
	h.mu.RUnlock()

	for _, identity := range identities {
		h.Send(identity, payload)
	}
}

// Disconnect removes the identity's registry entry if present and closes the
// channel. Calling it for an unknown identity is a no-op.
func (h *Hub) Disconnect(identity string) {
	h.mu.Lock()
	conn := h.conns[identity]
	if conn != nil {
		delete(h.conns, identity)
		metrics.LiveConnections.Set(float64(len(h.conns)))
	}
	h.mu.Unlock()

	if conn != nil {
		conn.close()
	}
}

// Connected reports whether the identity currently has a registered channel.
func (h *Hub) Connected(identity string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.conns[identity]
	return ok
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) register(identity string, conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prior := h.conns[identity]; prior != nil {
		h.log.Debug("replacing live connection", zap.String("identity", identity))
	}
	h.conns[identity] = conn
	metrics.LiveConnections.Set(float64(len(h.conns)))
}

// dropIf removes the entry only when conn is still the registered channel,
// so a disconnecting socket never evicts its own replacement.
func (h *Hub) dropIf(identity string, conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[identity] == conn {
		delete(h.conns, identity)
		metrics.LiveConnections.Set(float64(len(h.conns)))
	}
}

type connection struct {
	socket   *websocket.Conn
	identity string

	writeMu sync.Mutex
	once    sync.Once
	done    chan struct{}
}

func (c *connection) writeJSON(payload any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return c.socket.WriteJSON(payload)
}

func (c *connection) readLoop() {
	c.socket.SetReadLimit(maxMessageSize)
	_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.socket.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *connection) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *connection) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.socket.Close()
	})
}
