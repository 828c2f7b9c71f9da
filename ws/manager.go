package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/exp/slog"
)

const writeWait = 5 * time.Second

// Event is pushed to every connection of the reminder's owner.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Manager keeps track of the open websocket connections of each user.
type Manager struct {
	mu      sync.RWMutex
	clients map[uint]map[*websocket.Conn]*client
	logger  *slog.Logger
}

func NewManager(logger *slog.Logger) *Manager {
	return &Manager{clients: make(map[uint]map[*websocket.Conn]*client), logger: logger}
}

// Register adds a connection for userID.
func (m *Manager) Register(userID uint, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.clients[userID]
	if !ok {
		conns = make(map[*websocket.Conn]*client)
		m.clients[userID] = conns
	}
	conns[conn] = &client{conn: conn}
}

// Unregister closes and removes one connection of userID.
func (m *Manager) Unregister(userID uint, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.clients[userID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; ok {
		_ = conn.Close()
		delete(conns, conn)
	}
	if len(conns) == 0 {
		delete(m.clients, userID)
	}
}

// Publish sends an event to every connection of userID. Failed writes drop
// the connection; nothing is queued for users that are offline.
func (m *Manager) Publish(userID uint, eventType string, data interface{}) {
	m.mu.RLock()
	targets := make([]*client, 0, len(m.clients[userID]))
	for _, c := range m.clients[userID] {
		targets = append(targets, c)
	}
	m.mu.RUnlock()
	if len(targets) == 0 {
		return
	}

	payload, err := json.Marshal(Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		m.logger.Warn("ws: encode event", "type", eventType, "error", err)
		return
	}

	for _, c := range targets {
		if err := c.write(payload); err != nil {
			m.logger.Info("ws: dropping connection", "user_id", userID, "error", err)
			m.Unregister(userID, c.conn)
		}
	}
}

// Count returns the number of open connections of userID.
func (m *Manager) Count(userID uint) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID])
}
