package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Message is a change notification broadcast to the clients of one owner
// group after a successful mutation. Receivers refetch the named entity and
// reset their pagination to page zero, since the engine owns no pagination
// state and stale offsets would otherwise survive the refresh.
type Message struct {
	Type    string `json:"type"`
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	ID      string `json:"id,omitempty"`
	GroupID string `json:"group_id"`
}

// NewMessage creates a Message with Type derived from entity and action.
func NewMessage(groupID, entity, action, id string) Message {
	return Message{
		Type:    fmt.Sprintf("%s_%s", entity, action),
		Entity:  entity,
		Action:  action,
		ID:      id,
		GroupID: groupID,
	}
}

// Hub tracks connected clients per owner group and fans out change
// notifications. Clients of one group never see another group's messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client under its owner group.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	group, ok := h.clients[c.groupID]
	if !ok {
		group = make(map[*Client]struct{})
		h.clients[c.groupID] = group
	}
	group[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if group, ok := h.clients[c.groupID]; ok {
		if _, ok := group[c]; ok {
			delete(group, c)
			close(c.send)
		}
		if len(group) == 0 {
			delete(h.clients, c.groupID)
		}
	}
	h.mu.Unlock()
}

// Broadcast sends a message to every client of the message's owner group.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[msg.GroupID] {
		select {
		case c.send <- data:
		default:
			// Client buffer full - drop message to avoid blocking
		}
	}
}

// ClientCount returns the number of connected clients across all groups.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, group := range h.clients {
		n += len(group)
	}
	return n
}
