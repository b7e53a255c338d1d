package hub

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event types published by the catalog core.
const (
	EventGameAdded         = "game.added"
	EventPreferenceChanged = "preference.changed"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is a channel the SSE handler listens to.
type Client chan []byte

// Publisher accepts events; *Hub implements it.
type Publisher interface {
	Broadcast(event Event)
}

// Hub fans events out to every subscribed client.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe registers client for future events.
func (h *Hub) Subscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

// Unsubscribe removes client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Len returns the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to all clients.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		slog.Warn("hub: marshal event", "type", event.Type, "err", err)
		return
	}

	for client := range h.clients {
		// A slow client must not block the publisher.
		select {
		case client <- messageBytes:
		default:
			slog.Debug("hub: dropped event for slow client", "type", event.Type)
		}
	}
}

// Discard is a Publisher that drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Broadcast(Event) {}
