package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a real-time presence event sent to listeners of a voice
// channel (user joined, user left, channel closed).
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single listener on a voice channel's event stream.
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub manages all active voice channels and their listeners.
type Hub struct {
	channels map[string]map[Client]bool
	mu       sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a new listener to a specific voice channel.
func (h *Hub) Subscribe(channelID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.channels[channelID]; !ok {
		h.channels[channelID] = make(map[Client]bool)
	}
	h.channels[channelID][client] = true
}

// Unsubscribe removes a listener from a voice channel.
func (h *Hub) Unsubscribe(channelID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.channels[channelID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.channels, channelID)
			}
		}
	}
}

// Broadcast sends an event to all listeners of a voice channel.
func (h *Hub) Broadcast(channelID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.channels[channelID]; ok {
		messageBytes, err := json.Marshal(event)
		if err != nil {
			return
		}

		for client := range clients {
			// Use a non-blocking send to prevent a slow listener from blocking the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full, maybe they are disconnected or slow.
				// The unsubscribe logic will handle cleaning this up eventually.
			}
		}
	}
}
