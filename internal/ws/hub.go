// Package ws pushes live order-status updates to payment and confirmation
// pages. Clients subscribe to a single order number; a successful status
// writeback broadcasts to everyone watching that order.
package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// StatusPayload is the payload for "order.status" events
type StatusPayload struct {
	OrderNo string `json:"orderNo"`
	Status  string `json:"status"`
}

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	// Registered clients by order number
	rooms map[string]map[*Client]bool

	// Inbound messages from clients (register/unregister)
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister requests. The application runs Run in
// its own goroutine before clients connect.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.orderNo] == nil {
				h.rooms[client.orderNo] = make(map[*Client]bool)
			}
			h.rooms[client.orderNo][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.orderNo]; ok {
				if room[client] {
					delete(room, client)
					close(client.send)
				}
				// Clean up empty rooms
				if len(room) == 0 {
					delete(h.rooms, client.orderNo)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStatus notifies every client watching orderNo of its new status.
// Orders with no watchers are a no-op.
func (h *Hub) BroadcastStatus(orderNo, status string) {
	payload, err := json.Marshal(StatusPayload{OrderNo: orderNo, Status: status})
	if err != nil {
		log.Printf("ERROR: marshaling status payload: %v", err)
		return
	}
	h.broadcastToOrder(orderNo, Event{Type: "order.status", Payload: payload})
}

func (h *Hub) broadcastToOrder(orderNo string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ERROR: marshaling ws event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[orderNo] {
		select {
		case client.send <- data:
		default:
			// Slow client; drop the message rather than block the hub
		}
	}
}
