package socket

import (
	"encoding/json"
	"sync"

	"contentdesk/pkg/logger"
)

const (
	ContentCreatedType = "CONTENT_CREATED" // A record was created
	ContentUpdatedType = "CONTENT_UPDATED" // A record's fields changed
	ContentDeletedType = "CONTENT_DELETED" // A record was removed
)

// Event is a content lifecycle notification pushed to every connected
// client. The payload is the affected record, or its id for deletes.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans content events out to all connected websocket clients. There
// is a single feed; every client sees every event. The store mutation is
// already complete by the time an event reaches the hub, so the feed is
// purely observational.
type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan Event
	Register   chan *Client
	Unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan Event, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.Broadcast:
			// Marshal the event once to be sent to all clients.
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast event: %v", err)
				continue
			}

			// Copy the client set so the send loop runs outside the lock.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.Send <- payload:
				default:
					// The send buffer is full, the client is lagging.
					// Drop it so one slow reader cannot stall the feed.
					logger.Sugar.Warn("Client send buffer is full. Unregistering.")
					h.mu.Lock()
					h.remove(client)
					h.mu.Unlock()
				}
			}
		}
	}
}

// remove must be called with the hub lock held.
func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
