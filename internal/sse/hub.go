package sse

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// Resources a client can subscribe to.
const (
	ResourceTeams   = "teams"
	ResourceTickets = "tickets"
)

// Change actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// DeletedEvent is the payload of *_deleted events.
type DeletedEvent struct {
	ID int `json:"id"`
}

type Client struct {
	ID string
	// Resources the client listens to. Empty means all of them.
	Resources map[string]bool
	Send      chan []byte
}

func (c *Client) wants(resource string) bool {
	return len(c.Resources) == 0 || c.Resources[resource]
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *ResourceMessage
	stopped    chan struct{}
	mu         sync.RWMutex
}

type ResourceMessage struct {
	Resource string
	Event    Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *ResourceMessage, 256),
		stopped:    make(chan struct{}),
	}
}

// Run dispatches registrations and broadcasts until ctx is done, then
// closes every remaining client. Clients registered after that are closed
// immediately.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Event)
			if err != nil {
				log.Error().Err(err).Str("type", msg.Event.Type).Msg("failed to encode event")
				continue
			}
			h.mu.RLock()
			for _, client := range h.clients {
				if client.wants(msg.Resource) {
					select {
					case client.Send <- data:
					default:
						// Client buffer full, skip
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stopped:
		close(client.Send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stopped:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a "<resource singular>_<action>" event for every client
// listening to resource. It never blocks; events are dropped when the
// queue is full.
func (h *Hub) Broadcast(resource, action string, data any) {
	msg := &ResourceMessage{
		Resource: resource,
		Event:    Event{Type: eventType(resource, action), Data: data},
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Str("type", msg.Event.Type).Msg("event queue full, dropping event")
	}
}

func eventType(resource, action string) string {
	switch resource {
	case ResourceTeams:
		return "team_" + action
	case ResourceTickets:
		return "ticket_" + action
	default:
		return resource + "_" + action
	}
}
