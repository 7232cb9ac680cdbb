package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog/log"

	"github.com/dimitrije/ticketdesk-api/internal/sse"
	"github.com/dimitrije/ticketdesk-api/pkg/dto"
)

// SSEHubInterface defines the methods used by the events handler from the Hub
type SSEHubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
}

type EventsHandler struct {
	hub SSEHubInterface
}

func NewEventsHandler(hub SSEHubInterface) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream sends team and ticket change events as server-sent events until
// the client disconnects. ?resource=teams,tickets narrows the feed.
func (h *EventsHandler) Stream(c *drift.Context) {
	resources, err := parseResources(c.QueryParam("resource"))
	if err != nil {
		_ = c.JSON(400, dto.ErrorResponse{Error: true, Message: err.Error()})
		return
	}

	sseCtx := c.SSE()

	client := &sse.Client{
		ID:        uuid.New().String(),
		Resources: resources,
		Send:      make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": client.ID,
	}, "system", ""); err != nil {
		return
	}
	log.Debug().Str("client_id", client.ID).Msg("event stream opened")

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			log.Debug().Str("client_id", client.ID).Msg("event stream closed")
			return
		}
	}
}

func parseResources(raw string) (map[string]bool, error) {
	resources := make(map[string]bool)
	for _, r := range strings.Split(raw, ",") {
		r = strings.ToLower(strings.TrimSpace(r))
		switch r {
		case "":
		case sse.ResourceTeams, sse.ResourceTickets:
			resources[r] = true
		default:
			return nil, fmt.Errorf("unknown resource %q", r)
		}
	}
	return resources, nil
}
