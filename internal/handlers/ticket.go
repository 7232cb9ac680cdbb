package handlers

import (
	"fmt"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/ticketdesk-api/internal/services"
	"github.com/dimitrije/ticketdesk-api/internal/sse"
	"github.com/dimitrije/ticketdesk-api/pkg/dto"
)

type TicketHandler struct {
	ticketService TicketServiceInterface
	events        BroadcasterInterface
}

func NewTicketHandler(ticketService TicketServiceInterface, events BroadcasterInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, events: events}
}

func (h *TicketHandler) List(c *drift.Context) {
	tickets, err := h.ticketService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "list tickets")
		return
	}

	_ = c.JSON(200, tickets)
}

func (h *TicketHandler) Create(c *drift.Context) {
	var req dto.TicketRequest
	if err := c.BindJSON(&req); err != nil {
		badBody(c)
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), ticketInput(req))
	if err != nil {
		writeError(c, err, "create ticket")
		return
	}

	h.events.Broadcast(sse.ResourceTickets, sse.ActionCreated, ticket)
	_ = c.JSON(201, dto.TicketResponse{
		Error:   false,
		Message: "Ticket created successfully",
		Ticket:  ticket,
	})
}

func (h *TicketHandler) Get(c *drift.Context) {
	id, ok := parseID(c, "Ticket")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "get ticket")
		return
	}

	_ = c.JSON(200, ticket)
}

func (h *TicketHandler) Update(c *drift.Context) {
	id, ok := parseID(c, "Ticket")
	if !ok {
		return
	}

	var req dto.TicketRequest
	if err := c.BindJSON(&req); err != nil {
		badBody(c)
		return
	}

	ticket, err := h.ticketService.Update(c.Request.Context(), id, ticketInput(req))
	if err != nil {
		writeError(c, err, "update ticket")
		return
	}

	h.events.Broadcast(sse.ResourceTickets, sse.ActionUpdated, ticket)
	_ = c.JSON(200, dto.TicketResponse{
		Error:   false,
		Message: "Ticket updated successfully",
		Ticket:  ticket,
	})
}

func (h *TicketHandler) Delete(c *drift.Context) {
	id, ok := parseID(c, "Ticket")
	if !ok {
		return
	}

	if err := h.ticketService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "delete ticket")
		return
	}

	h.events.Broadcast(sse.ResourceTickets, sse.ActionDeleted, sse.DeletedEvent{ID: id})
	_ = c.JSON(200, dto.StatusResponse{
		Error:   false,
		Message: fmt.Sprintf("Ticket with ID %s deleted successfully", c.Param("id")),
	})
}

func ticketInput(req dto.TicketRequest) services.TicketInput {
	return services.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Team:        req.Team,
		Status:      req.Status,
		Assignee:    req.Assignee,
		Reporter:    req.Reporter,
	}
}
