package dto

import "github.com/dimitrije/ticketdesk-api/internal/models"

type TicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Team        *string `json:"team"`
	Status      *string `json:"status"`
	Assignee    *string `json:"assignee"`
	Reporter    *string `json:"reporter"`
}

type TicketResponse struct {
	Error   bool           `json:"error"`
	Message string         `json:"message"`
	Ticket  *models.Ticket `json:"ticket"`
}
