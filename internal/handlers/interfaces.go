package handlers

import (
	"context"
	"encoding/json"

	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/services"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Signup(ctx context.Context, email, username, password string) error
	Login(ctx context.Context, username, password string) error
}

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	List(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	Create(ctx context.Context, teamname *string, members json.RawMessage) (*models.Team, error)
	Update(ctx context.Context, id int, teamname *string, members json.RawMessage) (*models.Team, error)
	Delete(ctx context.Context, id int) error
}

// TicketServiceInterface defines the methods used by handlers from TicketService
type TicketServiceInterface interface {
	List(ctx context.Context) ([]models.Ticket, error)
	GetByID(ctx context.Context, id int) (*models.Ticket, error)
	Create(ctx context.Context, in services.TicketInput) (*models.Ticket, error)
	Update(ctx context.Context, id int, in services.TicketInput) (*models.Ticket, error)
	Delete(ctx context.Context, id int) error
}

// BroadcasterInterface publishes change events after a successful write
type BroadcasterInterface interface {
	Broadcast(resource, action string, data any)
}
