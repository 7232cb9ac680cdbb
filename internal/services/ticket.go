package services

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/store"
)

// TicketInput carries the ticket fields of a create or update request.
// A nil field was absent from the request.
type TicketInput struct {
	Title       *string
	Description *string
	Team        *string
	Status      *string
	Assignee    *string
	Reporter    *string
}

// ticketFields is the trimmed input of a create. Every failing required
// field is reported; status is only checked against the enum once all
// fields are present.
type ticketFields struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Team        string `json:"team" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=open in-progress resolved closed"`
	Assignee    string `json:"assignee" validate:"required"`
	Reporter    string `json:"reporter" validate:"required"`
}

type TicketService struct {
	store    store.Store
	validate *validator.Validate
}

func NewTicketService(s store.Store) *TicketService {
	return &TicketService{
		store:    s,
		validate: newValidator(),
	}
}

func (s *TicketService) List(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.store.View(ctx, func(doc *models.Document) error {
		tickets = make([]models.Ticket, len(doc.Tickets))
		copy(tickets, doc.Tickets)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *TicketService) GetByID(ctx context.Context, id int) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.store.View(ctx, func(doc *models.Document) error {
		i := findTicket(doc.Tickets, id)
		if i < 0 {
			return ticketNotFound(id)
		}
		ticket = doc.Tickets[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketService) Create(ctx context.Context, in TicketInput) (*models.Ticket, error) {
	fields := ticketFields{
		Title:       strings.TrimSpace(deref(in.Title)),
		Description: strings.TrimSpace(deref(in.Description)),
		Team:        strings.TrimSpace(deref(in.Team)),
		Status:      normalizeStatus(deref(in.Status)),
		Assignee:    strings.TrimSpace(deref(in.Assignee)),
		Reporter:    strings.TrimSpace(deref(in.Reporter)),
	}
	if err := s.validate.Struct(fields); err != nil {
		return nil, ticketFieldsError(err, fields.Status)
	}

	ticket := models.Ticket{
		Title:       fields.Title,
		Description: fields.Description,
		Team:        fields.Team,
		Status:      fields.Status,
		Assignee:    fields.Assignee,
		Reporter:    fields.Reporter,
	}

	err := s.store.Update(ctx, func(doc *models.Document) error {
		ticket.ID = doc.NextTicketID()
		doc.Tickets = append(doc.Tickets, ticket)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Update merges the supplied fields into the ticket. A field is supplied
// when it is present and not an empty string. The resulting status is
// always re-validated, whether or not it changed.
func (s *TicketService) Update(ctx context.Context, id int, in TicketInput) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.store.Update(ctx, func(doc *models.Document) error {
		i := findTicket(doc.Tickets, id)
		if i < 0 {
			return ticketNotFound(id)
		}

		ticket = doc.Tickets[i]
		merge(&ticket.Title, in.Title)
		merge(&ticket.Description, in.Description)
		merge(&ticket.Team, in.Team)
		merge(&ticket.Assignee, in.Assignee)
		merge(&ticket.Reporter, in.Reporter)
		if deref(in.Status) != "" {
			ticket.Status = normalizeStatus(*in.Status)
		}

		if err := s.checkStatus(ticket.Status); err != nil {
			return err
		}

		tickets := make([]models.Ticket, len(doc.Tickets))
		for j, t := range doc.Tickets {
			if t.ID == id {
				t = ticket
			}
			tickets[j] = t
		}
		slices.SortStableFunc(tickets, func(a, b models.Ticket) int { return cmp.Compare(a.ID, b.ID) })
		doc.Tickets = tickets
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id int) error {
	return s.store.Update(ctx, func(doc *models.Document) error {
		i := findTicket(doc.Tickets, id)
		if i < 0 {
			return ticketNotFound(id)
		}
		doc.Tickets = slices.Delete(doc.Tickets, i, i+1)
		return nil
	})
}

func findTicket(tickets []models.Ticket, id int) int {
	return slices.IndexFunc(tickets, func(t models.Ticket) bool { return t.ID == id })
}

func ticketNotFound(id int) error {
	return &NotFoundError{Resource: "Ticket", ID: strconv.Itoa(id)}
}

func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *TicketService) checkStatus(status string) error {
	if err := s.validate.Var(status, statusRule); err != nil {
		return invalidStatus(status)
	}
	return nil
}

func invalidStatus(status string) error {
	return &ValidationError{
		Message:       "Invalid status value",
		InvalidStatus: &status,
	}
}

// ticketFieldsError maps a failed ticketFields check: missing fields win,
// otherwise the status was rejected by its enum rule.
func ticketFieldsError(err error, status string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := map[string]string{}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing[fe.Field()] = requiredMessage(fe.Field())
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Message:       "All fields are required",
			MissingFields: missing,
		}
	}
	return invalidStatus(status)
}

func merge(dst *string, v *string) {
	if deref(v) != "" {
		*dst = strings.TrimSpace(*v)
	}
}
