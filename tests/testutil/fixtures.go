package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/store"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	store   store.Store
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(s store.Store) *Fixtures {
	return &Fixtures{store: s}
}

// CreateTeam stores a team with default values and the next free id
func (f *Fixtures) CreateTeam(t *testing.T, opts ...TeamOption) models.Team {
	t.Helper()
	f.counter++

	team := models.Team{
		Teamname: fmt.Sprintf("Team %d", f.counter),
		Members:  []string{fmt.Sprintf("member%d", f.counter)},
	}
	for _, opt := range opts {
		opt(&team)
	}

	err := f.store.Update(context.Background(), func(doc *models.Document) error {
		team.ID = doc.NextTeamID()
		doc.Teams = append(doc.Teams, team)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}

// TeamOption configures a test team
type TeamOption func(*models.Team)

// WithTeamname sets the team name
func WithTeamname(name string) TeamOption {
	return func(t *models.Team) {
		t.Teamname = name
	}
}

// CreateTicket stores an open ticket with default values and the next free id
func (f *Fixtures) CreateTicket(t *testing.T, opts ...TicketOption) models.Ticket {
	t.Helper()
	f.counter++

	ticket := models.Ticket{
		Title:       fmt.Sprintf("Ticket %d", f.counter),
		Description: "Something is broken",
		Team:        "Core",
		Status:      models.StatusOpen,
		Assignee:    "ann",
		Reporter:    "bob",
	}
	for _, opt := range opts {
		opt(&ticket)
	}

	err := f.store.Update(context.Background(), func(doc *models.Document) error {
		ticket.ID = doc.NextTicketID()
		doc.Tickets = append(doc.Tickets, ticket)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to create ticket: %v", err)
	}
	return ticket
}

// TicketOption configures a test ticket
type TicketOption func(*models.Ticket)

// WithStatus sets the ticket status without validating it
func WithStatus(status string) TicketOption {
	return func(t *models.Ticket) {
		t.Status = status
	}
}
