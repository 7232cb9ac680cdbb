package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/services"
	"github.com/dimitrije/ticketdesk-api/internal/sse"
	"github.com/dimitrije/ticketdesk-api/pkg/dto"
	"github.com/dimitrije/ticketdesk-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTicketTest(t *testing.T) (*testutil.MockTicketService, http.Handler) {
	t.Helper()
	mockTicketService, _, app := setupTicketTestWithEvents(t)
	return mockTicketService, app
}

func setupTicketTestWithEvents(t *testing.T) (*testutil.MockTicketService, *testutil.MockBroadcaster, http.Handler) {
	t.Helper()
	mockTicketService := new(testutil.MockTicketService)
	events := testutil.NewMockBroadcaster()
	handler := NewTicketHandler(mockTicketService, events)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/api/tickets", handler.List)
	app.Post("/api/tickets", handler.Create)
	app.Get("/api/tickets/:id", handler.Get)
	app.Put("/api/tickets/:id", handler.Update)
	app.Delete("/api/tickets/:id", handler.Delete)
	return mockTicketService, events, app
}

func sampleTicket() *models.Ticket {
	return &models.Ticket{
		ID:          1,
		Title:       "Login broken",
		Description: "Users cannot log in",
		Team:        "Alpha",
		Status:      models.StatusOpen,
		Assignee:    "ann",
		Reporter:    "bob",
	}
}

func TestTicketHandler_Create_Success(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	ticket := sampleTicket()
	mockTicketService.On("Create", mock.Anything, mock.MatchedBy(func(in services.TicketInput) bool {
		return in.Title != nil && *in.Title == "Login broken" && in.Status != nil && *in.Status == "OPEN"
	})).Return(ticket, nil)

	rec := doRequest(app, http.MethodPost, "/api/tickets", `{
		"title": "Login broken",
		"description": "Users cannot log in",
		"team": "Alpha",
		"status": "OPEN",
		"assignee": "ann",
		"reporter": "bob"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var response dto.TicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Error)
	assert.Equal(t, "Ticket created successfully", response.Message)
	assert.Equal(t, ticket, response.Ticket)
	mockTicketService.AssertExpectations(t)
}

func TestTicketHandler_Create_MissingFields(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	missing := map[string]string{"title": "Title is required", "reporter": "Reporter is required"}
	mockTicketService.On("Create", mock.Anything, mock.Anything).
		Return(nil, &services.ValidationError{Message: "All fields are required", MissingFields: missing})

	rec := doRequest(app, http.MethodPost, "/api/tickets", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	response := decodeError(t, rec)
	assert.Equal(t, "All fields are required", response.Message)
	assert.Equal(t, missing, response.MissingFields)
}

func TestTicketHandler_Create_InvalidStatus(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	status := "urgent"
	mockTicketService.On("Create", mock.Anything, mock.Anything).
		Return(nil, &services.ValidationError{Message: "Invalid status value", InvalidStatus: &status})

	rec := doRequest(app, http.MethodPost, "/api/tickets", `{"status":"URGENT"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	response := decodeError(t, rec)
	require.NotNil(t, response.InvalidStatus)
	assert.Equal(t, "urgent", *response.InvalidStatus)
}

func TestTicketHandler_Get(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	mockTicketService.On("GetByID", mock.Anything, 1).Return(sampleTicket(), nil)
	mockTicketService.On("GetByID", mock.Anything, 2).Return(nil, &services.NotFoundError{Resource: "Ticket", ID: "2"})

	rec := doRequest(app, http.MethodGet, "/api/tickets/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var ticket models.Ticket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
	assert.Equal(t, *sampleTicket(), ticket)

	rec = doRequest(app, http.MethodGet, "/api/tickets/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ticket with ID 2 not found", decodeError(t, rec).Message)
}

func TestTicketHandler_Update(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	updated := sampleTicket()
	updated.Status = models.StatusClosed
	mockTicketService.On("Update", mock.Anything, 1, mock.MatchedBy(func(in services.TicketInput) bool {
		return in.Status != nil && *in.Status == "closed" && in.Title == nil
	})).Return(updated, nil)

	rec := doRequest(app, http.MethodPut, "/api/tickets/1", `{"status":"closed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response dto.TicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Ticket updated successfully", response.Message)
	assert.Equal(t, models.StatusClosed, response.Ticket.Status)
	mockTicketService.AssertExpectations(t)
}

func TestTicketHandler_Delete(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	mockTicketService.On("Delete", mock.Anything, 4).Return(nil)

	rec := doRequest(app, http.MethodDelete, "/api/tickets/4", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":false,"message":"Ticket with ID 4 deleted successfully"}`, rec.Body.String())
}

func TestTicketHandler_Delete_NonNumericID(t *testing.T) {
	_, app := setupTicketTest(t)

	rec := doRequest(app, http.MethodDelete, "/api/tickets/x1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ticket with ID x1 not found", decodeError(t, rec).Message)
}

func TestTicketHandler_MessagesEchoIDAsWritten(t *testing.T) {
	mockTicketService, app := setupTicketTest(t)

	mockTicketService.On("Delete", mock.Anything, 4).Return(nil)
	mockTicketService.On("GetByID", mock.Anything, 9).Return(nil, &services.NotFoundError{Resource: "Ticket", ID: "9"})

	rec := doRequest(app, http.MethodDelete, "/api/tickets/004", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":false,"message":"Ticket with ID 004 deleted successfully"}`, rec.Body.String())

	rec = doRequest(app, http.MethodGet, "/api/tickets/+9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ticket with ID +9 not found", decodeError(t, rec).Message)
}

func TestTicketHandler_BroadcastsUpdate(t *testing.T) {
	mockTicketService, events, app := setupTicketTestWithEvents(t)

	ticket := sampleTicket()
	mockTicketService.On("Update", mock.Anything, 1, mock.Anything).Return(ticket, nil)

	doRequest(app, http.MethodPut, "/api/tickets/1", `{"assignee":"carl"}`)

	events.AssertCalled(t, "Broadcast", sse.ResourceTickets, sse.ActionUpdated, ticket)
}
