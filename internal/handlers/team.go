package handlers

import (
	"fmt"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/ticketdesk-api/internal/sse"
	"github.com/dimitrije/ticketdesk-api/pkg/dto"
)

type TeamHandler struct {
	teamService TeamServiceInterface
	events      BroadcasterInterface
}

func NewTeamHandler(teamService TeamServiceInterface, events BroadcasterInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService, events: events}
}

func (h *TeamHandler) List(c *drift.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "list teams")
		return
	}

	_ = c.JSON(200, teams)
}

func (h *TeamHandler) Create(c *drift.Context) {
	var req dto.TeamRequest
	if err := c.BindJSON(&req); err != nil {
		badBody(c)
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), req.Teamname, req.Members)
	if err != nil {
		writeError(c, err, "create team")
		return
	}

	h.events.Broadcast(sse.ResourceTeams, sse.ActionCreated, team)
	_ = c.JSON(201, dto.TeamResponse{
		Error:   false,
		Message: "Team created successfully",
		Team:    team,
	})
}

func (h *TeamHandler) Get(c *drift.Context) {
	id, ok := parseID(c, "Team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "get team")
		return
	}

	_ = c.JSON(200, team)
}

func (h *TeamHandler) Update(c *drift.Context) {
	id, ok := parseID(c, "Team")
	if !ok {
		return
	}

	var req dto.TeamRequest
	if err := c.BindJSON(&req); err != nil {
		badBody(c)
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, req.Teamname, req.Members)
	if err != nil {
		writeError(c, err, "update team")
		return
	}

	h.events.Broadcast(sse.ResourceTeams, sse.ActionUpdated, team)
	_ = c.JSON(200, dto.TeamResponse{
		Error:   false,
		Message: "Team updated successfully",
		Team:    team,
	})
}

func (h *TeamHandler) Delete(c *drift.Context) {
	id, ok := parseID(c, "Team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "delete team")
		return
	}

	h.events.Broadcast(sse.ResourceTeams, sse.ActionDeleted, sse.DeletedEvent{ID: id})
	_ = c.JSON(200, dto.StatusResponse{
		Error:   false,
		Message: fmt.Sprintf("Team with ID %s deleted successfully", c.Param("id")),
	})
}
