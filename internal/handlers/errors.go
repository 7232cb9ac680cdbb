package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog/log"

	"github.com/dimitrije/ticketdesk-api/internal/middleware"
	"github.com/dimitrije/ticketdesk-api/internal/services"
	"github.com/dimitrije/ticketdesk-api/pkg/dto"
)

// parseID reads the :id route parameter. On failure it has already written
// the same 404 an unknown id gets.
func parseID(c *drift.Context, resource string) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		_ = c.JSON(404, dto.ErrorResponse{Error: true, Message: notFoundMessage(resource, raw)})
		return 0, false
	}
	return id, true
}

// notFoundMessage echoes the id as the client wrote it, so /api/teams/007
// reports "007".
func notFoundMessage(resource, rawID string) string {
	return fmt.Sprintf("%s with ID %s not found", resource, rawID)
}

func badBody(c *drift.Context) {
	_ = c.JSON(400, dto.ErrorResponse{Error: true, Message: "invalid request body"})
}

// writeError turns a service error into a team/ticket error response.
// Anything not in the service taxonomy is logged and reported as a 500.
func writeError(c *drift.Context, err error, op string) {
	var (
		vErr  *services.ValidationError
		cErr  *services.ConflictError
		nfErr *services.NotFoundError
	)

	switch {
	case errors.As(err, &vErr):
		log.Debug().
			Str("request_id", middleware.GetRequestID(c)).
			Str("op", op).
			Str("reason", vErr.Message).
			Msg("validation failed")
		_ = c.JSON(400, dto.ErrorResponse{
			Error:          true,
			Message:        vErr.Message,
			MissingFields:  vErr.MissingFields,
			InvalidMembers: vErr.InvalidMembers,
			InvalidStatus:  vErr.InvalidStatus,
		})
	case errors.As(err, &cErr):
		_ = c.JSON(400, dto.ErrorResponse{
			Error:          true,
			Message:        cErr.Message,
			DuplicateTitle: cErr.Value,
		})
	case errors.As(err, &nfErr):
		msg := nfErr.Error()
		if raw := c.Param("id"); raw != "" {
			msg = notFoundMessage(nfErr.Resource, raw)
		}
		_ = c.JSON(404, dto.ErrorResponse{Error: true, Message: msg})
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("op", op).
			Msg("request failed")
		c.InternalServerError("failed to " + op)
	}
}
