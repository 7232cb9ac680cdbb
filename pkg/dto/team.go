package dto

import (
	"encoding/json"

	"github.com/dimitrije/ticketdesk-api/internal/models"
)

// TeamRequest is the body of both create and update. Members is kept raw
// so non-array values reach validation instead of failing the bind.
type TeamRequest struct {
	Teamname *string         `json:"teamname"`
	Members  json.RawMessage `json:"members"`
}

type TeamResponse struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	Team    *models.Team `json:"team"`
}
