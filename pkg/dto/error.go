package dto

// ErrorResponse is the body of every failed team or ticket request.
type ErrorResponse struct {
	Error          bool              `json:"error"`
	Message        string            `json:"message"`
	MissingFields  map[string]string `json:"missingFields,omitempty"`
	InvalidMembers []any             `json:"invalidMembers,omitempty"`
	DuplicateTitle string            `json:"duplicateTitle,omitempty"`
	InvalidStatus  *string           `json:"invalidStatus,omitempty"`
}

// StatusResponse is returned by deletes.
type StatusResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
