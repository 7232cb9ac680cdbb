package services

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError rejects malformed or missing input. Only the detail
// fields relevant to the failed rule are set.
type ValidationError struct {
	Message        string
	MissingFields  map[string]string
	InvalidMembers []any
	InvalidStatus  *string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError rejects a value that must be unique.
type ConflictError struct {
	Message string
	Value   string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown record id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}
