// Package store owns the persisted document. Every read and write of
// users, teams and tickets goes through a Store.
package store

import (
	"context"

	"github.com/dimitrije/ticketdesk-api/internal/models"
)

// Store gives serialized access to the document.
//
// View passes the current document to fn; fn must not modify or retain it.
// Update passes fn a private copy and commits that copy only if fn returns
// nil, so a failed validation inside fn leaves the store untouched.
type Store interface {
	View(ctx context.Context, fn func(doc *models.Document) error) error
	Update(ctx context.Context, fn func(doc *models.Document) error) error
	Close() error
}
