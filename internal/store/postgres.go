package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dimitrije/ticketdesk-api/internal/database"
	"github.com/dimitrije/ticketdesk-api/internal/models"
)

// PostgresStore keeps the document as a single JSONB row. Updates lock the
// row for the length of the transaction.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) View(ctx context.Context, fn func(doc *models.Document) error) error {
	var (
		data []byte
		seq  models.Sequences
	)
	err := s.db.Pool.QueryRow(ctx, `
		SELECT data, team_seq, ticket_seq
		FROM documents WHERE id = $1
	`, database.DocumentID).Scan(&data, &seq.Teams, &seq.Tickets)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	doc, err := decodeDocument(data, seq)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (s *PostgresStore) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		data []byte
		seq  models.Sequences
	)
	err = tx.QueryRow(ctx, `
		SELECT data, team_seq, ticket_seq
		FROM documents WHERE id = $1
		FOR UPDATE
	`, database.DocumentID).Scan(&data, &seq.Teams, &seq.Tickets)
	if err != nil {
		return fmt.Errorf("failed to lock document: %w", err)
	}

	doc, err := decodeDocument(data, seq)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	doc.Normalize()

	data, err = json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE documents SET data = $1, team_seq = $2, ticket_seq = $3, updated_at = NOW()
		WHERE id = $4
	`, data, doc.Seq.Teams, doc.Seq.Tickets, database.DocumentID)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

func decodeDocument(data []byte, seq models.Sequences) (*models.Document, error) {
	doc, err := Parse("documents", data)
	if err != nil {
		return nil, err
	}
	doc.Seq = seq
	return doc, nil
}
