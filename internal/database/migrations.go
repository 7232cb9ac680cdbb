package database

import (
	"context"
	"fmt"
)

// DocumentID is the primary key of the single document row.
const DocumentID = 1

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY,
		data JSONB NOT NULL,
		team_seq INTEGER NOT NULL DEFAULT 0,
		ticket_seq INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	fmt.Sprintf(`INSERT INTO documents (id, data)
		VALUES (%d, '{"users": [], "teams": [], "tickets": []}')
		ON CONFLICT (id) DO NOTHING`, DocumentID),
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
