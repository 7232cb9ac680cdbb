package store

import (
	"context"
	"fmt"

	"github.com/dimitrije/ticketdesk-api/internal/config"
	"github.com/dimitrije/ticketdesk-api/internal/database"
)

// Open returns the store selected by cfg.Storage. Postgres stores are
// migrated before being returned.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return OpenFileStore(cfg.DataFile)
	case config.StoragePostgres:
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return NewPostgresStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
