package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/dimitrije/ticketdesk-api/internal/config"
	"github.com/dimitrije/ticketdesk-api/internal/logging"
	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	flags := pflag.NewFlagSet("import-data", pflag.ExitOnError)
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "target storage backend: file or postgres")
	flags.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "target data file (file storage)")
	flags.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "target database (postgres storage)")
	_ = flags.Parse(os.Args[1:])

	if flags.NArg() != 1 {
		fmt.Println("Usage: import-data [flags] <source.json|source.yaml>")
		flags.PrintDefaults()
		os.Exit(1)
	}
	source := flags.Arg(0)

	logging.Setup(cfg.LogLevel, cfg.IsProduction())

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	imported, err := store.ReadSource(source)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("failed to read source")
	}

	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage).Msg("failed to open store")
	}
	defer st.Close()

	err = st.Update(ctx, func(doc *models.Document) error {
		doc.Users = imported.Users
		doc.Teams = imported.Teams
		doc.Tickets = imported.Tickets
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to import document")
	}

	fmt.Printf("Imported %d users, %d teams and %d tickets from %s\n",
		len(imported.Users), len(imported.Teams), len(imported.Tickets), source)
}
