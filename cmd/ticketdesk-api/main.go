package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/dimitrije/ticketdesk-api/internal/config"
	"github.com/dimitrije/ticketdesk-api/internal/handlers"
	"github.com/dimitrije/ticketdesk-api/internal/logging"
	"github.com/dimitrije/ticketdesk-api/internal/router"
	"github.com/dimitrije/ticketdesk-api/internal/services"
	"github.com/dimitrije/ticketdesk-api/internal/sse"
	"github.com/dimitrije/ticketdesk-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	flags := pflag.NewFlagSet("ticketdesk-api", pflag.ExitOnError)
	flags.StringVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: file or postgres")
	flags.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "path of the JSON data file (file storage)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	_ = flags.Parse(os.Args[1:])

	logging.Setup(cfg.LogLevel, cfg.IsProduction())

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage).Msg("failed to open store")
	}
	defer st.Close()

	userService := services.NewUserService(st)
	teamService := services.NewTeamService(st)
	ticketService := services.NewTicketService(st)

	hub := sse.NewHub()
	go hub.Run(ctx)

	handler := router.New(router.Handlers{
		Auth:   handlers.NewAuthHandler(userService),
		Team:   handlers.NewTeamHandler(teamService, hub),
		Ticket: handlers.NewTicketHandler(ticketService, hub),
		Events: handlers.NewEventsHandler(hub),
	}, cfg.IsProduction())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("storage", cfg.Storage).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
