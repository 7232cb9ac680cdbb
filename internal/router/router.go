package router

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"

	"github.com/dimitrije/ticketdesk-api/internal/handlers"
	"github.com/dimitrije/ticketdesk-api/internal/middleware"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Team   *handlers.TeamHandler
	Ticket *handlers.TicketHandler
	Events *handlers.EventsHandler
}

// New builds the HTTP handler serving every route.
func New(h Handlers, release bool) http.Handler {
	app := drift.New()

	if release {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(driftmw.Recovery())
	app.Use(middleware.RequestLogger())
	app.Use(driftmw.CORSWithConfig(driftmw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       86400,
	}))
	app.Use(driftmw.BodyParser())

	app.Post("/signup", h.Auth.Signup)
	app.Post("/login", h.Auth.Login)

	app.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	app.Get("/api/teams", h.Team.List)
	app.Post("/api/teams", h.Team.Create)
	app.Get("/api/teams/:id", h.Team.Get)
	app.Put("/api/teams/:id", h.Team.Update)
	app.Delete("/api/teams/:id", h.Team.Delete)

	app.Get("/api/tickets", h.Ticket.List)
	app.Post("/api/tickets", h.Ticket.Create)
	app.Get("/api/tickets/:id", h.Ticket.Get)
	app.Put("/api/tickets/:id", h.Ticket.Update)
	app.Delete("/api/tickets/:id", h.Ticket.Delete)

	app.Get("/api/events", h.Events.Stream)

	return app
}
