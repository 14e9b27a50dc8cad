package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/localstore"
	"github.com/heartmarshall/pet-health-journal/internal/config"
	"github.com/heartmarshall/pet-health-journal/internal/service/export"
	"github.com/heartmarshall/pet-health-journal/internal/service/journal"
	"github.com/heartmarshall/pet-health-journal/internal/transport/middleware"
	"github.com/heartmarshall/pet-health-journal/internal/transport/rest"
)

// RouterDeps are the collaborators of the HTTP handler.
type RouterDeps struct {
	Config   *config.Config
	Store    *localstore.Store
	Journal  *journal.Service
	Export   *export.Service
	Limiter  *middleware.RateLimiter
	Logger   *slog.Logger
	RemoteOn bool
}

// NewRouter mounts the health, journal and export routes behind the
// middleware stack.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(d.Store, d.RemoteOn, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	rest.NewJournalHandler(d.Journal, d.Logger).Register(mux)
	rest.NewExportHandler(d.Export, d.Logger).Register(mux)

	stack := middleware.Stack(d.Logger, d.Config.CORS, d.Limiter, d.Config.Server.WriteRateLimit)
	return stack(mux)
}
