package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wellvoice/clinic-ops/internal/agents"
	"github.com/wellvoice/clinic-ops/internal/appointments"
	"github.com/wellvoice/clinic-ops/internal/http/handlers"
	httpmiddleware "github.com/wellvoice/clinic-ops/internal/http/middleware"
	"github.com/wellvoice/clinic-ops/internal/patients"
	"github.com/wellvoice/clinic-ops/internal/tasks"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	PatientsHandler     *patients.Handler
	AppointmentsHandler *appointments.Handler
	AgentsHandler       *agents.Handler
	TasksHandler        *tasks.Handler
	ImportHandler       *handlers.ImportHandler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string

	// Upload rate limiting; zero rate disables the limiter.
	ImportRatePerSec float64
	ImportBurst      int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/patients", func(p chi.Router) {
			p.Get("/", cfg.PatientsHandler.List)
			p.Post("/", cfg.PatientsHandler.Create)

			if cfg.ImportHandler != nil {
				importRoute := p.With()
				if cfg.ImportRatePerSec > 0 {
					importRoute = p.With(httpmiddleware.RateLimit(cfg.ImportRatePerSec, cfg.ImportBurst))
				}
				importRoute.Post("/import", cfg.ImportHandler.Import)
			}

			p.Route("/{id}", func(one chi.Router) {
				one.Get("/", cfg.PatientsHandler.Get)
				one.Put("/", cfg.PatientsHandler.Update)
				one.Delete("/", cfg.PatientsHandler.Delete)
				if cfg.AppointmentsHandler != nil {
					one.Get("/appointments", cfg.AppointmentsHandler.ListByPatient)
				}
			})
		})

		if cfg.AgentsHandler != nil {
			api.Route("/agents", func(a chi.Router) {
				a.Get("/", cfg.AgentsHandler.List)
				a.Post("/", cfg.AgentsHandler.Create)
				a.Get("/search", cfg.AgentsHandler.Search)
				a.Get("/{id}", cfg.AgentsHandler.Get)
				a.Delete("/{id}", cfg.AgentsHandler.Delete)
			})
		}

		if cfg.TasksHandler != nil {
			api.Route("/tasks", func(t chi.Router) {
				t.Get("/", cfg.TasksHandler.List)
				t.Patch("/{id}/status", cfg.TasksHandler.UpdateStatus)
			})
		}
	})

	return r
}
