// Package http assembles the chi route tree and the HTTP server for the
// analysis API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/AyurChem-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware inputs of the route tree.
type RouterConfig struct {
	AnalysisHandler *handlers.AnalysisHandler
	HerbHandler     *handlers.HerbHandler
	HealthHandler   *handlers.HealthHandler

	Logger  logging.Logger
	CORS    *middleware.CORSConfig
	Logging middleware.LoggingConfig

	// Metrics records per-route request counts; nil disables the middleware.
	Metrics middleware.HTTPRecorder
	// MetricsHandler is mounted at MetricsPath (default /metrics) when set.
	MetricsHandler http.Handler
	MetricsPath    string
}

// NewRouter builds the route tree.  Recovery runs inside RequestLogging so a
// recovered panic is logged as a 500.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogging(logger, cfg.Logging))
	r.Use(middleware.Recovery(logger))
	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	r.NotFound(handlers.NotFound)

	if cfg.MetricsHandler != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.MetricsHandler)
	}

	if h := cfg.AnalysisHandler; h != nil {
		r.Get("/demo", h.Demo)
	}

	r.Route("/api", func(api chi.Router) {
		if h := cfg.HealthHandler; h != nil {
			api.Get("/health", h.Health)
			api.Get("/health/ready", h.Ready)
		}
		if h := cfg.AnalysisHandler; h != nil {
			api.Post("/analyze", h.Analyze)
		}
		registerHerbRoutes(api, cfg.HerbHandler)
	})

	return r
}

func registerHerbRoutes(r chi.Router, h *handlers.HerbHandler) {
	if h == nil {
		return
	}
	r.Route("/herbs", func(hr chi.Router) {
		hr.Get("/", h.List)
		hr.Get("/{herb}", h.Get)
		hr.Get("/{herb}/synergistic", h.Synergistic)
	})
	r.Get("/search", h.Search)
	r.Route("/catalog", func(cr chi.Router) {
		cr.Get("/herbs", h.CatalogList)
		cr.Get("/search", h.CatalogSearch)
	})
	r.Get("/dosha/{dosha}", h.ByDosha)
	r.Get("/graph/{herb}", h.Graph)
	r.Get("/compounds/search", h.CompoundSearch)
	r.Get("/compounds/{name}", h.Compound)
}

//Personal.AI order the ending
