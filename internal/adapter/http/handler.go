package httpadapter

import (
	"ad-strategy/internal/core/port"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Options tune the transport behaviour of the handler.
type Options struct {
	// Env selects the CORS policy: dev and development allow any origin.
	Env string
	// AllowedOrigins are the CORS origins outside development.
	AllowedOrigins []string
	// RateLimit is the sustained number of strategy requests per second
	// accepted by the process. Zero disables rate limiting.
	RateLimit float64
	RateBurst int
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the strategy use case, a logger for structured logging and the
// optional rate limiter guarding strategy generation.
type Handler struct {
	svc     port.StrategyUseCase
	logger  *slog.Logger
	router  chi.Router
	limiter *rate.Limiter
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.StrategyUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger}
	if opts.RateLimit > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.RateBurst, 1))
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if c := corsOptions(opts); c != nil {
		r.Use(cors.Handler(*c))
	}
	r.Use(h.requestContext)

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.With(h.rateLimit).Post("/generate_strategy", h.handleGenerateStrategy)

	r.Route("/api/v1", func(r chi.Router) {
		r.With(h.rateLimit).Post("/strategy/generate", h.handleGenerateStrategy)
		r.Get("/strategy/runs", h.handleListRuns)
		r.Get("/strategy/runs/{id}", h.handleGetRun)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// corsOptions returns nil when no cross-origin access should be granted.
func corsOptions(opts Options) *cors.Options {
	origins := opts.AllowedOrigins
	switch strings.ToLower(opts.Env) {
	case "dev", "development":
		origins = []string{"*"}
	}
	if len(origins) == 0 {
		return nil
	}
	return &cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{headerRequestID, headerProcessTime},
		AllowCredentials: true,
		MaxAge:           300,
	}
}
