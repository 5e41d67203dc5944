package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"growth-agent/internal/core/port"
)

// Services are the use cases served over HTTP.
type Services struct {
	Content  port.ContentUseCase
	Profiles port.ProfileUseCase
	Plans    port.GrowthPlanUseCase
}

// Options configures the router.
type Options struct {
	// JWTSecret verifies HS256 bearer tokens.
	JWTSecret string
	// TrustProxy resolves the client address from X-Forwarded-For and
	// X-Real-IP.
	TrustProxy bool
	// Instrument wraps every route, typically with request metrics.
	Instrument func(http.Handler) http.Handler
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router.
type Handler struct {
	svc    Services
	auth   *authenticator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:    svc,
		auth:   newAuthenticator(opts.JWTSecret),
		logger: logger,
	}
	r := chi.NewRouter()
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.RequestID, middleware.Recoverer)
	if opts.Instrument != nil {
		r.Use(opts.Instrument)
	}

	r.Get("/healthz", h.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth.identify)

		r.Post("/content/generate", h.handleGenerate)

		r.Group(func(r chi.Router) {
			r.Use(requireUser)

			r.Get("/content", h.handleListContent)
			r.Post("/content", h.handleCreateContent)
			r.Post("/content/{id}/approve", h.handleApproveContent)

			r.Get("/business/profile", h.handleGetProfile)
			r.Put("/business/profile", h.handleUpdateProfile)

			r.Get("/business/growth-plan", h.handleGrowthPlan)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
