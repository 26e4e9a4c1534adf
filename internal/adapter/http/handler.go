package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"agency-hub/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes and validates requests, calls the record store or a
// usecase, and maps results to status codes. Routes are registered on a
// chi.Router.
type Handler struct {
	store     port.RecordStore
	dashboard port.DashboardUseCase
	users     port.UserUseCase
	logger    *slog.Logger
	metrics   *Metrics
	validate  *validator.Validate
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. metrics may be
// nil, in which case requests are not instrumented and no metrics endpoint
// is mounted.
func NewHandler(
	store port.RecordStore,
	dashboard port.DashboardUseCase,
	users port.UserUseCase,
	logger *slog.Logger,
	metrics *Metrics,
) *Handler {
	h := &Handler{
		store:     store,
		dashboard: dashboard,
		users:     users,
		logger:    logger,
		metrics:   metrics,
		validate:  newValidator(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	if metrics != nil {
		r.Use(metrics.instrument)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metrics != nil {
		r.Method(http.MethodGet, metrics.path, metrics.handler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handleList(h, projects, h.store.ListProjects))
			r.Post("/", handleCreate(h, projects, h.store.CreateProject))
			r.Get("/{id}", handleGet(h, projects, h.store.GetProject))
			r.Patch("/{id}", handleUpdate(h, projects, h.store.UpdateProject))
			r.Delete("/{id}", handleDelete(h, projects, h.store.DeleteProject))
			r.Get("/{id}/profitability", handleGet(h, profitability, h.store.FindProfitabilityByProject))
		})
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", handleList(h, assets, h.store.ListAssets))
			r.Post("/", handleCreate(h, assets, h.store.CreateAsset))
			r.Get("/{id}", handleGet(h, assets, h.store.GetAsset))
			r.Delete("/{id}", handleDelete(h, assets, h.store.DeleteAsset))
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", handleList(h, campaigns, h.store.ListCampaigns))
			r.Post("/", handleCreate(h, campaigns, h.store.CreateCampaign))
			r.Get("/{id}", handleGet(h, campaigns, h.store.GetCampaign))
			r.Patch("/{id}", handleUpdate(h, campaigns, h.store.UpdateCampaign))
			r.Delete("/{id}", handleDelete(h, campaigns, h.store.DeleteCampaign))
		})
		r.Route("/messages", func(r chi.Router) {
			r.Get("/", handleList(h, messages, h.store.ListMessages))
			r.Post("/", handleCreate(h, messages, h.store.CreateMessage))
			r.Get("/{id}", handleGet(h, messages, h.store.GetMessage))
			r.Delete("/{id}", handleDelete(h, messages, h.store.DeleteMessage))
		})
		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", handleList(h, feedback, h.store.ListFeedbackItems))
			r.Post("/", handleCreate(h, feedback, h.store.CreateFeedbackItem))
			r.Get("/{id}", handleGet(h, feedback, h.store.GetFeedbackItem))
			r.Delete("/{id}", handleDelete(h, feedback, h.store.DeleteFeedbackItem))
		})
		r.Route("/team-members", func(r chi.Router) {
			r.Get("/", handleList(h, teamMembers, h.store.ListTeamMembers))
			r.Post("/", handleCreate(h, teamMembers, h.store.CreateTeamMember))
			r.Get("/{id}", handleGet(h, teamMembers, h.store.GetTeamMember))
			r.Patch("/{id}", handleUpdate(h, teamMembers, h.store.UpdateTeamMember))
			r.Delete("/{id}", handleDelete(h, teamMembers, h.store.DeleteTeamMember))
		})
		r.Route("/project-profitability", func(r chi.Router) {
			r.Get("/", handleList(h, profitability, h.store.ListProfitability))
			r.Post("/", handleCreate(h, profitability, h.store.CreateProfitability))
			r.Get("/{id}", handleGet(h, profitability, h.store.GetProfitability))
			r.Patch("/{id}", handleUpdate(h, profitability, h.store.UpdateProfitability))
			r.Delete("/{id}", handleDelete(h, profitability, h.store.DeleteProfitability))
		})

		r.Get("/dashboard/stats", h.handleDashboardStats)
		r.Get("/resources/summary", h.handleResourceSummary)

		r.Post("/users", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
