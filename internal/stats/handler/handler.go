// Package handler exposes the statistics and dashboard endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udyam-portal/internal/platform/middleware"
	"udyam-portal/internal/stats/models"
	"udyam-portal/internal/transport/http/shared"
	respond "udyam-portal/internal/transport/http/shared/json"
)

// Service defines the interface for statistics and dashboard queries.
type Service interface {
	Statistics(ctx context.Context) (models.Statistics, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
}

// Handler handles statistics endpoints.
type Handler struct {
	logger *slog.Logger
	stats  Service
}

// New creates a new statistics Handler.
func New(stats Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		stats:  stats,
	}
}

// Register registers the statistics routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/statistics", h.handleStatistics)
	r.Get("/api/dashboard", h.handleDashboard)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Statistics(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dash, err := h.stats.Dashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard assembly failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, dash)
}
