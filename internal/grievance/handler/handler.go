// Package handler exposes grievance filing and ticket lookup over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mssola/useragent"

	"udyam-portal/internal/grievance/models"
	"udyam-portal/internal/platform/middleware"
	"udyam-portal/internal/transport/http/shared"
	respond "udyam-portal/internal/transport/http/shared/json"
	dErrors "udyam-portal/pkg/domain-errors"
)

// Service defines the interface for grievance operations.
type Service interface {
	File(ctx context.Context, req models.FileRequest, device string) (models.FileResult, error)
	Ticket(ctx context.Context, ticketNumber string) (models.Ticket, error)
}

// Handler handles grievance endpoints.
type Handler struct {
	logger    *slog.Logger
	grievance Service
}

// New creates a new grievance Handler.
func New(grievance Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		grievance: grievance,
	}
}

// Register registers the grievance routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/grievances", h.handleFile)
	r.Get("/api/grievances/{ticket}", h.handleTicket)
}

func (h *Handler) handleFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.FileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode grievance request",
			"request_id", requestID,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.grievance.File(ctx, req, deviceContext(r.UserAgent()))
	if err != nil {
		h.logger.WarnContext(ctx, "grievance filing failed",
			"request_id", requestID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.grievance.Ticket(r.Context(), chi.URLParam(r, "ticket"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, ticket)
}

// deviceContext condenses the User-Agent into the short description support
// staff see on the ticket.
func deviceContext(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	name, version := ua.Browser()
	if name == "" {
		return ""
	}
	device := fmt.Sprintf("%s %s on %s", name, version, ua.OS())
	if ua.Mobile() {
		device += " (mobile)"
	}
	return device
}
