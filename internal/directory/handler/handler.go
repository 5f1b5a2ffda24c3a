// Package handler exposes the public directory over HTTP: status tracking,
// certificate verification, and PIN code autofill.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udyam-portal/internal/directory/models"
	"udyam-portal/internal/platform/middleware"
	"udyam-portal/internal/transport/http/shared"
	respond "udyam-portal/internal/transport/http/shared/json"
	dErrors "udyam-portal/pkg/domain-errors"
)

// Service defines the interface for directory lookups.
type Service interface {
	Lookup(ctx context.Context, mode models.LookupMode, query string) (models.RegistrationRecord, error)
	VerifyCertificate(ctx context.Context, number string) (models.CertificateRecord, error)
	PostalArea(ctx context.Context, pincode string) (models.PostalArea, error)
}

// Handler handles directory endpoints.
type Handler struct {
	logger    *slog.Logger
	directory Service
}

// New creates a new directory Handler.
func New(directory Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		directory: directory,
	}
}

// Register registers the directory routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/registrations", h.handleLookup)
	r.Get("/api/certificates/{number}", h.handleVerifyCertificate)
	r.Get("/api/pincode/{code}", h.handlePostalArea)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mode := models.LookupMode(r.URL.Query().Get("mode"))
	query := r.URL.Query().Get("q")
	if query == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "q is required"))
		return
	}

	rec, err := h.directory.Lookup(ctx, mode, query)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "directory lookup failed",
				"request_id", middleware.GetRequestID(ctx),
				"mode", mode,
				"error", err,
			)
		}
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleVerifyCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cert, err := h.directory.VerifyCertificate(ctx, chi.URLParam(r, "number"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, cert)
}

func (h *Handler) handlePostalArea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	area, err := h.directory.PostalArea(ctx, chi.URLParam(r, "code"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, area)
}
