// Package handler exposes the registration workflow over HTTP. The attempt
// is identified by a cookie so the three steps and the confirmation page
// share state without any authentication surface.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"udyam-portal/internal/platform/config"
	"udyam-portal/internal/platform/middleware"
	"udyam-portal/internal/registration/models"
	"udyam-portal/internal/transport/http/shared"
	respond "udyam-portal/internal/transport/http/shared/json"
	dErrors "udyam-portal/pkg/domain-errors"
)

// Service defines the interface for registration workflow operations.
type Service interface {
	SendOTP(ctx context.Context, attemptID string, req models.SendOTPRequest) (models.OTPIssueResult, error)
	VerifyOTP(ctx context.Context, attemptID string, req models.VerifyOTPRequest) (models.VerifyResult, error)
	SubmitOrganization(ctx context.Context, attemptID string, req models.OrganizationRequest) (models.SubmissionResult, error)
	Confirmation(ctx context.Context, attemptID string) (models.RegistrationSession, error)
	StartNew(ctx context.Context, attemptID string) error
}

// Handler handles registration workflow endpoints.
type Handler struct {
	logger       *slog.Logger
	registration Service
}

// New creates a new registration Handler.
func New(registration Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		registration: registration,
	}
}

// Register registers the registration routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/registration/otp/send", h.handleSendOTP)
	r.Post("/api/registration/otp/verify", h.handleVerifyOTP)
	r.Post("/api/registration/organization", h.handleSubmitOrganization)
	r.Get("/api/registration/confirmation", h.handleConfirmation)
	r.Post("/api/registration/reset", h.handleReset)
}

func (h *Handler) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode send code request",
			"request_id", requestID,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	attemptID := h.ensureAttempt(w, r)
	res, err := h.registration.SendOTP(ctx, attemptID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "send code failed",
			"request_id", requestID,
			"attempt_id", attemptID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	attemptID, ok := h.currentAttempt(r)
	if !ok {
		shared.WriteWorkflowRedirect(w, "/step1")
		return
	}

	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode verify code request",
			"request_id", requestID,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.registration.VerifyOTP(ctx, attemptID, req)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeWorkflowState) {
			shared.WriteWorkflowRedirect(w, "/step1")
			return
		}
		h.logger.WarnContext(ctx, "code verification failed",
			"request_id", requestID,
			"attempt_id", attemptID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSubmitOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	attemptID, ok := h.currentAttempt(r)
	if !ok {
		shared.WriteWorkflowRedirect(w, "/step1")
		return
	}

	var req models.OrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode organization request",
			"request_id", requestID,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.registration.SubmitOrganization(ctx, attemptID, req)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeWorkflowState) {
			shared.WriteWorkflowRedirect(w, "/step1")
			return
		}
		h.logger.WarnContext(ctx, "organization submission failed",
			"request_id", requestID,
			"attempt_id", attemptID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	attemptID, ok := h.currentAttempt(r)
	if !ok {
		shared.WriteWorkflowRedirect(w, "/")
		return
	}

	session, err := h.registration.Confirmation(ctx, attemptID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeWorkflowState) {
			shared.WriteWorkflowRedirect(w, "/")
			return
		}
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, session)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	attemptID, ok := h.currentAttempt(r)
	if !ok {
		// Nothing to reset; a fresh attempt starts at step one regardless.
		respond.WriteJSON(w, http.StatusOK, map[string]string{"next_step": "/step1"})
		return
	}

	if err := h.registration.StartNew(ctx, attemptID); err != nil {
		h.logger.ErrorContext(ctx, "reset failed",
			"request_id", middleware.GetRequestID(ctx),
			"attempt_id", attemptID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]string{"next_step": "/step1"})
}

// ensureAttempt returns the attempt ID from the cookie, minting one when the
// visitor has none yet. Only the send endpoint mints; every later step must
// arrive with the cookie or be redirected to step one.
func (h *Handler) ensureAttempt(w http.ResponseWriter, r *http.Request) string {
	if attemptID, ok := h.currentAttempt(r); ok {
		return attemptID
	}
	attemptID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     config.AttemptCookieName,
		Value:    attemptID,
		Path:     "/",
		MaxAge:   int(config.SessionRetention / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return attemptID
}

func (h *Handler) currentAttempt(r *http.Request) (string, bool) {
	c, err := r.Cookie(config.AttemptCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
