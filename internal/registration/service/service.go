// Package service implements the registration workflow: identity capture with
// one-time code confirmation, organization submission, and the confirmation
// record the final page renders. State moves strictly forward; skipping a
// step surfaces a workflow-state error the transport maps to a redirect.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"udyam-portal/internal/audit"
	"udyam-portal/internal/platform/config"
	"udyam-portal/internal/platform/delay"
	"udyam-portal/internal/platform/kafka/producer"
	"udyam-portal/internal/platform/metrics"
	"udyam-portal/internal/registration/models"
	"udyam-portal/internal/registration/store"
	"udyam-portal/internal/sentinel"
	dErrors "udyam-portal/pkg/domain-errors"
	stringutil "udyam-portal/pkg/string"
	"udyam-portal/pkg/validation"
)

// ChallengeService issues and verifies the one-time confirmation codes.
type ChallengeService interface {
	Issue(ctx context.Context, attemptID string, applicant models.ApplicantDetails) (string, error)
	Verify(ctx context.Context, attemptID, code string) (models.ApplicantDetails, error)
}

// EventSink publishes submission events to the message bus. The kafka
// producer satisfies it; tests supply a recorder.
type EventSink interface {
	ProduceAsync(msg *producer.Message) error
}

// Service orchestrates the three-step registration workflow.
type Service struct {
	codes    ChallengeService
	sessions store.SessionStore
	numbers  *NumberIssuer

	logger  *slog.Logger
	audit   *audit.Publisher
	metrics *metrics.Metrics
	events  EventSink
	topic   string
	latency config.Latency
	codeTTL time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithEvents attaches a message bus sink for submitted registrations.
func WithEvents(sink EventSink, topic string) Option {
	return func(s *Service) {
		s.events = sink
		s.topic = topic
	}
}

// WithLatency sets the simulated upstream pauses. Tests leave them zero.
func WithLatency(l config.Latency) Option {
	return func(s *Service) { s.latency = l }
}

func WithChallengeTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.codeTTL = ttl
		}
	}
}

func NewService(codes ChallengeService, sessions store.SessionStore, numbers *NumberIssuer, opts ...Option) *Service {
	s := &Service{
		codes:    codes,
		sessions: sessions,
		numbers:  numbers,
		codeTTL:  config.OTPChallengeTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// SendOTP validates the identity fields and dispatches a confirmation code.
// Validation is all-or-nothing: no code is issued while any field is invalid.
func (s *Service) SendOTP(ctx context.Context, attemptID string, req models.SendOTPRequest) (models.OTPIssueResult, error) {
	// Length floors apply to the trimmed value, so normalize first.
	stringutil.TrimStrings(&req.AadhaarNumber, &req.Name, &req.MobileNumber, &req.Email)
	if err := validation.Validate(&req); err != nil {
		return models.OTPIssueResult{}, err
	}

	if err := delay.Wait(ctx, s.latency.OTPDelivery); err != nil {
		return models.OTPIssueResult{}, dErrors.Wrap(err, dErrors.CodeTimeout, "code dispatch interrupted")
	}

	applicant := req.Applicant()
	code, err := s.codes.Issue(ctx, attemptID, applicant)
	if err != nil {
		return models.OTPIssueResult{}, err
	}

	// Delivery is simulated; the code never leaves the process except via
	// this debug line.
	s.logger.DebugContext(ctx, "confirmation code ready", "attempt_id", attemptID, "code", code)

	s.emitAudit(ctx, audit.Event{
		AttemptID: attemptID,
		Action:    string(audit.ActionOTPIssued),
		Subject:   "aadhaar:" + applicant.AadhaarLastFour(),
	})
	s.metrics.IncrementOTPIssued()

	return models.OTPIssueResult{
		AttemptID:    attemptID,
		MobileNumber: applicant.MobileNumber,
		ExpiresInSec: int(s.codeTTL.Seconds()),
	}, nil
}

// VerifyOTP confirms the code and promotes the applicant into the attempt
// session, unlocking step two.
func (s *Service) VerifyOTP(ctx context.Context, attemptID string, req models.VerifyOTPRequest) (models.VerifyResult, error) {
	if err := validation.Validate(&req); err != nil {
		return models.VerifyResult{}, err
	}

	if err := delay.Wait(ctx, s.latency.OTPVerification); err != nil {
		return models.VerifyResult{}, dErrors.Wrap(err, dErrors.CodeTimeout, "code verification interrupted")
	}

	applicant, err := s.codes.Verify(ctx, attemptID, req.Code)
	if err != nil {
		return models.VerifyResult{}, err
	}

	if err := s.sessions.SaveApplicant(ctx, attemptID, applicant); err != nil {
		return models.VerifyResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not record verified applicant")
	}

	s.emitAudit(ctx, audit.Event{
		AttemptID: attemptID,
		Action:    string(audit.ActionOTPVerified),
		Subject:   "aadhaar:" + applicant.AadhaarLastFour(),
	})

	return models.VerifyResult{
		Verified:  true,
		NextStep:  "/step2",
		Applicant: applicant,
	}, nil
}

// SubmitOrganization completes the registration. It requires a verified
// applicant on the attempt; otherwise the caller is sent back to step one.
func (s *Service) SubmitOrganization(ctx context.Context, attemptID string, req models.OrganizationRequest) (models.SubmissionResult, error) {
	applicant, err := s.sessions.FindApplicant(ctx, attemptID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.SubmissionResult{}, dErrors.New(dErrors.CodeWorkflowState, "identity step not completed")
		}
		return models.SubmissionResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not load verified applicant")
	}

	stringutil.TrimStrings(&req.PAN, &req.EnterpriseName, &req.GSTIN)
	// An undeclared GSTIN is dropped before validation so a stale value
	// left in the form cannot fail the submission.
	if !req.HasGSTIN {
		req.GSTIN = ""
	}
	if err := validation.Validate(&req); err != nil {
		return models.SubmissionResult{}, err
	}

	if err := delay.Wait(ctx, s.latency.Submission); err != nil {
		return models.SubmissionResult{}, dErrors.Wrap(err, dErrors.CodeTimeout, "submission interrupted")
	}

	session := models.RegistrationSession{
		Applicant:    applicant,
		Organization: req.Details(),
		UdyamNumber:  s.numbers.Next(),
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.sessions.SaveSession(ctx, attemptID, session); err != nil {
		return models.SubmissionResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not persist registration session")
	}

	s.publishSubmitted(ctx, attemptID, session)
	s.emitAudit(ctx, audit.Event{
		AttemptID: attemptID,
		Action:    string(audit.ActionRegistrationSubmitted),
		Subject:   session.UdyamNumber,
		Detail:    session.Organization.EnterpriseName,
	})
	s.metrics.IncrementRegistrationsSubmitted()

	s.logger.InfoContext(ctx, "registration submitted",
		"attempt_id", attemptID,
		"udyam_number", session.UdyamNumber,
		"organization_type", session.Organization.OrganizationType,
	)

	return models.SubmissionResult{
		UdyamNumber: session.UdyamNumber,
		SubmittedAt: session.SubmittedAt,
	}, nil
}

// Confirmation returns the completed session for the attempt. Visiting the
// confirmation page without a submission is a workflow-state error.
func (s *Service) Confirmation(ctx context.Context, attemptID string) (models.RegistrationSession, error) {
	session, err := s.sessions.FindSession(ctx, attemptID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.RegistrationSession{}, dErrors.New(dErrors.CodeWorkflowState, "no completed registration for this attempt")
		}
		return models.RegistrationSession{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not load registration session")
	}
	return session, nil
}

// StartNew discards the attempt's state so a fresh registration can begin.
func (s *Service) StartNew(ctx context.Context, attemptID string) error {
	if err := s.sessions.Clear(ctx, attemptID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not reset registration attempt")
	}
	s.emitAudit(ctx, audit.Event{
		AttemptID: attemptID,
		Action:    string(audit.ActionRegistrationReset),
	})
	return nil
}

type submittedEvent struct {
	UdyamNumber      string    `json:"udyam_number"`
	EnterpriseName   string    `json:"enterprise_name"`
	OrganizationType string    `json:"organization_type"`
	AadhaarLastFour  string    `json:"aadhaar_last_four"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

func (s *Service) publishSubmitted(ctx context.Context, attemptID string, session models.RegistrationSession) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(submittedEvent{
		UdyamNumber:      session.UdyamNumber,
		EnterpriseName:   session.Organization.EnterpriseName,
		OrganizationType: string(session.Organization.OrganizationType),
		AadhaarLastFour:  session.Applicant.AadhaarLastFour(),
		SubmittedAt:      session.SubmittedAt,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "could not encode submission event", "error", err)
		return
	}
	err = s.events.ProduceAsync(&producer.Message{
		Topic: s.topic,
		Key:   []byte(attemptID),
		Value: payload,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "could not publish submission event", "error", err)
	}
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "could not record audit event", "error", err, "action", event.Action)
	}
}
