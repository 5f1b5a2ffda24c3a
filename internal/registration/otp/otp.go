// Package otp issues and verifies the one-time confirmation codes that gate
// the identity step. Codes are stored bcrypt-hashed; the plaintext exists
// only in the dispatch path.
package otp

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"udyam-portal/internal/registration/models"
	"udyam-portal/internal/sentinel"
	dErrors "udyam-portal/pkg/domain-errors"
	"udyam-portal/pkg/secrets"
)

const codeLength = 6

var codeShape = regexp.MustCompile(`^\d{6}$`)

// Challenge is a pending confirmation: the hashed code plus the applicant
// details it protects. Verifying promotes the applicant to the session store.
type Challenge struct {
	AttemptID string
	CodeHash  string
	Applicant models.ApplicantDetails
	ExpiresAt time.Time
}

// ChallengeStore persists pending challenges. A second Save for the same
// attempt replaces the previous challenge (resend semantics).
type ChallengeStore interface {
	Save(ctx context.Context, ch Challenge) error
	Find(ctx context.Context, attemptID string) (Challenge, error)
	Delete(ctx context.Context, attemptID string) error
}

// Service issues and verifies confirmation codes.
type Service struct {
	store  ChallengeStore
	ttl    time.Duration
	logger *slog.Logger

	// demoAcceptAny mirrors the portal's simulated verification: any
	// well-formed code confirms the challenge. Strict deployments verify
	// against the stored hash.
	demoAcceptAny bool
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithDemoAcceptAny toggles the simulated verification path.
func WithDemoAcceptAny(enabled bool) Option {
	return func(s *Service) { s.demoAcceptAny = enabled }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewService(store ChallengeStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		ttl:   10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Issue generates a fresh code for the attempt, replacing any pending
// challenge, and returns the code for dispatch. The caller owns delivery.
func (s *Service) Issue(ctx context.Context, attemptID string, applicant models.ApplicantDetails) (string, error) {
	code, err := secrets.GenerateNumericCode(codeLength)
	if err != nil {
		return "", err
	}
	hash, err := secrets.Hash(code)
	if err != nil {
		return "", err
	}

	ch := Challenge{
		AttemptID: attemptID,
		CodeHash:  hash,
		Applicant: applicant,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.store.Save(ctx, ch); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not store confirmation challenge")
	}

	s.logger.InfoContext(ctx, "confirmation code dispatched",
		"attempt_id", attemptID,
		"mobile_last4", lastFour(applicant.MobileNumber),
	)
	return code, nil
}

// Verify confirms the code for the attempt and returns the applicant the
// challenge was protecting. The challenge is consumed on success.
func (s *Service) Verify(ctx context.Context, attemptID, code string) (models.ApplicantDetails, error) {
	if !codeShape.MatchString(code) {
		return models.ApplicantDetails{}, dErrors.New(dErrors.CodeValidation, "code must be exactly 6 digits")
	}

	ch, err := s.store.Find(ctx, attemptID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.ApplicantDetails{}, dErrors.New(dErrors.CodeWorkflowState, "no pending confirmation for this attempt")
		}
		return models.ApplicantDetails{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not load confirmation challenge")
	}

	if time.Now().After(ch.ExpiresAt) {
		return models.ApplicantDetails{}, dErrors.New(dErrors.CodeCodeMismatch, "code expired, request a new one")
	}

	if !s.demoAcceptAny {
		if err := secrets.Verify(code, ch.CodeHash); err != nil {
			return models.ApplicantDetails{}, err
		}
	}

	if err := s.store.Delete(ctx, attemptID); err != nil {
		return models.ApplicantDetails{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not consume challenge")
	}
	return ch.Applicant, nil
}

func lastFour(s string) string {
	if len(s) < 4 {
		return s
	}
	return s[len(s)-4:]
}
