// Package store defines the step session store: the short-lived record of a
// registration attempt between step one, step two, and the confirmation page.
package store

import (
	"context"

	"udyam-portal/internal/registration/models"
)

// SessionStore holds two slots per attempt: the confirmed applicant written
// after code verification, and the assembled session written at submission.
//
// Error Contract: Find methods return sentinel.ErrNotFound (optionally
// wrapped) when the slot is empty.
type SessionStore interface {
	SaveApplicant(ctx context.Context, attemptID string, applicant models.ApplicantDetails) error
	FindApplicant(ctx context.Context, attemptID string) (models.ApplicantDetails, error)
	SaveSession(ctx context.Context, attemptID string, session models.RegistrationSession) error
	FindSession(ctx context.Context, attemptID string) (models.RegistrationSession, error)
	// Clear removes both slots for the attempt.
	Clear(ctx context.Context, attemptID string) error
}
