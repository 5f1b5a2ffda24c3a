package session

import (
	"context"
	"sync"

	"udyam-portal/internal/registration/models"
	"udyam-portal/internal/sentinel"
)

// ErrNotFound is returned when an attempt has no record in the requested slot.
var ErrNotFound = sentinel.ErrNotFound

// InMemory keeps attempt state in memory for the demo environment and tests.
type InMemory struct {
	mu         sync.RWMutex
	applicants map[string]models.ApplicantDetails
	sessions   map[string]models.RegistrationSession
}

// NewInMemory creates an in-memory session store.
func NewInMemory() *InMemory {
	return &InMemory{
		applicants: make(map[string]models.ApplicantDetails),
		sessions:   make(map[string]models.RegistrationSession),
	}
}

func (s *InMemory) SaveApplicant(_ context.Context, attemptID string, applicant models.ApplicantDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants[attemptID] = applicant
	return nil
}

func (s *InMemory) FindApplicant(_ context.Context, attemptID string) (models.ApplicantDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.applicants[attemptID]; ok {
		return a, nil
	}
	return models.ApplicantDetails{}, ErrNotFound
}

func (s *InMemory) SaveSession(_ context.Context, attemptID string, session models.RegistrationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[attemptID] = session
	return nil
}

func (s *InMemory) FindSession(_ context.Context, attemptID string) (models.RegistrationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[attemptID]; ok {
		return sess, nil
	}
	return models.RegistrationSession{}, ErrNotFound
}

func (s *InMemory) Clear(_ context.Context, attemptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.applicants, attemptID)
	delete(s.sessions, attemptID)
	return nil
}
