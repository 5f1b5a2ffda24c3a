package otp

import (
	"context"
	"sync"

	"udyam-portal/internal/sentinel"
)

// InMemoryStore keeps pending challenges in memory. Suitable for the demo
// deployment and tests; challenges do not survive a process restart.
type InMemoryStore struct {
	mu         sync.RWMutex
	challenges map[string]Challenge
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{challenges: make(map[string]Challenge)}
}

func (s *InMemoryStore) Save(_ context.Context, ch Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[ch.AttemptID] = ch
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, attemptID string) (Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ch, ok := s.challenges[attemptID]; ok {
		return ch, nil
	}
	return Challenge{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, attemptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, attemptID)
	return nil
}
