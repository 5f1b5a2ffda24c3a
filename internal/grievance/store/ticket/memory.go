package ticket

import (
	"context"
	"sort"
	"sync"

	"udyam-portal/internal/grievance/models"
	"udyam-portal/internal/sentinel"
)

// InMemory keeps tickets in memory for the demo deployment and tests.
type InMemory struct {
	mu      sync.RWMutex
	tickets map[string]models.Ticket
}

func NewInMemory() *InMemory {
	return &InMemory{tickets: make(map[string]models.Ticket)}
}

func (s *InMemory) Save(_ context.Context, ticket models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[ticket.TicketNumber] = ticket
	return nil
}

func (s *InMemory) FindByNumber(_ context.Context, ticketNumber string) (models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tickets[ticketNumber]; ok {
		return t, nil
	}
	return models.Ticket{}, sentinel.ErrNotFound
}

// List returns all tickets, newest first.
func (s *InMemory) List(_ context.Context) ([]models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FiledAt.After(out[j].FiledAt)
	})
	return out, nil
}
