// Package store defines grievance ticket persistence.
package store

import (
	"context"

	"udyam-portal/internal/grievance/models"
)

// Store persists filed tickets.
//
// Error Contract: FindByNumber returns sentinel.ErrNotFound (optionally
// wrapped) when no ticket matches.
type Store interface {
	Save(ctx context.Context, ticket models.Ticket) error
	FindByNumber(ctx context.Context, ticketNumber string) (models.Ticket, error)
	List(ctx context.Context) ([]models.Ticket, error)
}
