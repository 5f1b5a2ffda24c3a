// Package service serves the public statistics snapshot and the account
// dashboard. Statistics are a published dataset refreshed out of band, not a
// live aggregate, matching how the ministry releases them.
package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	directory "udyam-portal/internal/directory/models"
	grievance "udyam-portal/internal/grievance/models"
	"udyam-portal/internal/sentinel"
	"udyam-portal/internal/stats/models"
	dErrors "udyam-portal/pkg/domain-errors"
)

// RegistrationSource resolves the registrations shown on the dashboard.
type RegistrationSource interface {
	FindByUdyam(ctx context.Context, number string) (directory.RegistrationRecord, error)
}

// GrievanceSource lists the tickets shown on the dashboard.
type GrievanceSource interface {
	List(ctx context.Context) ([]grievance.Ticket, error)
}

// Service answers statistics and dashboard queries.
type Service struct {
	registrations RegistrationSource
	grievances    GrievanceSource
	logger        *slog.Logger

	snapshot models.Statistics
	profile  models.Profile
	// numbers the demo account owns, resolved live on each dashboard load
	ownedNumbers []string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithProfile sets the account shown on the dashboard and the registration
// numbers it owns.
func WithProfile(profile models.Profile, ownedNumbers []string) Option {
	return func(s *Service) {
		s.profile = profile
		s.ownedNumbers = ownedNumbers
	}
}

func NewService(registrations RegistrationSource, grievances GrievanceSource, opts ...Option) *Service {
	s := &Service{
		registrations: registrations,
		grievances:    grievances,
		snapshot:      publishedStatistics,
		profile:       demoProfile,
		ownedNumbers:  demoOwnedNumbers,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Statistics returns the published snapshot.
func (s *Service) Statistics(_ context.Context) (models.Statistics, error) {
	return s.snapshot, nil
}

// Dashboard assembles the account page: profile, owned registrations, and
// filed grievances. The sources are independent, so they are fetched
// concurrently; a registration missing from the directory is skipped rather
// than failing the page.
func (s *Service) Dashboard(ctx context.Context) (models.Dashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	registrations := make([]directory.RegistrationRecord, len(s.ownedNumbers))
	found := make([]bool, len(s.ownedNumbers))
	for i, number := range s.ownedNumbers {
		g.Go(func() error {
			rec, err := s.registrations.FindByUdyam(ctx, number)
			if err != nil {
				if errors.Is(err, sentinel.ErrNotFound) {
					return nil
				}
				return err
			}
			registrations[i] = rec
			found[i] = true
			return nil
		})
	}

	var tickets []grievance.Ticket
	g.Go(func() error {
		var err error
		tickets, err = s.grievances.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Dashboard{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not assemble dashboard")
	}

	owned := make([]directory.RegistrationRecord, 0, len(registrations))
	for i, rec := range registrations {
		if found[i] {
			owned = append(owned, rec)
		}
	}

	return models.Dashboard{
		Profile:       s.profile,
		Registrations: owned,
		Grievances:    tickets,
	}, nil
}
