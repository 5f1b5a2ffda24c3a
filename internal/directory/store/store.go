// Package store defines persistence for the published directory.
package store

import (
	"context"

	"udyam-portal/internal/directory/models"
)

// Store reads the published directory. Writes exist for seeding and for the
// ingestion path that consumes submitted registrations.
//
// Error Contract: Find methods return sentinel.ErrNotFound (optionally
// wrapped) when no record matches. Arguments are expected pre-normalized.
type Store interface {
	FindByUdyam(ctx context.Context, number string) (models.RegistrationRecord, error)
	FindByPAN(ctx context.Context, pan string) (models.RegistrationRecord, error)
	FindByMobile(ctx context.Context, mobile string) (models.RegistrationRecord, error)
	FindCertificate(ctx context.Context, number string) (models.CertificateRecord, error)
	FindPostalArea(ctx context.Context, pincode string) (models.PostalArea, error)

	PutRegistration(ctx context.Context, rec models.RegistrationRecord) error
	PutCertificate(ctx context.Context, cert models.CertificateRecord) error
	PutPostalArea(ctx context.Context, area models.PostalArea) error
}
