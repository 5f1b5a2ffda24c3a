package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"udyam-portal/internal/directory/models"
	"udyam-portal/internal/sentinel"
)

// PostgresStore persists the published directory in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed directory store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const registrationColumns = `udyam_number, applicant_name, enterprise_name, organization_type, pan, aadhaar_last_four, mobile_number, email, status, registered_at, valid_until`

const certificateColumns = `certificate_number, udyam_number, enterprise_name, issued_to, organization_type, address, state, district, pincode, mobile_number, email, pan, major_activity, nic_code, issued_by, digital_signature, qr_code, issued_at, valid_until`

func (s *PostgresStore) FindByUdyam(ctx context.Context, number string) (models.RegistrationRecord, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM directory_registrations
		WHERE udyam_number = $1
	`
	return s.findRegistration(ctx, query, number)
}

func (s *PostgresStore) FindByPAN(ctx context.Context, pan string) (models.RegistrationRecord, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM directory_registrations
		WHERE pan = $1
	`
	return s.findRegistration(ctx, query, pan)
}

func (s *PostgresStore) FindByMobile(ctx context.Context, mobile string) (models.RegistrationRecord, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM directory_registrations
		WHERE mobile_number = $1
	`
	return s.findRegistration(ctx, query, mobile)
}

func (s *PostgresStore) findRegistration(ctx context.Context, query string, arg any) (models.RegistrationRecord, error) {
	var rec models.RegistrationRecord
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&rec.UdyamNumber,
		&rec.ApplicantName,
		&rec.EnterpriseName,
		&rec.OrganizationType,
		&rec.PAN,
		&rec.AadhaarLastFour,
		&rec.MobileNumber,
		&rec.Email,
		&rec.Status,
		&rec.RegisteredAt,
		&rec.ValidUntil,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RegistrationRecord{}, sentinel.ErrNotFound
		}
		return models.RegistrationRecord{}, fmt.Errorf("find registration: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) FindCertificate(ctx context.Context, number string) (models.CertificateRecord, error) {
	query := `
		SELECT ` + certificateColumns + `
		FROM directory_certificates
		WHERE certificate_number = $1
	`
	var cert models.CertificateRecord
	err := s.db.QueryRowContext(ctx, query, number).Scan(
		&cert.CertificateNumber,
		&cert.UdyamNumber,
		&cert.EnterpriseName,
		&cert.IssuedTo,
		&cert.OrganizationType,
		&cert.Address,
		&cert.State,
		&cert.District,
		&cert.Pincode,
		&cert.MobileNumber,
		&cert.Email,
		&cert.PAN,
		&cert.MajorActivity,
		&cert.NICCode,
		&cert.IssuedBy,
		&cert.DigitalSignature,
		&cert.QRCode,
		&cert.IssuedAt,
		&cert.ValidUntil,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CertificateRecord{}, sentinel.ErrNotFound
		}
		return models.CertificateRecord{}, fmt.Errorf("find certificate: %w", err)
	}
	return cert, nil
}

func (s *PostgresStore) FindPostalArea(ctx context.Context, pincode string) (models.PostalArea, error) {
	query := `
		SELECT pincode, city, district, state
		FROM postal_areas
		WHERE pincode = $1
	`
	var area models.PostalArea
	err := s.db.QueryRowContext(ctx, query, pincode).Scan(
		&area.Pincode,
		&area.City,
		&area.District,
		&area.State,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostalArea{}, sentinel.ErrNotFound
		}
		return models.PostalArea{}, fmt.Errorf("find postal area: %w", err)
	}
	return area, nil
}

func (s *PostgresStore) PutRegistration(ctx context.Context, rec models.RegistrationRecord) error {
	query := `
		INSERT INTO directory_registrations (` + registrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (udyam_number) DO UPDATE SET
			applicant_name = EXCLUDED.applicant_name,
			enterprise_name = EXCLUDED.enterprise_name,
			organization_type = EXCLUDED.organization_type,
			pan = EXCLUDED.pan,
			aadhaar_last_four = EXCLUDED.aadhaar_last_four,
			mobile_number = EXCLUDED.mobile_number,
			email = EXCLUDED.email,
			status = EXCLUDED.status,
			registered_at = EXCLUDED.registered_at,
			valid_until = EXCLUDED.valid_until
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.UdyamNumber,
		rec.ApplicantName,
		rec.EnterpriseName,
		rec.OrganizationType,
		rec.PAN,
		rec.AadhaarLastFour,
		rec.MobileNumber,
		rec.Email,
		string(rec.Status),
		rec.RegisteredAt,
		rec.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("put registration: %w", err)
	}
	return nil
}

func (s *PostgresStore) PutCertificate(ctx context.Context, cert models.CertificateRecord) error {
	query := `
		INSERT INTO directory_certificates (` + certificateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (certificate_number) DO UPDATE SET
			udyam_number = EXCLUDED.udyam_number,
			enterprise_name = EXCLUDED.enterprise_name,
			issued_to = EXCLUDED.issued_to,
			organization_type = EXCLUDED.organization_type,
			address = EXCLUDED.address,
			state = EXCLUDED.state,
			district = EXCLUDED.district,
			pincode = EXCLUDED.pincode,
			mobile_number = EXCLUDED.mobile_number,
			email = EXCLUDED.email,
			pan = EXCLUDED.pan,
			major_activity = EXCLUDED.major_activity,
			nic_code = EXCLUDED.nic_code,
			issued_by = EXCLUDED.issued_by,
			digital_signature = EXCLUDED.digital_signature,
			qr_code = EXCLUDED.qr_code,
			issued_at = EXCLUDED.issued_at,
			valid_until = EXCLUDED.valid_until
	`
	_, err := s.db.ExecContext(ctx, query,
		cert.CertificateNumber,
		cert.UdyamNumber,
		cert.EnterpriseName,
		cert.IssuedTo,
		cert.OrganizationType,
		cert.Address,
		cert.State,
		cert.District,
		cert.Pincode,
		cert.MobileNumber,
		cert.Email,
		cert.PAN,
		cert.MajorActivity,
		cert.NICCode,
		cert.IssuedBy,
		cert.DigitalSignature,
		cert.QRCode,
		cert.IssuedAt,
		cert.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("put certificate: %w", err)
	}
	return nil
}

func (s *PostgresStore) PutPostalArea(ctx context.Context, area models.PostalArea) error {
	query := `
		INSERT INTO postal_areas (pincode, city, district, state)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pincode) DO UPDATE SET
			city = EXCLUDED.city,
			district = EXCLUDED.district,
			state = EXCLUDED.state
	`
	_, err := s.db.ExecContext(ctx, query, area.Pincode, area.City, area.District, area.State)
	if err != nil {
		return fmt.Errorf("put postal area: %w", err)
	}
	return nil
}
