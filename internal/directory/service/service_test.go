package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam-portal/internal/audit"
	"udyam-portal/internal/directory/models"
	"udyam-portal/internal/directory/store/directory"
	dErrors "udyam-portal/pkg/domain-errors"
)

func seededService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	st := directory.NewInMemory()
	ctx := context.Background()

	records := []models.RegistrationRecord{
		{
			UdyamNumber:      "UDYAM-DL-05-123456",
			ApplicantName:    "Rajesh Kumar",
			EnterpriseName:   "Kumar Enterprises",
			OrganizationType: "Proprietorship",
			PAN:              "ABCDE1234F",
			AadhaarLastFour:  "5678",
			MobileNumber:     "9876543210",
			Email:            "rajesh.kumar@example.com",
			Status:           models.StatusActive,
			RegisteredAt:     time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			ValidUntil:       time.Date(2028, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			UdyamNumber:      "UDYAM-MH-12-987654",
			ApplicantName:    "Priya Sharma",
			EnterpriseName:   "Sharma Trading Co",
			OrganizationType: "Partnership",
			PAN:              "FGHIJ5678K",
			AadhaarLastFour:  "9012",
			MobileNumber:     "8765432109",
			Email:            "priya.sharma@example.com",
			Status:           models.StatusActive,
			RegisteredAt:     time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC),
			ValidUntil:       time.Date(2028, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			UdyamNumber:      "UDYAM-TN-08-456789",
			ApplicantName:    "Tech Solutions",
			EnterpriseName:   "Tech Solutions",
			OrganizationType: "Private Limited",
			PAN:              "KLMNO9012P",
			AadhaarLastFour:  "3456",
			MobileNumber:     "7654321098",
			Email:            "admin@techsolutions.com",
			Status:           models.StatusPending,
			RegisteredAt:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil:       time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, rec := range records {
		require.NoError(t, st.PutRegistration(ctx, rec))
	}
	require.NoError(t, st.PutCertificate(ctx, models.CertificateRecord{
		CertificateNumber: "UDYAM-KA-08-456789",
		UdyamNumber:       "UDYAM-TN-08-456789",
		EnterpriseName:    "Tech Solutions",
		IssuedTo:          "Tech Solutions",
		OrganizationType:  "Private Limited",
		Address:           "789, IT Park, Electronic City",
		State:             "Karnataka",
		District:          "Bangalore Urban",
		Pincode:           "560100",
		MobileNumber:      "7654321098",
		Email:             "admin@techsolutions.com",
		PAN:               "KLMNO9012P",
		MajorActivity:     "Services",
		NICCode:           "62011",
		IssuedBy:          "Ministry of MSME, Government of India",
		DigitalSignature:  "DSC-MSME-2024-003",
		QRCode:            "QR456789123",
		IssuedAt:          time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:        time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, st.PutPostalArea(ctx, models.PostalArea{
		Pincode: "110001", City: "New Delhi", District: "Central Delhi", State: "Delhi",
	}))
	require.NoError(t, st.PutPostalArea(ctx, models.PostalArea{
		Pincode: "400001", City: "Mumbai", District: "Mumbai City", State: "Maharashtra",
	}))

	return NewService(st, opts...)
}

func TestLookup_ByPAN(t *testing.T) {
	svc := seededService(t)

	// Lowercase input matches the stored uppercase PAN.
	rec, err := svc.Lookup(context.Background(), models.LookupByPAN, "fghij5678k")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", rec.ApplicantName)
	assert.Equal(t, "UDYAM-MH-12-987654", rec.UdyamNumber)
}

func TestLookup_ByPANNotFound(t *testing.T) {
	svc := seededService(t)

	_, err := svc.Lookup(context.Background(), models.LookupByPAN, "ZZZZZ0000Z")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestLookup_ByMobileNormalizesCountryCode(t *testing.T) {
	svc := seededService(t)

	rec, err := svc.Lookup(context.Background(), models.LookupByMobile, "+91 76543 21098")
	require.NoError(t, err)
	assert.Equal(t, "Tech Solutions", rec.EnterpriseName)
	assert.Equal(t, models.StatusPending, rec.Status)
	assert.Equal(t, "admin@techsolutions.com", rec.Email)
}

func TestLookup_ByUdyam(t *testing.T) {
	svc := seededService(t)

	rec, err := svc.Lookup(context.Background(), models.LookupByUdyam, "udyam-dl-05-123456")
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", rec.ApplicantName)
	assert.Equal(t, "Proprietorship", rec.OrganizationType)
	assert.Equal(t, "5678", rec.AadhaarLastFour)
	assert.Equal(t, time.Date(2028, 3, 15, 0, 0, 0, 0, time.UTC), rec.ValidUntil)

	_, err = svc.Lookup(context.Background(), models.LookupByUdyam, "UDYAM-XX-00-000000")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestLookup_RejectsMalformedQueries(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, models.LookupByUdyam, "not-a-number")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = svc.Lookup(ctx, models.LookupByPAN, "12345")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = svc.Lookup(ctx, models.LookupByMobile, "5876543210")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = svc.Lookup(ctx, models.LookupMode("aadhaar"), "123456789012")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestVerifyCertificate(t *testing.T) {
	auditPub := audit.NewPublisher(audit.NewInMemoryStore())
	svc := seededService(t, WithAuditPublisher(auditPub))
	ctx := context.Background()

	cert, err := svc.VerifyCertificate(ctx, "udyam-ka-08-456789")
	require.NoError(t, err)
	assert.Equal(t, "UDYAM-KA-08-456789", cert.CertificateNumber)
	assert.Equal(t, "UDYAM-TN-08-456789", cert.UdyamNumber)
	assert.Equal(t, "789, IT Park, Electronic City", cert.Address)
	assert.Equal(t, "62011", cert.NICCode)
	assert.Equal(t, "DSC-MSME-2024-003", cert.DigitalSignature)

	// The registration number is not the certificate number here.
	_, err = svc.VerifyCertificate(ctx, "UDYAM-TN-08-456789")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = svc.VerifyCertificate(ctx, "garbage")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	trail, err := auditPub.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, "certificate_verified", trail[0].Action)
	assert.Equal(t, "UDYAM-KA-08-456789", trail[0].Subject)
}

func TestPostalArea(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	area, err := svc.PostalArea(ctx, "110001")
	require.NoError(t, err)
	assert.Equal(t, "New Delhi", area.City)
	assert.Equal(t, "Delhi", area.State)

	_, err = svc.PostalArea(ctx, "999999")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = svc.PostalArea(ctx, "1234")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
