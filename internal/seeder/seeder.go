// Package seeder populates the in-memory stores with the portal's demo data:
// the published directory and a couple of filed grievances.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	directorymodels "udyam-portal/internal/directory/models"
	grievancemodels "udyam-portal/internal/grievance/models"
)

// DirectoryStore defines methods for seeding the published directory
type DirectoryStore interface {
	PutRegistration(ctx context.Context, rec directorymodels.RegistrationRecord) error
	PutCertificate(ctx context.Context, cert directorymodels.CertificateRecord) error
	PutPostalArea(ctx context.Context, area directorymodels.PostalArea) error
}

// TicketStore defines methods for seeding grievance tickets
type TicketStore interface {
	Save(ctx context.Context, ticket grievancemodels.Ticket) error
}

// Seeder populates stores with demo data
type Seeder struct {
	directory DirectoryStore
	tickets   TicketStore
	logger    *slog.Logger
}

// New creates a new seeder
func New(directory DirectoryStore, tickets TicketStore, logger *slog.Logger) *Seeder {
	return &Seeder{
		directory: directory,
		tickets:   tickets,
		logger:    logger,
	}
}

// SeedAll populates all stores with demo data
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.logger.Info("seeding demo data...")

	if err := s.seedDirectory(ctx); err != nil {
		return fmt.Errorf("failed to seed directory: %w", err)
	}
	if err := s.seedPostalAreas(ctx); err != nil {
		return fmt.Errorf("failed to seed postal areas: %w", err)
	}
	if err := s.seedGrievances(ctx); err != nil {
		return fmt.Errorf("failed to seed grievances: %w", err)
	}

	s.logger.Info("demo data seeded")
	return nil
}

func (s *Seeder) seedDirectory(ctx context.Context) error {
	registrations := []directorymodels.RegistrationRecord{
		{
			UdyamNumber:      "UDYAM-DL-05-123456",
			ApplicantName:    "Rajesh Kumar",
			EnterpriseName:   "Rajesh Kumar Enterprises",
			OrganizationType: "Proprietorship",
			PAN:              "ABCDE1234F",
			AadhaarLastFour:  "5678",
			MobileNumber:     "9876543210",
			Email:            "rajesh.kumar@example.com",
			Status:           directorymodels.StatusActive,
			RegisteredAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ValidUntil:       time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			UdyamNumber:      "UDYAM-MH-12-987654",
			ApplicantName:    "Priya Sharma",
			EnterpriseName:   "Priya Sharma Enterprises",
			OrganizationType: "Partnership",
			PAN:              "FGHIJ5678K",
			AadhaarLastFour:  "9012",
			MobileNumber:     "8765432109",
			Email:            "priya.sharma@example.com",
			Status:           directorymodels.StatusActive,
			RegisteredAt:     time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			ValidUntil:       time.Date(2029, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			UdyamNumber:      "UDYAM-TN-08-456789",
			ApplicantName:    "Tech Solutions Pvt Ltd",
			EnterpriseName:   "Tech Solutions Pvt Ltd",
			OrganizationType: "Private Limited",
			PAN:              "KLMNO9012P",
			AadhaarLastFour:  "3456",
			MobileNumber:     "7654321098",
			Email:            "admin@techsolutions.com",
			Status:           directorymodels.StatusPending,
			RegisteredAt:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			ValidUntil:       time.Date(2029, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, rec := range registrations {
		if err := s.directory.PutRegistration(ctx, rec); err != nil {
			return err
		}
	}

	certificates := []directorymodels.CertificateRecord{
		{
			CertificateNumber: "UDYAM-DL-05-123456",
			UdyamNumber:       "UDYAM-DL-05-123456",
			EnterpriseName:    "Rajesh Kumar Enterprises",
			IssuedTo:          "Rajesh Kumar",
			OrganizationType:  "Proprietorship",
			Address:           "123, Main Street, Connaught Place",
			State:             "Delhi",
			District:          "Central Delhi",
			Pincode:           "110001",
			MobileNumber:      "9876543210",
			Email:             "rajesh.kumar@example.com",
			PAN:               "ABCDE1234F",
			MajorActivity:     "Manufacturing",
			NICCode:           "13201",
			IssuedBy:          "Ministry of MSME, Government of India",
			DigitalSignature:  "DSC-MSME-2024-001",
			QRCode:            "QR123456789",
			IssuedAt:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ValidUntil:        time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			CertificateNumber: "UDYAM-MH-12-987654",
			UdyamNumber:       "UDYAM-MH-12-987654",
			EnterpriseName:    "Priya Sharma Enterprises",
			IssuedTo:          "Priya Sharma",
			OrganizationType:  "Partnership",
			Address:           "456, Business Park, Bandra Kurla Complex",
			State:             "Maharashtra",
			District:          "Mumbai",
			Pincode:           "400070",
			MobileNumber:      "8765432109",
			Email:             "priya.sharma@example.com",
			PAN:               "FGHIJ5678K",
			MajorActivity:     "Services",
			NICCode:           "62090",
			IssuedBy:          "Ministry of MSME, Government of India",
			DigitalSignature:  "DSC-MSME-2024-002",
			QRCode:            "QR987654321",
			IssuedAt:          time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			ValidUntil:        time.Date(2029, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			// Reissued under a newer series, so the certificate number
			// differs from the registration number.
			CertificateNumber: "UDYAM-KA-08-456789",
			UdyamNumber:       "UDYAM-TN-08-456789",
			EnterpriseName:    "Tech Solutions Pvt Ltd",
			IssuedTo:          "Tech Solutions Pvt Ltd",
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
			IssuedAt:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			ValidUntil:        time.Date(2029, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, cert := range certificates {
		if err := s.directory.PutCertificate(ctx, cert); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPostalAreas(ctx context.Context) error {
	areas := []directorymodels.PostalArea{
		{Pincode: "110001", City: "New Delhi", District: "Central Delhi", State: "Delhi"},
		{Pincode: "400001", City: "Mumbai", District: "Mumbai City", State: "Maharashtra"},
		{Pincode: "560001", City: "Bangalore", District: "Bangalore Urban", State: "Karnataka"},
		{Pincode: "600001", City: "Chennai", District: "Chennai", State: "Tamil Nadu"},
		{Pincode: "700001", City: "Kolkata", District: "Kolkata", State: "West Bengal"},
		{Pincode: "500001", City: "Hyderabad", District: "Hyderabad", State: "Telangana"},
		{Pincode: "380001", City: "Ahmedabad", District: "Ahmedabad", State: "Gujarat"},
		{Pincode: "302001", City: "Jaipur", District: "Jaipur", State: "Rajasthan"},
		{Pincode: "226001", City: "Lucknow", District: "Lucknow", State: "Uttar Pradesh"},
		{Pincode: "160001", City: "Chandigarh", District: "Chandigarh", State: "Chandigarh"},
	}
	for _, area := range areas {
		if err := s.directory.PutPostalArea(ctx, area); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedGrievances(ctx context.Context) error {
	tickets := []grievancemodels.Ticket{
		{
			TicketNumber: "GRV-123456",
			Category:     grievancemodels.CategoryTechnicalProblem,
			Priority:     grievancemodels.PriorityMedium,
			Subject:      "Certificate download issue",
			Description:  "The certificate download button returns an empty file.",
			ContactName:  "Rajesh Kumar",
			ContactEmail: "rajesh.kumar@example.com",
			UdyamNumber:  "UDYAM-DL-05-123456",
			Status:       grievancemodels.StatusResolved,
			FiledAt:      time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			TicketNumber: "GRV-789012",
			Category:     grievancemodels.CategoryDataCorrection,
			Priority:     grievancemodels.PriorityMedium,
			Subject:      "Update enterprise address",
			Description:  "Our registered address changed and the certificate still shows the old one.",
			ContactName:  "Rajesh Kumar",
			ContactEmail: "rajesh.kumar@example.com",
			UdyamNumber:  "UDYAM-DL-05-123456",
			Status:       grievancemodels.StatusInProgress,
			FiledAt:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, t := range tickets {
		if err := s.tickets.Save(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
