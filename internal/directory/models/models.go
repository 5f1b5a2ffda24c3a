// Package models holds the published directory records: issued registrations,
// their certificates, and the postal areas used for address autofill.
package models

import "time"

// LookupMode selects which identifier a status search matches against.
type LookupMode string

const (
	LookupByUdyam  LookupMode = "udyam"
	LookupByPAN    LookupMode = "pan"
	LookupByMobile LookupMode = "mobile"
)

// RegistrationStatus is the published state of an issued registration.
type RegistrationStatus string

const (
	StatusActive   RegistrationStatus = "active"
	StatusPending  RegistrationStatus = "pending"
	StatusRejected RegistrationStatus = "rejected"
	StatusExpired  RegistrationStatus = "expired"
)

// RegistrationRecord is a published registration as the status tracker
// returns it. Identifiers are stored normalized: uppercase numbers and PAN,
// bare 10-digit mobile. The Aadhaar number is never published; only its
// last four digits are.
type RegistrationRecord struct {
	UdyamNumber      string             `json:"udyam_number"`
	ApplicantName    string             `json:"applicant_name"`
	EnterpriseName   string             `json:"enterprise_name"`
	OrganizationType string             `json:"organization_type"`
	PAN              string             `json:"pan"`
	AadhaarLastFour  string             `json:"aadhaar_last_four"`
	MobileNumber     string             `json:"mobile_number"`
	Email            string             `json:"email"`
	Status           RegistrationStatus `json:"status"`
	RegisteredAt     time.Time          `json:"registered_at"`
	ValidUntil       time.Time          `json:"valid_until"`
}

// CertificateRecord is the verifiable certificate behind a registration: the
// registration fields plus the printed address block, activity codes, and
// issuer/signature metadata. Its number may differ from the registration's
// when the certificate was reissued under a newer series.
type CertificateRecord struct {
	CertificateNumber string    `json:"certificate_number"`
	UdyamNumber       string    `json:"udyam_number"`
	EnterpriseName    string    `json:"enterprise_name"`
	IssuedTo          string    `json:"issued_to"`
	OrganizationType  string    `json:"organization_type"`
	Address           string    `json:"address"`
	State             string    `json:"state"`
	District          string    `json:"district"`
	Pincode           string    `json:"pincode"`
	MobileNumber      string    `json:"mobile_number"`
	Email             string    `json:"email"`
	PAN               string    `json:"pan"`
	MajorActivity     string    `json:"major_activity"`
	NICCode           string    `json:"nic_code"`
	IssuedBy          string    `json:"issued_by"`
	DigitalSignature  string    `json:"digital_signature"`
	QRCode            string    `json:"qr_code"`
	IssuedAt          time.Time `json:"issued_at"`
	ValidUntil        time.Time `json:"valid_until"`
}

// PostalArea maps a PIN code to the locality fields the address form
// autofills.
type PostalArea struct {
	Pincode  string `json:"pincode"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
}
