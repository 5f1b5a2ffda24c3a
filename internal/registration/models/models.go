package models

import "time"

// ApplicantDetails captures the identity fields confirmed in step one.
// Immutable once the one-time code is verified.
type ApplicantDetails struct {
	AadhaarNumber string `json:"aadhaar_number"`
	Name          string `json:"name"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email"`
}

// AadhaarLastFour returns the masked tail used wherever the full number
// must not be displayed.
func (a ApplicantDetails) AadhaarLastFour() string {
	if len(a.AadhaarNumber) < 4 {
		return a.AadhaarNumber
	}
	return a.AadhaarNumber[len(a.AadhaarNumber)-4:]
}

// OrganizationDetails captures the enterprise fields collected in step two.
// PAN is stored uppercased. GSTIN is nil unless the applicant declared one.
type OrganizationDetails struct {
	OrganizationType      OrganizationType `json:"organization_type"`
	PAN                   string           `json:"pan"`
	EnterpriseName        string           `json:"enterprise_name"`
	SocialCategory        SocialCategory   `json:"social_category"`
	Gender                Gender           `json:"gender"`
	PhysicallyHandicapped bool             `json:"physically_handicapped"`
	FiledITR              bool             `json:"filed_itr"`
	GSTIN                 *GSTIN           `json:"gstin,omitempty"`
}

// RegistrationSession is the assembled outcome of a completed attempt: the
// confirmed applicant, the submitted organization, and the issued number.
// It is the sole record the confirmation page reads.
type RegistrationSession struct {
	Applicant    ApplicantDetails    `json:"applicant"`
	Organization OrganizationDetails `json:"organization"`
	UdyamNumber  string              `json:"udyam_number"`
	SubmittedAt  time.Time           `json:"submitted_at"`
}
