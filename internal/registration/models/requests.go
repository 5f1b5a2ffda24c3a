package models

import "strings"

// SendOTPRequest carries the step-one identity fields. All four must pass
// validation before any code is dispatched; there is no partial send.
type SendOTPRequest struct {
	AadhaarNumber string `json:"aadhaar_number" validate:"required,aadhaar"`
	Name          string `json:"name" validate:"required,notblank,min=2,max=100"`
	MobileNumber  string `json:"mobile_number" validate:"required,inmobile"`
	Email         string `json:"email" validate:"required,email,max=255"`
}

// Applicant converts the request into the record persisted after the code
// is confirmed.
func (r *SendOTPRequest) Applicant() ApplicantDetails {
	return ApplicantDetails{
		AadhaarNumber: r.AadhaarNumber,
		Name:          strings.TrimSpace(r.Name),
		MobileNumber:  r.MobileNumber,
		Email:         strings.TrimSpace(r.Email),
	}
}

// VerifyOTPRequest carries the 6-digit confirmation code.
type VerifyOTPRequest struct {
	Code string `json:"code" validate:"required,len=6,number"`
}

// OrganizationRequest carries the step-two fields. GSTIN is required exactly
// when HasGSTIN is set; when the declaration is cleared any entered value is
// dropped in Details rather than validated.
type OrganizationRequest struct {
	OrganizationType      string `json:"organization_type" validate:"required,oneof=proprietorship partnership huf private_limited llp society trust cooperative"`
	PAN                   string `json:"pan" validate:"required,pan"`
	EnterpriseName        string `json:"enterprise_name" validate:"required,notblank,min=2,max=200"`
	SocialCategory        string `json:"social_category" validate:"required,oneof=general sc st obc"`
	Gender                string `json:"gender" validate:"required,oneof=male female other"`
	PhysicallyHandicapped bool   `json:"physically_handicapped"`
	FiledITR              bool   `json:"filed_itr"`
	HasGSTIN              bool   `json:"has_gstin"`
	GSTIN                 string `json:"gstin" validate:"required_if=HasGSTIN true,omitempty,gstin"`
}

// Details normalizes the request into the stored record: PAN and GSTIN are
// uppercased, and an undeclared GSTIN is discarded even if a value was sent.
func (r *OrganizationRequest) Details() OrganizationDetails {
	d := OrganizationDetails{
		OrganizationType:      OrganizationType(r.OrganizationType),
		PAN:                   strings.ToUpper(r.PAN),
		EnterpriseName:        strings.TrimSpace(r.EnterpriseName),
		SocialCategory:        SocialCategory(r.SocialCategory),
		Gender:                Gender(r.Gender),
		PhysicallyHandicapped: r.PhysicallyHandicapped,
		FiledITR:              r.FiledITR,
	}
	if r.HasGSTIN {
		g := GSTIN(strings.ToUpper(r.GSTIN))
		d.GSTIN = &g
	}
	return d
}
