package models

import "time"

// OTPIssueResult is returned after a code has been dispatched.
type OTPIssueResult struct {
	AttemptID    string `json:"attempt_id"`
	MobileNumber string `json:"mobile_number"`
	ExpiresInSec int    `json:"expires_in_seconds"`
}

// VerifyResult confirms the identity step completed and step two may begin.
type VerifyResult struct {
	Verified  bool   `json:"verified"`
	NextStep  string `json:"next_step"`
	Applicant ApplicantDetails `json:"applicant"`
}

// SubmissionResult is returned once the registration session is assembled.
type SubmissionResult struct {
	UdyamNumber string    `json:"udyam_number"`
	SubmittedAt time.Time `json:"submitted_at"`
}
