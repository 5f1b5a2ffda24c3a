package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	AttemptID string
	Action    string
	Subject   string
	Detail    string
	Device    string
}

type Action string

const (
	ActionOTPIssued             Action = "otp_issued"
	ActionOTPVerified           Action = "otp_verified"
	ActionRegistrationSubmitted Action = "registration_submitted"
	ActionRegistrationReset     Action = "registration_reset"
	ActionCertificateVerified   Action = "certificate_verified"
	ActionGrievanceFiled        Action = "grievance_filed"
)
