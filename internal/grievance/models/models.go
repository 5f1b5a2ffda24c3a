// Package models holds grievance tickets and the requests that file them.
package models

import "time"

// Category classifies what a grievance is about.
type Category string

const (
	CategoryRegistrationIssue Category = "registration_issue"
	CategoryTechnicalProblem  Category = "technical_problem"
	CategoryCertificateIssue  Category = "certificate_issue"
	CategoryDataCorrection    Category = "data_correction"
	CategoryStatusInquiry     Category = "status_inquiry"
	CategoryPaymentIssue      Category = "payment_issue"
	CategoryGeneralInquiry    Category = "general_inquiry"
	CategoryOther             Category = "other"
)

// Priority orders tickets for triage. Unset requests default to medium.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// TicketStatus is the lifecycle state of a filed ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// Attachment is the retained metadata of an accepted upload. Rejected
// uploads never reach the ticket; they surface as warnings instead.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// Ticket is a filed grievance.
type Ticket struct {
	TicketNumber  string       `json:"ticket_number"`
	Category      Category     `json:"category"`
	Priority      Priority     `json:"priority"`
	Subject       string       `json:"subject"`
	Description   string       `json:"description"`
	ContactName   string       `json:"contact_name"`
	ContactEmail  string       `json:"contact_email"`
	ContactMobile string       `json:"contact_mobile,omitempty"`
	UdyamNumber   string       `json:"udyam_number,omitempty"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	Device        string       `json:"device,omitempty"`
	Status        TicketStatus `json:"status"`
	FiledAt       time.Time    `json:"filed_at"`
}

// FileRequest carries a new grievance. The optional registration number lets
// support pull up the case directly.
type FileRequest struct {
	Category      string             `json:"category" validate:"required,oneof=registration_issue technical_problem certificate_issue data_correction status_inquiry payment_issue general_inquiry other"`
	Priority      string             `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Subject       string             `json:"subject" validate:"required,notblank,min=10,max=200"`
	Description   string             `json:"description" validate:"required,notblank,min=20,max=2000"`
	ContactName   string             `json:"contact_name" validate:"required,notblank,min=2,max=100"`
	ContactEmail  string             `json:"contact_email" validate:"required,email,max=255"`
	ContactMobile string             `json:"contact_mobile" validate:"omitempty,inmobile"`
	UdyamNumber   string             `json:"udyam_number" validate:"omitempty,udyam"`
	Attachments   []AttachmentUpload `json:"attachments" validate:"max=5,dive"`
}

// AttachmentUpload describes one uploaded file as received.
type AttachmentUpload struct {
	FileName    string `json:"file_name" validate:"required,notblank,max=255"`
	ContentType string `json:"content_type" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
}

// FileResult acknowledges a filed ticket. Warnings list uploads that were
// dropped; their presence does not fail the filing.
type FileResult struct {
	TicketNumber string       `json:"ticket_number"`
	Status       TicketStatus `json:"status"`
	FiledAt      time.Time    `json:"filed_at"`
	Warnings     []string     `json:"warnings,omitempty"`
}
