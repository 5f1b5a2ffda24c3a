// Package models holds the published statistics and dashboard shapes.
package models

import (
	directory "udyam-portal/internal/directory/models"
	grievance "udyam-portal/internal/grievance/models"
)

// Overview is the headline block of the public statistics page.
type Overview struct {
	TotalRegistrations  int     `json:"total_registrations"`
	ActiveRegistrations int     `json:"active_registrations"`
	MonthlyGrowthPct    float64 `json:"monthly_growth_pct"`
	YearlyGrowthPct     float64 `json:"yearly_growth_pct"`
}

// StateCount is one row of the state-wise distribution.
type StateCount struct {
	State      string  `json:"state"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryCount is one row of the enterprise-category distribution.
type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthlyCount is one point of the registration trend line.
type MonthlyCount struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
}

// Statistics is the full public statistics snapshot.
type Statistics struct {
	Overview     Overview        `json:"overview"`
	StateWise    []StateCount    `json:"state_wise"`
	CategoryWise []CategoryCount `json:"category_wise"`
	Monthly      []MonthlyCount  `json:"monthly"`
}

// Profile is the account block the dashboard shows. Aadhaar is pre-masked.
type Profile struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	MobileNumber  string `json:"mobile_number"`
	AadhaarMasked string `json:"aadhaar_masked"`
}

// Dashboard aggregates everything the account page renders in one response.
type Dashboard struct {
	Profile       Profile                        `json:"profile"`
	Registrations []directory.RegistrationRecord `json:"registrations"`
	Grievances    []grievance.Ticket             `json:"grievances"`
}
