package service

import "udyam-portal/internal/stats/models"

// publishedStatistics is the current published dataset. Figures are released
// by the ministry on a monthly cycle and replaced wholesale.
var publishedStatistics = models.Statistics{
	Overview: models.Overview{
		TotalRegistrations:  1247893,
		ActiveRegistrations: 1183456,
		MonthlyGrowthPct:    8.5,
		YearlyGrowthPct:     42.3,
	},
	StateWise: []models.StateCount{
		{State: "Uttar Pradesh", Count: 187234, Percentage: 15.0},
		{State: "Maharashtra", Count: 156789, Percentage: 12.6},
		{State: "Gujarat", Count: 124567, Percentage: 10.0},
		{State: "Tamil Nadu", Count: 98765, Percentage: 7.9},
		{State: "Karnataka", Count: 89123, Percentage: 7.1},
		{State: "Rajasthan", Count: 76543, Percentage: 6.1},
		{State: "West Bengal", Count: 67890, Percentage: 5.4},
		{State: "Madhya Pradesh", Count: 65432, Percentage: 5.2},
		{State: "Punjab", Count: 54321, Percentage: 4.4},
		{State: "Haryana", Count: 45678, Percentage: 3.7},
	},
	CategoryWise: []models.CategoryCount{
		{Category: "Micro Enterprise", Count: 892345, Percentage: 71.5},
		{Category: "Small Enterprise", Count: 267891, Percentage: 21.5},
		{Category: "Medium Enterprise", Count: 87657, Percentage: 7.0},
	},
	Monthly: []models.MonthlyCount{
		{Month: "Apr 2024", Registrations: 89123},
		{Month: "May 2024", Registrations: 95467},
		{Month: "Jun 2024", Registrations: 101234},
		{Month: "Jul 2024", Registrations: 98765},
		{Month: "Aug 2024", Registrations: 105432},
		{Month: "Sep 2024", Registrations: 112345},
		{Month: "Oct 2024", Registrations: 118901},
		{Month: "Nov 2024", Registrations: 125678},
		{Month: "Dec 2024", Registrations: 134567},
	},
}

// demoProfile is the account shown while the portal has no sign-in.
var demoProfile = models.Profile{
	Name:          "Rajesh Kumar",
	Email:         "rajesh.kumar@example.com",
	MobileNumber:  "+91 9876543210",
	AadhaarMasked: "****-****-5678",
}

var demoOwnedNumbers = []string{
	"UDYAM-DL-05-123456",
	"UDYAM-MH-12-987654",
}
