package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the portal gateway.
type Metrics struct {
	OTPIssued              prometheus.Counter
	RegistrationsSubmitted prometheus.Counter
	GrievancesFiled        prometheus.Counter
	DirectoryLookups       *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		OTPIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_otp_issued_total",
			Help: "Total number of one-time codes issued for identity confirmation",
		}),
		RegistrationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_registrations_submitted_total",
			Help: "Total number of completed registration submissions",
		}),
		GrievancesFiled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_grievances_filed_total",
			Help: "Total number of grievance tickets filed",
		}),
		DirectoryLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_directory_lookups_total",
			Help: "Directory lookups by kind and outcome",
		}, []string{"kind", "result"}),
	}
}

// IncrementOTPIssued increments the issued-code counter by 1.
func (m *Metrics) IncrementOTPIssued() {
	if m != nil {
		m.OTPIssued.Inc()
	}
}

// IncrementRegistrationsSubmitted increments the submission counter by 1.
func (m *Metrics) IncrementRegistrationsSubmitted() {
	if m != nil {
		m.RegistrationsSubmitted.Inc()
	}
}

// IncrementGrievancesFiled increments the grievance counter by 1.
func (m *Metrics) IncrementGrievancesFiled() {
	if m != nil {
		m.GrievancesFiled.Inc()
	}
}

// ObserveDirectoryLookup records a lookup outcome ("found" or "not_found").
func (m *Metrics) ObserveDirectoryLookup(kind, result string) {
	if m != nil {
		m.DirectoryLookups.WithLabelValues(kind, result).Inc()
	}
}
