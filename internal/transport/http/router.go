// Package httptransport wires the portal's HTTP surface: domain handlers,
// middleware stack, health probes, and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"udyam-portal/internal/platform/health"
	"udyam-portal/internal/platform/middleware"
)

// Registrar is a domain handler that mounts its routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// Handlers collects the domain handlers the router mounts.
type Handlers struct {
	Registration Registrar
	Directory    Registrar
	Grievance    Registrar
	Stats        Registrar
	FAQ          Registrar
	Health       *health.Handler
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	for _, registrar := range []Registrar{h.Registration, h.Directory, h.Grievance, h.Stats, h.FAQ} {
		if registrar != nil {
			registrar.Register(r)
		}
	}

	if h.Health != nil {
		h.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	return r
}
