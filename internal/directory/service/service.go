// Package service answers public directory queries: registration status by
// identifier, certificate verification, and postal-area autofill.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"udyam-portal/internal/audit"
	"udyam-portal/internal/directory/debounce"
	"udyam-portal/internal/directory/models"
	"udyam-portal/internal/directory/store"
	"udyam-portal/internal/platform/config"
	"udyam-portal/internal/platform/delay"
	"udyam-portal/internal/platform/metrics"
	"udyam-portal/internal/sentinel"
	dErrors "udyam-portal/pkg/domain-errors"
	s "udyam-portal/pkg/string"
	"udyam-portal/pkg/validation"
)

// Service serves directory lookups against the published store.
type Service struct {
	store   store.Store
	tracer  trace.Tracer
	logger  *slog.Logger
	audit   *audit.Publisher
	metrics *metrics.Metrics
	latency config.Latency
	postal  *debounce.Debouncer[models.PostalArea]
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(svc *Service) { svc.logger = logger }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(svc *Service) { svc.tracer = tracer }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(svc *Service) { svc.audit = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(svc *Service) { svc.metrics = m }
}

// WithLatency sets the simulated upstream pauses. The directory window also
// drives the postal-area debounce.
func WithLatency(l config.Latency) Option {
	return func(svc *Service) { svc.latency = l }
}

func NewService(st store.Store, opts ...Option) *Service {
	svc := &Service{store: st}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = noop.NewTracerProvider().Tracer("directory")
	}
	svc.postal = debounce.New[models.PostalArea](svc.latency.DirectoryLookup)
	return svc
}

// Lookup finds a published registration by the chosen identifier. The query
// is normalized before matching: numbers and PAN uppercased, mobile stripped
// to its trailing 10 digits.
func (svc *Service) Lookup(ctx context.Context, mode models.LookupMode, query string) (models.RegistrationRecord, error) {
	ctx, span := svc.tracer.Start(ctx, "directory.lookup",
		trace.WithAttributes(attribute.String("lookup.mode", string(mode))),
	)
	defer span.End()

	query = strings.TrimSpace(query)

	var (
		rec models.RegistrationRecord
		err error
	)
	switch mode {
	case models.LookupByUdyam:
		number := strings.ToUpper(query)
		if !validation.ValidUdyamNumber(number) {
			return models.RegistrationRecord{}, dErrors.New(dErrors.CodeValidation, "query must match UDYAM-XX-NN-NNNNNN")
		}
		err = delay.Wait(ctx, svc.latency.DirectoryLookup)
		if err == nil {
			rec, err = svc.store.FindByUdyam(ctx, number)
		}
	case models.LookupByPAN:
		pan := strings.ToUpper(query)
		if !validation.ValidPAN(pan) {
			return models.RegistrationRecord{}, dErrors.New(dErrors.CodeValidation, "query must be a valid PAN")
		}
		err = delay.Wait(ctx, svc.latency.DirectoryLookup)
		if err == nil {
			rec, err = svc.store.FindByPAN(ctx, pan)
		}
	case models.LookupByMobile:
		mobile := s.LastN(s.DigitsOnly(query), 10)
		if !validation.ValidMobile(mobile) {
			return models.RegistrationRecord{}, dErrors.New(dErrors.CodeValidation, "query must be a valid 10-digit mobile number")
		}
		err = delay.Wait(ctx, svc.latency.DirectoryLookup)
		if err == nil {
			rec, err = svc.store.FindByMobile(ctx, mobile)
		}
	default:
		return models.RegistrationRecord{}, dErrors.New(dErrors.CodeBadRequest, "mode must be one of [udyam pan mobile]")
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return models.RegistrationRecord{}, dErrors.Wrap(err, dErrors.CodeTimeout, "directory lookup interrupted")
		}
		svc.metrics.ObserveDirectoryLookup(string(mode), "not_found")
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.RegistrationRecord{}, dErrors.New(dErrors.CodeNotFound, "no registration found for the given details")
		}
		span.SetStatus(codes.Error, "lookup failed")
		return models.RegistrationRecord{}, dErrors.Wrap(err, dErrors.CodeInternal, "directory lookup failed")
	}

	svc.metrics.ObserveDirectoryLookup(string(mode), "found")
	return rec, nil
}

// VerifyCertificate checks a certificate number and returns the certificate
// record. Verifications land in the audit trail; failed ones do not.
func (svc *Service) VerifyCertificate(ctx context.Context, number string) (models.CertificateRecord, error) {
	ctx, span := svc.tracer.Start(ctx, "directory.verify_certificate")
	defer span.End()

	number = strings.ToUpper(strings.TrimSpace(number))
	if !validation.ValidUdyamNumber(number) {
		return models.CertificateRecord{}, dErrors.New(dErrors.CodeValidation, "certificate number must match UDYAM-XX-NN-NNNNNN")
	}

	if err := delay.Wait(ctx, svc.latency.DirectoryLookup); err != nil {
		return models.CertificateRecord{}, dErrors.Wrap(err, dErrors.CodeTimeout, "certificate check interrupted")
	}

	cert, err := svc.store.FindCertificate(ctx, number)
	if err != nil {
		svc.metrics.ObserveDirectoryLookup("certificate", "not_found")
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.CertificateRecord{}, dErrors.New(dErrors.CodeNotFound, "no certificate found for the given number")
		}
		span.SetStatus(codes.Error, "certificate lookup failed")
		return models.CertificateRecord{}, dErrors.Wrap(err, dErrors.CodeInternal, "certificate lookup failed")
	}

	svc.metrics.ObserveDirectoryLookup("certificate", "found")
	if svc.audit != nil {
		if err := svc.audit.Emit(ctx, audit.Event{
			Action:  string(audit.ActionCertificateVerified),
			Subject: cert.CertificateNumber,
		}); err != nil {
			svc.logger.WarnContext(ctx, "could not record certificate verification", "error", err)
		}
	}
	return cert, nil
}

// PostalArea resolves a PIN code to its locality. Calls are debounced per
// code: while a client types, only the trailing query reaches the store and
// earlier in-flight ones report debounce.ErrSuperseded.
func (svc *Service) PostalArea(ctx context.Context, pincode string) (models.PostalArea, error) {
	pincode = strings.TrimSpace(pincode)
	if !validation.ValidPincode(pincode) {
		return models.PostalArea{}, dErrors.New(dErrors.CodeValidation, "pincode must be exactly 6 digits")
	}

	area, err := svc.postal.Do(ctx, pincode, func(ctx context.Context) (models.PostalArea, error) {
		ctx, span := svc.tracer.Start(ctx, "directory.postal_area",
			trace.WithAttributes(attribute.String("pincode", pincode)),
		)
		defer span.End()
		return svc.store.FindPostalArea(ctx, pincode)
	})
	if err != nil {
		if errors.Is(err, debounce.ErrSuperseded) {
			return models.PostalArea{}, dErrors.Wrap(err, dErrors.CodeConflict, "superseded by a newer query")
		}
		svc.metrics.ObserveDirectoryLookup("pincode", "not_found")
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.PostalArea{}, dErrors.New(dErrors.CodeNotFound, "unknown pincode")
		}
		return models.PostalArea{}, dErrors.Wrap(err, dErrors.CodeInternal, "postal area lookup failed")
	}

	svc.metrics.ObserveDirectoryLookup("pincode", "found")
	return area, nil
}
