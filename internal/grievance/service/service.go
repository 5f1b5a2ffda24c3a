// Package service files grievance tickets: validation, attachment screening,
// ticket numbering, and fan-out to the audit trail and message bus.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"udyam-portal/internal/audit"
	"udyam-portal/internal/grievance/models"
	"udyam-portal/internal/grievance/store"
	"udyam-portal/internal/platform/config"
	"udyam-portal/internal/platform/delay"
	"udyam-portal/internal/platform/kafka/producer"
	"udyam-portal/internal/platform/metrics"
	"udyam-portal/internal/sentinel"
	dErrors "udyam-portal/pkg/domain-errors"
	stringutil "udyam-portal/pkg/string"
	"udyam-portal/pkg/validation"
)

// maxAttachmentBytes caps a single upload at 5 MB.
const maxAttachmentBytes = 5 << 20

// allowedContentTypes is the upload allowlist. Anything else is dropped with
// a warning rather than failing the filing.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
	"text/plain":      true,
}

// EventSink publishes filed tickets to the message bus.
type EventSink interface {
	ProduceAsync(msg *producer.Message) error
}

// TicketNumbers hands out ticket numbers in the GRV-NNNNNN format. Seeded
// from the clock so restarts do not reuse recent numbers.
type TicketNumbers struct {
	counter atomic.Uint64
}

func NewTicketNumbers() *TicketNumbers {
	n := &TicketNumbers{}
	n.counter.Store(uint64(time.Now().UnixNano()) % 900000)
	return n
}

func (n *TicketNumbers) Next() string {
	return fmt.Sprintf("GRV-%06d", n.counter.Add(1)%1000000)
}

// Service files and retrieves grievance tickets.
type Service struct {
	store   store.Store
	numbers *TicketNumbers
	logger  *slog.Logger
	audit   *audit.Publisher
	metrics *metrics.Metrics
	events  EventSink
	topic   string
	latency config.Latency
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLatency sets the artificial delay of the simulated filing call.
func WithLatency(l config.Latency) Option {
	return func(s *Service) { s.latency = l }
}

// WithEvents attaches a message bus sink for filed tickets.
func WithEvents(sink EventSink, topic string) Option {
	return func(s *Service) {
		s.events = sink
		s.topic = topic
	}
}

func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:   st,
		numbers: NewTicketNumbers(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// File validates and stores a new grievance. Disallowed or oversized
// attachments are screened out and reported as warnings on the result;
// the ticket itself is still filed.
func (s *Service) File(ctx context.Context, req models.FileRequest, device string) (models.FileResult, error) {
	// Length floors apply to the trimmed value, so normalize first.
	stringutil.TrimStrings(&req.Subject, &req.Description, &req.ContactName,
		&req.ContactEmail, &req.ContactMobile, &req.UdyamNumber)
	if err := validation.Validate(&req); err != nil {
		return models.FileResult{}, err
	}

	attachments, warnings := screenAttachments(req.Attachments)

	if err := delay.Wait(ctx, s.latency.Submission); err != nil {
		return models.FileResult{}, dErrors.Wrap(err, dErrors.CodeTimeout, "grievance filing was interrupted")
	}

	priority := models.Priority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	ticket := models.Ticket{
		TicketNumber:  s.numbers.Next(),
		Category:      models.Category(req.Category),
		Priority:      priority,
		Subject:       req.Subject,
		Description:   req.Description,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactMobile: req.ContactMobile,
		UdyamNumber:   strings.ToUpper(req.UdyamNumber),
		Attachments:   attachments,
		Device:        device,
		Status:        models.StatusOpen,
		FiledAt:       time.Now().UTC(),
	}
	if err := s.store.Save(ctx, ticket); err != nil {
		return models.FileResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not store grievance ticket")
	}

	s.publishFiled(ctx, ticket)
	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			Action:  string(audit.ActionGrievanceFiled),
			Subject: ticket.TicketNumber,
			Detail:  string(ticket.Category),
			Device:  device,
		}); err != nil {
			s.logger.WarnContext(ctx, "could not record grievance audit event", "error", err)
		}
	}
	s.metrics.IncrementGrievancesFiled()

	s.logger.InfoContext(ctx, "grievance filed",
		"ticket_number", ticket.TicketNumber,
		"category", ticket.Category,
		"priority", ticket.Priority,
		"attachments", len(attachments),
		"dropped_attachments", len(warnings),
	)

	return models.FileResult{
		TicketNumber: ticket.TicketNumber,
		Status:       ticket.Status,
		FiledAt:      ticket.FiledAt,
		Warnings:     warnings,
	}, nil
}

// Ticket returns a filed grievance by its number.
func (s *Service) Ticket(ctx context.Context, ticketNumber string) (models.Ticket, error) {
	ticketNumber = strings.ToUpper(strings.TrimSpace(ticketNumber))
	ticket, err := s.store.FindByNumber(ctx, ticketNumber)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Ticket{}, dErrors.New(dErrors.CodeNotFound, "no ticket found for the given number")
		}
		return models.Ticket{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not load grievance ticket")
	}
	return ticket, nil
}

func screenAttachments(uploads []models.AttachmentUpload) ([]models.Attachment, []string) {
	var (
		accepted []models.Attachment
		warnings []string
	)
	for _, up := range uploads {
		if !allowedContentTypes[up.ContentType] {
			warnings = append(warnings, fmt.Sprintf("%s: file type %s is not allowed", up.FileName, up.ContentType))
			continue
		}
		if up.SizeBytes > maxAttachmentBytes {
			warnings = append(warnings, fmt.Sprintf("%s: file exceeds the 5 MB limit", up.FileName))
			continue
		}
		accepted = append(accepted, models.Attachment{
			FileName:    up.FileName,
			ContentType: up.ContentType,
			SizeBytes:   up.SizeBytes,
		})
	}
	return accepted, warnings
}

type filedEvent struct {
	TicketNumber string    `json:"ticket_number"`
	Category     string    `json:"category"`
	Priority     string    `json:"priority"`
	UdyamNumber  string    `json:"udyam_number,omitempty"`
	FiledAt      time.Time `json:"filed_at"`
}

func (s *Service) publishFiled(ctx context.Context, ticket models.Ticket) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(filedEvent{
		TicketNumber: ticket.TicketNumber,
		Category:     string(ticket.Category),
		Priority:     string(ticket.Priority),
		UdyamNumber:  ticket.UdyamNumber,
		FiledAt:      ticket.FiledAt,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "could not encode grievance event", "error", err)
		return
	}
	err = s.events.ProduceAsync(&producer.Message{
		Topic: s.topic,
		Key:   []byte(ticket.TicketNumber),
		Value: payload,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "could not publish grievance event", "error", err)
	}
}
