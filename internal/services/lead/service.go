package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/lib/metrics"
	"property_hub/internal/repository"

	"github.com/google/uuid"
)

type LeadRepository interface {
	CreateLead(ctx context.Context, lead domain.Lead) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	UpdateStatus(ctx context.Context, leadID uuid.UUID, status domain.LeadStatus) error
	ListLeads(ctx context.Context, filter domain.LeadFilter) (*domain.PaginatedResult[domain.Lead], error)
}

// PropertyResolver checks that a viewing request points at a real catalog
// record.
type PropertyResolver interface {
	GetProperty(ctx context.Context, id int64) (domain.Property, error)
}

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLead       = errors.New("invalid lead")
	ErrUnknownProperty   = errors.New("unknown property")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Service captures buyer enquiries from the public forms and drives the
// sales-team follow-up pipeline.
type Service struct {
	log        *slog.Logger
	repo       LeadRepository
	properties PropertyResolver
	metrics    *metrics.SiteMetrics
}

func New(log *slog.Logger, repo LeadRepository, properties PropertyResolver, m *metrics.SiteMetrics) *Service {
	return &Service{
		log:        log,
		repo:       repo,
		properties: properties,
		metrics:    m,
	}
}

// Capture validates and stores an enquiry. It always enters the pipeline as
// NEW.
func (s *Service) Capture(ctx context.Context, lead domain.Lead) (uuid.UUID, error) {
	const op = "lead.Service.Capture"
	log := s.log.With(slog.String("op", op), slog.String("source", lead.Source.String()))

	if err := s.validate(ctx, lead); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	lead.Status = domain.LeadStatusNew

	id, err := s.repo.CreateLead(ctx, lead)
	if err != nil {
		log.Error("failed to create lead", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.RecordLeadCaptured()
	log.Info("lead captured", slog.String("lead_id", id.String()))

	return id, nil
}

func (s *Service) validate(ctx context.Context, lead domain.Lead) error {
	switch lead.Source {
	case domain.LeadSourceMatchmaker, domain.LeadSourceContact,
		domain.LeadSourceListing, domain.LeadSourceViewing:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidLead, lead.Source)
	}

	if strings.TrimSpace(lead.ContactName) == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidLead)
	}

	// Either channel works for follow-up, but at least one is needed.
	hasPhone := strings.TrimSpace(lead.ContactPhone) != ""
	hasEmail := strings.TrimSpace(lead.ContactEmail) != ""
	if !hasPhone && !hasEmail {
		return fmt.Errorf("%w: phone or email is required", ErrInvalidLead)
	}
	if hasEmail {
		if _, err := mail.ParseAddress(lead.ContactEmail); err != nil {
			return fmt.Errorf("%w: contact email is invalid", ErrInvalidLead)
		}
	}

	if lead.Source == domain.LeadSourceViewing {
		if lead.PropertyID == nil {
			return fmt.Errorf("%w: viewing request needs a property", ErrInvalidLead)
		}
		if _, err := s.properties.GetProperty(ctx, *lead.PropertyID); err != nil {
			return ErrUnknownProperty
		}
	}

	if lead.Source == domain.LeadSourceMatchmaker && len(lead.Preferences) == 0 {
		return fmt.Errorf("%w: matchmaker lead needs a preferences snapshot", ErrInvalidLead)
	}

	return nil
}

// GetLead fetches an enquiry by id.
func (s *Service) GetLead(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	const op = "lead.Service.GetLead"

	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return domain.Lead{}, fmt.Errorf("%s: %w", op, ErrLeadNotFound)
		}
		s.log.Error("failed to get lead", sl.Err(err))
		return domain.Lead{}, fmt.Errorf("%s: %w", op, err)
	}

	return lead, nil
}

// ListLeads returns the pipeline by filter.
func (s *Service) ListLeads(ctx context.Context, filter domain.LeadFilter) (*domain.PaginatedResult[domain.Lead], error) {
	const op = "lead.Service.ListLeads"

	page, err := s.repo.ListLeads(ctx, filter)
	if err != nil {
		s.log.Error("failed to list leads", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// UpdateStatus moves an enquiry forward in the pipeline. The pipeline only
// moves forward: NEW -> CONTACTED -> CLOSED, with NEW -> CLOSED allowed for
// junk enquiries.
func (s *Service) UpdateStatus(ctx context.Context, leadID uuid.UUID, status domain.LeadStatus) error {
	const op = "lead.Service.UpdateStatus"

	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return err
	}

	if !canTransition(lead.Status, status) {
		return fmt.Errorf("%s: %w: %s -> %s", op, ErrInvalidTransition, lead.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, leadID, status); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return fmt.Errorf("%s: %w", op, ErrLeadNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("lead status updated",
		slog.String("lead_id", leadID.String()),
		slog.String("status", status.String()),
	)

	return nil
}

func canTransition(from, to domain.LeadStatus) bool {
	switch from {
	case domain.LeadStatusNew:
		return to == domain.LeadStatusContacted || to == domain.LeadStatusClosed
	case domain.LeadStatusContacted:
		return to == domain.LeadStatusClosed
	default:
		return false
	}
}
