package listing

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

type ListingRepository interface {
	CreateListing(ctx context.Context, listing domain.Listing) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	SetReviewOutcome(ctx context.Context, listingID uuid.UUID, status domain.ListingStatus, rejectionReason string, publishedPropertyID *int64) error
	DeleteListing(ctx context.Context, listingID uuid.UUID) error
	ListListings(ctx context.Context, filter domain.ListingFilter) (*domain.PaginatedResult[domain.Listing], error)
}

// CatalogPublisher pushes an approved listing into the public catalog.
type CatalogPublisher interface {
	CreateProperty(ctx context.Context, property domain.Property) (int64, error)
}

// LocationDirectory resolves submitted community ids.
type LocationDirectory interface {
	GetLocationByID(id int64) (domain.Location, bool)
}

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrAlreadyReviewed = errors.New("listing already reviewed")
	ErrReasonRequired  = errors.New("rejection reason is required")
	ErrInvalidListing  = errors.New("invalid listing")
	ErrUnknownLocation = errors.New("unknown location")
)

// Service runs the owner-submission pipeline: intake, admin review and
// publication of approved listings into the catalog.
type Service struct {
	log       *slog.Logger
	repo      ListingRepository
	catalog   CatalogPublisher
	locations LocationDirectory
	metrics   *metrics.SiteMetrics
}

func New(log *slog.Logger, repo ListingRepository, catalog CatalogPublisher, locations LocationDirectory, m *metrics.SiteMetrics) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		catalog:   catalog,
		locations: locations,
		metrics:   m,
	}
}

// Submit validates and stores an owner submission. It always enters the
// review queue as PENDING regardless of what the caller set.
func (s *Service) Submit(ctx context.Context, listing domain.Listing) (uuid.UUID, error) {
	const op = "listing.Service.Submit"
	log := s.log.With(slog.String("op", op), slog.String("title", listing.Title))

	if err := s.validate(listing); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	listing.Status = domain.ListingStatusPending
	listing.RejectionReason = ""
	listing.PublishedPropertyID = nil

	id, err := s.repo.CreateListing(ctx, listing)
	if err != nil {
		log.Error("failed to create listing", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.RecordListingSubmitted()
	log.Info("listing submitted", slog.String("listing_id", id.String()))

	return id, nil
}

func (s *Service) validate(listing domain.Listing) error {
	if strings.TrimSpace(listing.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidListing)
	}
	if listing.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidListing)
	}
	if listing.Beds < 0 {
		return fmt.Errorf("%w: beds must not be negative", ErrInvalidListing)
	}
	if strings.TrimSpace(listing.ContactName) == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidListing)
	}
	if _, err := mail.ParseAddress(listing.ContactEmail); err != nil {
		return fmt.Errorf("%w: contact email is invalid", ErrInvalidListing)
	}
	if _, ok := s.locations.GetLocationByID(listing.LocationID); !ok {
		return ErrUnknownLocation
	}
	return nil
}

// GetListing fetches a submission by id.
func (s *Service) GetListing(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	const op = "listing.Service.GetListing"

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domain.Listing{}, fmt.Errorf("%s: %w", op, ErrListingNotFound)
		}
		s.log.Error("failed to get listing", sl.Err(err))
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	return listing, nil
}

// ListListings returns the review queue by filter.
func (s *Service) ListListings(ctx context.Context, filter domain.ListingFilter) (*domain.PaginatedResult[domain.Listing], error) {
	const op = "listing.Service.ListListings"

	page, err := s.repo.ListListings(ctx, filter)
	if err != nil {
		s.log.Error("failed to list listings", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// Approve publishes a pending listing into the catalog and marks it
// APPROVED. Returns the id of the new catalog record.
func (s *Service) Approve(ctx context.Context, listingID uuid.UUID) (int64, error) {
	const op = "listing.Service.Approve"
	log := s.log.With(slog.String("op", op), slog.String("listing_id", listingID.String()))

	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return 0, err
	}
	if !listing.Status.CanTransitionTo(domain.ListingStatusApproved) {
		return 0, fmt.Errorf("%s: %w", op, ErrAlreadyReviewed)
	}

	propertyID, err := s.catalog.CreateProperty(ctx, s.toProperty(listing))
	if err != nil {
		log.Error("failed to publish listing to catalog", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SetReviewOutcome(ctx, listingID, domain.ListingStatusApproved, "", &propertyID); err != nil {
		// The catalog record exists but the listing still reads PENDING.
		// Surface the error; the next approval attempt is rejected by the
		// repository's state guard, so no duplicate is published silently.
		log.Error("failed to record approval", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.RecordListingReviewed(true)
	log.Info("listing approved", slog.Int64("property_id", propertyID))

	return propertyID, nil
}

// Reject declines a pending listing with a reason for the owner.
func (s *Service) Reject(ctx context.Context, listingID uuid.UUID, reason string) error {
	const op = "listing.Service.Reject"

	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%s: %w", op, ErrReasonRequired)
	}

	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if !listing.Status.CanTransitionTo(domain.ListingStatusRejected) {
		return fmt.Errorf("%s: %w", op, ErrAlreadyReviewed)
	}

	if err := s.repo.SetReviewOutcome(ctx, listingID, domain.ListingStatusRejected, reason, nil); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return fmt.Errorf("%s: %w", op, ErrAlreadyReviewed)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.RecordListingReviewed(false)
	s.log.Info("listing rejected", slog.String("listing_id", listingID.String()))

	return nil
}

// DeleteListing removes a submission from the queue.
func (s *Service) DeleteListing(ctx context.Context, listingID uuid.UUID) error {
	const op = "listing.Service.DeleteListing"

	if err := s.repo.DeleteListing(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return fmt.Errorf("%s: %w", op, ErrListingNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("listing deleted", slog.String("listing_id", listingID.String()))
	return nil
}

// toProperty maps an approved submission onto a catalog record. Owner
// submissions never carry marketing flags; those are set by editors later.
func (s *Service) toProperty(listing domain.Listing) domain.Property {
	return domain.Property{
		Title:        listing.Title,
		Description:  listing.Description,
		Price:        listing.Price,
		PropertyType: listing.PropertyType,
		Beds:         listing.Beds,
		LocationID:   listing.LocationID,
		Status:       domain.PropertyStatusReady,
		Amenities:    listing.Amenities,
		Images:       listing.PhotoKeys,
	}
}
