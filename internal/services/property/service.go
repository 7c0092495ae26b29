package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/repository"

	"github.com/samber/lo"
)

type PropertyRepository interface {
	CreateProperty(ctx context.Context, property domain.Property) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Property, error)
	UpdateProperty(ctx context.Context, propertyID int64, update domain.PropertyUpdate) error
	DeleteProperty(ctx context.Context, propertyID int64) error
	AllProperties(ctx context.Context) ([]domain.Property, error)
	ListProperties(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult[domain.Property], error)
}

type Service struct {
	log       *slog.Logger
	repo      PropertyRepository
	locations *Directory
}

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrUnknownLocation  = errors.New("unknown location")
)

func New(log *slog.Logger, repo PropertyRepository, locations *Directory) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		locations: locations,
	}
}

// CreateProperty adds a catalog record. The location must resolve; listings
// with made-up communities never reach the public catalog.
func (s *Service) CreateProperty(ctx context.Context, property domain.Property) (int64, error) {
	const op = "property.Service.CreateProperty"
	log := s.log.With(slog.String("op", op), slog.String("title", property.Title))

	if _, ok := s.locations.GetLocationByID(property.LocationID); !ok {
		return 0, fmt.Errorf("%s: %w", op, ErrUnknownLocation)
	}

	id, err := s.repo.CreateProperty(ctx, property)
	if err != nil {
		log.Error("failed to create property", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("property created", slog.Int64("property_id", id))
	return id, nil
}

// GetProperty fetches a catalog record by id.
func (s *Service) GetProperty(ctx context.Context, id int64) (domain.Property, error) {
	const op = "property.Service.GetProperty"

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			s.log.Warn("property not found", slog.Int64("property_id", id))
			return domain.Property{}, fmt.Errorf("%s: %w", op, ErrPropertyNotFound)
		}
		s.log.Error("failed to get property", sl.Err(err))
		return domain.Property{}, fmt.Errorf("%s: %w", op, err)
	}

	return property, nil
}

// UpdateProperty applies a partial update and returns the fresh record.
func (s *Service) UpdateProperty(ctx context.Context, propertyID int64, update domain.PropertyUpdate) (domain.Property, error) {
	const op = "property.Service.UpdateProperty"

	if update.LocationID != nil {
		if _, ok := s.locations.GetLocationByID(*update.LocationID); !ok {
			return domain.Property{}, fmt.Errorf("%s: %w", op, ErrUnknownLocation)
		}
	}

	err := s.repo.UpdateProperty(ctx, propertyID, update)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domain.Property{}, fmt.Errorf("%s: %w", op, ErrPropertyNotFound)
		}
		return domain.Property{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return domain.Property{}, fmt.Errorf("%s: failed to fetch updated property: %w", op, err)
	}

	return updated, nil
}

// DeleteProperty removes a catalog record.
func (s *Service) DeleteProperty(ctx context.Context, propertyID int64) error {
	const op = "property.Service.DeleteProperty"

	if err := s.repo.DeleteProperty(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return fmt.Errorf("%s: %w", op, ErrPropertyNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("property deleted", slog.Int64("property_id", propertyID))
	return nil
}

// ListProperties returns a catalog page by filter.
func (s *Service) ListProperties(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult[domain.Property], error) {
	const op = "property.Service.ListProperties"

	page, err := s.repo.ListProperties(ctx, filter)
	if err != nil {
		s.log.Error("failed to list properties", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// AllProperties returns the whole catalog in insertion order.
func (s *Service) AllProperties(ctx context.Context) ([]domain.Property, error) {
	const op = "property.Service.AllProperties"

	properties, err := s.repo.AllProperties(ctx)
	if err != nil {
		s.log.Error("failed to load catalog", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return properties, nil
}

// FeaturedSelections are the curated home-page strips.
type FeaturedSelections struct {
	Premium     []domain.Property
	Exclusive   []domain.Property
	NewLaunches []domain.Property
}

// Featured picks the flagged catalog records for the home page, at most
// limit per strip.
func (s *Service) Featured(ctx context.Context, limit int) (FeaturedSelections, error) {
	const op = "property.Service.Featured"

	if limit <= 0 {
		limit = 6
	}

	catalog, err := s.repo.AllProperties(ctx)
	if err != nil {
		s.log.Error("failed to load catalog", sl.Err(err))
		return FeaturedSelections{}, fmt.Errorf("%s: %w", op, err)
	}

	takeFlagged := func(pick func(domain.Property) bool) []domain.Property {
		return lo.Subset(lo.Filter(catalog, func(p domain.Property, _ int) bool {
			return pick(p)
		}), 0, uint(limit))
	}

	return FeaturedSelections{
		Premium:     takeFlagged(func(p domain.Property) bool { return p.Premium }),
		Exclusive:   takeFlagged(func(p domain.Property) bool { return p.Exclusive }),
		NewLaunches: takeFlagged(func(p domain.Property) bool { return p.NewLaunch }),
	}, nil
}

// GoldenVisaEligible returns catalog records that qualify for the Golden
// Visa programme.
func (s *Service) GoldenVisaEligible(ctx context.Context, limit int) ([]domain.Property, error) {
	const op = "property.Service.GoldenVisaEligible"

	if limit <= 0 {
		limit = 12
	}

	catalog, err := s.repo.AllProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	eligible := lo.Filter(catalog, func(p domain.Property, _ int) bool {
		return domain.GoldenVisaEligible(p.Price)
	})
	return lo.Subset(eligible, 0, uint(limit)), nil
}

// Locations exposes the community directory.
func (s *Service) Locations() []domain.Location {
	return s.locations.All()
}

// GetLocation fetches a community by id.
func (s *Service) GetLocation(id int64) (domain.Location, error) {
	const op = "property.Service.GetLocation"

	loc, ok := s.locations.GetLocationByID(id)
	if !ok {
		return domain.Location{}, fmt.Errorf("%s: %w", op, repository.ErrLocationNotFound)
	}
	return loc, nil
}
