package developer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/repository"
)

type DeveloperRepository interface {
	CreateDeveloper(ctx context.Context, dev domain.Developer) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Developer, error)
	ListDevelopers(ctx context.Context) ([]domain.Developer, error)
}

var ErrDeveloperNotFound = errors.New("developer not found")

type Service struct {
	log  *slog.Logger
	repo DeveloperRepository
}

func New(log *slog.Logger, repo DeveloperRepository) *Service {
	return &Service{log: log, repo: repo}
}

// CreateDeveloper adds a developer profile.
func (s *Service) CreateDeveloper(ctx context.Context, dev domain.Developer) (int64, error) {
	const op = "developer.Service.CreateDeveloper"

	id, err := s.repo.CreateDeveloper(ctx, dev)
	if err != nil {
		s.log.Error("failed to create developer", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("developer created", slog.Int64("developer_id", id), slog.String("name", dev.Name))
	return id, nil
}

// GetDeveloper fetches a developer profile by id.
func (s *Service) GetDeveloper(ctx context.Context, id int64) (domain.Developer, error) {
	const op = "developer.Service.GetDeveloper"

	dev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return domain.Developer{}, fmt.Errorf("%s: %w", op, ErrDeveloperNotFound)
		}
		s.log.Error("failed to get developer", sl.Err(err))
		return domain.Developer{}, fmt.Errorf("%s: %w", op, err)
	}

	return dev, nil
}

// ListDevelopers returns the developer roster.
func (s *Service) ListDevelopers(ctx context.Context) ([]domain.Developer, error) {
	const op = "developer.Service.ListDevelopers"

	devs, err := s.repo.ListDevelopers(ctx)
	if err != nil {
		s.log.Error("failed to list developers", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return devs, nil
}
