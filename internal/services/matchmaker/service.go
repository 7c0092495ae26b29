package matchmaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/lib/metrics"
)

// CatalogProvider supplies the full property catalog snapshot the engine
// runs over.
type CatalogProvider interface {
	AllProperties(ctx context.Context) ([]domain.Property, error)
}

var (
	// ErrNoLifestyle is returned when a submission carries no lifestyle tag.
	// The form requires at least one; the engine itself does not.
	ErrNoLifestyle = errors.New("at least one lifestyle tag is required")
)

// Service validates matchmaker submissions, fetches the catalog and runs the
// engine over it.
type Service struct {
	log     *slog.Logger
	catalog CatalogProvider
	engine  *Engine
	metrics *metrics.SiteMetrics
}

// New builds a matchmaker service.
func New(log *slog.Logger, catalog CatalogProvider, engine *Engine, m *metrics.SiteMetrics) *Service {
	return &Service{
		log:     log,
		catalog: catalog,
		engine:  engine,
		metrics: m,
	}
}

// Match parses and validates the raw form, then runs the engine.
// topN <= 0 uses the engine default.
func (s *Service) Match(ctx context.Context, form domain.PreferenceForm, topN int) ([]domain.ScoredProperty, error) {
	const op = "matchmaker.Service.Match"
	log := s.log.With(slog.String("op", op))

	prefs := domain.ParsePreferences(form)
	if len(prefs.Lifestyle) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoLifestyle)
	}

	catalog, err := s.catalog.AllProperties(ctx)
	if err != nil {
		log.Error("failed to load catalog", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	results := s.engine.Match(catalog, prefs, topN)
	s.metrics.RecordMatchRequest(len(catalog), len(results))

	log.Info("matchmaking completed",
		slog.Int("catalog_size", len(catalog)),
		slog.Int("results", len(results)),
	)

	return results, nil
}
