package matchmaker

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"property_hub/internal/domain"
	"property_hub/internal/lib/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	properties []domain.Property
	err        error
}

func (c *stubCatalog) AllProperties(ctx context.Context) ([]domain.Property, error) {
	return c.properties, c.err
}

func newTestService(catalog *stubCatalog) *Service {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	engine := NewEngine(testDirectory(), DefaultScoreConfig())
	return New(log, catalog, engine, &metrics.SiteMetrics{})
}

func TestService_Match_RequiresLifestyle(t *testing.T) {
	svc := newTestService(&stubCatalog{})

	_, err := svc.Match(context.Background(), domain.PreferenceForm{Budget: "1000000"}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLifestyle)
}

func TestService_Match_PropagatesCatalogError(t *testing.T) {
	svc := newTestService(&stubCatalog{err: errors.New("db down")})

	_, err := svc.Match(context.Background(), domain.PreferenceForm{Lifestyle: []string{"luxury"}}, 3)
	require.Error(t, err)
}

func TestService_Match_ReturnsRankedResults(t *testing.T) {
	svc := newTestService(&stubCatalog{properties: []domain.Property{
		{ID: 1, Price: 1_000_000, LocationID: marinaID},
		{ID: 2, Price: 1_000_000, LocationID: marinaID, Premium: true},
		{ID: 3, Price: 1_000_000, LocationID: marinaID, Exclusive: true},
		{ID: 4, Price: 1_000_000, LocationID: marinaID, NewLaunch: true},
	}})

	results, err := svc.Match(context.Background(), domain.PreferenceForm{Lifestyle: []string{"family"}}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Premium (80) > exclusive (78) > new launch (75).
	assert.Equal(t, int64(2), results[0].Property.ID)
	assert.Equal(t, int64(3), results[1].Property.ID)
	assert.Equal(t, int64(4), results[2].Property.ID)
}
