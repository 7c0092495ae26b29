package property

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"property_hub/internal/domain"
	"property_hub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	catalog   []domain.Property
	created   []domain.Property
	updated   map[int64]domain.PropertyUpdate
	deleted   []int64
	nextID    int64
	failWith  error
	listPages *domain.PaginatedResult[domain.Property]
}

func newStubRepo(catalog ...domain.Property) *stubRepo {
	return &stubRepo{catalog: catalog, updated: map[int64]domain.PropertyUpdate{}, nextID: 100}
}

func (r *stubRepo) CreateProperty(_ context.Context, p domain.Property) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	r.nextID++
	p.ID = r.nextID
	r.created = append(r.created, p)
	r.catalog = append(r.catalog, p)
	return p.ID, nil
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (domain.Property, error) {
	if r.failWith != nil {
		return domain.Property{}, r.failWith
	}
	for _, p := range r.catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, repository.ErrPropertyNotFound
}

func (r *stubRepo) UpdateProperty(_ context.Context, id int64, update domain.PropertyUpdate) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, p := range r.catalog {
		if p.ID == id {
			if update.Title != nil {
				r.catalog[i].Title = *update.Title
			}
			r.updated[id] = update
			return nil
		}
	}
	return repository.ErrPropertyNotFound
}

func (r *stubRepo) DeleteProperty(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, p := range r.catalog {
		if p.ID == id {
			r.catalog = append(r.catalog[:i], r.catalog[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return repository.ErrPropertyNotFound
}

func (r *stubRepo) AllProperties(_ context.Context) ([]domain.Property, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.catalog, nil
}

func (r *stubRepo) ListProperties(_ context.Context, _ domain.PropertyFilter) (*domain.PaginatedResult[domain.Property], error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.listPages != nil {
		return r.listPages, nil
	}
	return &domain.PaginatedResult[domain.Property]{Items: r.catalog, TotalCount: int32(len(r.catalog))}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCreateProperty_RejectsUnknownLocation(t *testing.T) {
	svc := New(discardLogger(), newStubRepo(), NewSeededDirectory())

	_, err := svc.CreateProperty(context.Background(), domain.Property{
		Title:      "Mystery Tower",
		LocationID: 999,
	})
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestCreateProperty_KnownLocation(t *testing.T) {
	repo := newStubRepo()
	svc := New(discardLogger(), repo, NewSeededDirectory())

	id, err := svc.CreateProperty(context.Background(), domain.Property{
		Title:      "Marina Vista 2BR",
		LocationID: 3,
	})
	require.NoError(t, err)
	assert.Positive(t, id)
	require.Len(t, repo.created, 1)
}

func TestGetProperty_NotFound(t *testing.T) {
	svc := New(discardLogger(), newStubRepo(), NewSeededDirectory())

	_, err := svc.GetProperty(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUpdateProperty_ReturnsFreshRecord(t *testing.T) {
	repo := newStubRepo(domain.Property{ID: 7, Title: "Old Title", LocationID: 2})
	svc := New(discardLogger(), repo, NewSeededDirectory())

	title := "New Title"
	updated, err := svc.UpdateProperty(context.Background(), 7, domain.PropertyUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
}

func TestUpdateProperty_RejectsUnknownLocation(t *testing.T) {
	repo := newStubRepo(domain.Property{ID: 7, LocationID: 2})
	svc := New(discardLogger(), repo, NewSeededDirectory())

	badLoc := int64(404)
	_, err := svc.UpdateProperty(context.Background(), 7, domain.PropertyUpdate{LocationID: &badLoc})
	assert.ErrorIs(t, err, ErrUnknownLocation)
	assert.Empty(t, repo.updated)
}

func TestDeleteProperty(t *testing.T) {
	repo := newStubRepo(domain.Property{ID: 5})
	svc := New(discardLogger(), repo, NewSeededDirectory())

	require.NoError(t, svc.DeleteProperty(context.Background(), 5))
	assert.ErrorIs(t, svc.DeleteProperty(context.Background(), 5), ErrPropertyNotFound)
}

func TestFeatured_SplitsByFlagAndLimits(t *testing.T) {
	var catalog []domain.Property
	for i := int64(1); i <= 10; i++ {
		catalog = append(catalog, domain.Property{ID: i, Premium: true})
	}
	catalog = append(catalog,
		domain.Property{ID: 11, Exclusive: true},
		domain.Property{ID: 12, NewLaunch: true},
		domain.Property{ID: 13},
	)
	svc := New(discardLogger(), newStubRepo(catalog...), NewSeededDirectory())

	sel, err := svc.Featured(context.Background(), 6)
	require.NoError(t, err)

	assert.Len(t, sel.Premium, 6)
	require.Len(t, sel.Exclusive, 1)
	assert.Equal(t, int64(11), sel.Exclusive[0].ID)
	require.Len(t, sel.NewLaunches, 1)
	assert.Equal(t, int64(12), sel.NewLaunches[0].ID)
}

func TestGoldenVisaEligible_FiltersByThreshold(t *testing.T) {
	svc := New(discardLogger(), newStubRepo(
		domain.Property{ID: 1, Price: 1_999_999},
		domain.Property{ID: 2, Price: 2_000_000},
		domain.Property{ID: 3, Price: 4_500_000},
	), NewSeededDirectory())

	eligible, err := svc.GoldenVisaEligible(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, eligible, 2)
	assert.Equal(t, int64(2), eligible[0].ID)
	assert.Equal(t, int64(3), eligible[1].ID)
}

func TestAllProperties_PropagatesError(t *testing.T) {
	repo := newStubRepo()
	repo.failWith = errors.New("connection reset")
	svc := New(discardLogger(), repo, NewSeededDirectory())

	_, err := svc.AllProperties(context.Background())
	assert.Error(t, err)
}

func TestDirectory_Lookups(t *testing.T) {
	d := NewSeededDirectory()

	palm, ok := d.GetLocationByID(1)
	require.True(t, ok)
	assert.Equal(t, "Palm Jumeirah", palm.Name)
	assert.True(t, palm.HasTag(domain.LocationTagBeachfront))

	marina, ok := d.GetLocationByName("  dubai marina ")
	require.True(t, ok)
	assert.Equal(t, int64(3), marina.ID)
	assert.False(t, marina.HasTag(domain.LocationTagBeachfront))

	_, ok = d.GetLocationByID(999)
	assert.False(t, ok)

	all := d.All()
	require.Len(t, all, 8)
	assert.Equal(t, int64(1), all[0].ID)
}
