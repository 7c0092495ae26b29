package listing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"property_hub/internal/domain"
	"property_hub/internal/lib/metrics"
	"property_hub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	listings map[uuid.UUID]domain.Listing
	outcome  error
}

func newStubRepo(listings ...domain.Listing) *stubRepo {
	r := &stubRepo{listings: map[uuid.UUID]domain.Listing{}}
	for _, l := range listings {
		r.listings[l.ID] = l
	}
	return r
}

func (r *stubRepo) CreateListing(_ context.Context, l domain.Listing) (uuid.UUID, error) {
	l.ID = uuid.New()
	r.listings[l.ID] = l
	return l.ID, nil
}

func (r *stubRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return domain.Listing{}, repository.ErrListingNotFound
	}
	return l, nil
}

func (r *stubRepo) SetReviewOutcome(_ context.Context, id uuid.UUID, status domain.ListingStatus, reason string, propertyID *int64) error {
	if r.outcome != nil {
		return r.outcome
	}
	l, ok := r.listings[id]
	if !ok || l.Status != domain.ListingStatusPending {
		return repository.ErrListingNotFound
	}
	l.Status = status
	l.RejectionReason = reason
	l.PublishedPropertyID = propertyID
	r.listings[id] = l
	return nil
}

func (r *stubRepo) DeleteListing(_ context.Context, id uuid.UUID) error {
	if _, ok := r.listings[id]; !ok {
		return repository.ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *stubRepo) ListListings(_ context.Context, _ domain.ListingFilter) (*domain.PaginatedResult[domain.Listing], error) {
	var items []domain.Listing
	for _, l := range r.listings {
		items = append(items, l)
	}
	return &domain.PaginatedResult[domain.Listing]{Items: items, TotalCount: int32(len(items))}, nil
}

type stubCatalog struct {
	published []domain.Property
	nextID    int64
	failWith  error
}

func (c *stubCatalog) CreateProperty(_ context.Context, p domain.Property) (int64, error) {
	if c.failWith != nil {
		return 0, c.failWith
	}
	c.nextID++
	c.published = append(c.published, p)
	return c.nextID, nil
}

type stubDirectory struct{}

func (stubDirectory) GetLocationByID(id int64) (domain.Location, bool) {
	if id == 3 {
		return domain.Location{ID: 3, Name: "Dubai Marina", City: "Dubai"}, true
	}
	return domain.Location{}, false
}

func newService(t *testing.T, repo *stubRepo, catalog *stubCatalog) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	m := metrics.GetSiteMetrics(log)
	m.Reset()
	return New(log, repo, catalog, stubDirectory{}, m)
}

func validListing() domain.Listing {
	return domain.Listing{
		Title:        "Marina View 1BR",
		Description:  "Bright one-bedroom with full marina view",
		Price:        1_450_000,
		PropertyType: domain.PropertyTypeApartment,
		Beds:         1,
		LocationID:   3,
		Amenities:    []string{"pool", "gym"},
		PhotoKeys:    []string{"listings/abc/1.jpg"},
		ContactName:  "Sara Khan",
		ContactPhone: "+971500000000",
		ContactEmail: "sara@example.com",
	}
}

func TestSubmit_EntersQueueAsPending(t *testing.T) {
	repo := newStubRepo()
	svc := newService(t, repo, &stubCatalog{})

	// Caller-set review fields must be ignored.
	in := validListing()
	in.Status = domain.ListingStatusApproved
	in.RejectionReason = "stale"

	id, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	stored := repo.listings[id]
	assert.Equal(t, domain.ListingStatusPending, stored.Status)
	assert.Empty(t, stored.RejectionReason)
	assert.Nil(t, stored.PublishedPropertyID)
}

func TestSubmit_Validation(t *testing.T) {
	svc := newService(t, newStubRepo(), &stubCatalog{})

	tests := []struct {
		name   string
		mutate func(*domain.Listing)
		want   error
	}{
		{"empty title", func(l *domain.Listing) { l.Title = "  " }, ErrInvalidListing},
		{"zero price", func(l *domain.Listing) { l.Price = 0 }, ErrInvalidListing},
		{"negative beds", func(l *domain.Listing) { l.Beds = -1 }, ErrInvalidListing},
		{"missing contact name", func(l *domain.Listing) { l.ContactName = "" }, ErrInvalidListing},
		{"bad email", func(l *domain.Listing) { l.ContactEmail = "not-an-email" }, ErrInvalidListing},
		{"unknown location", func(l *domain.Listing) { l.LocationID = 404 }, ErrUnknownLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validListing()
			tt.mutate(&in)
			_, err := svc.Submit(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApprove_PublishesToCatalog(t *testing.T) {
	pending := validListing()
	pending.ID = uuid.New()
	pending.Status = domain.ListingStatusPending

	repo := newStubRepo(pending)
	catalog := &stubCatalog{}
	svc := newService(t, repo, catalog)

	propertyID, err := svc.Approve(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), propertyID)

	require.Len(t, catalog.published, 1)
	published := catalog.published[0]
	assert.Equal(t, pending.Title, published.Title)
	assert.Equal(t, pending.Price, published.Price)
	assert.Equal(t, pending.PhotoKeys, published.Images)
	assert.Equal(t, domain.PropertyStatusReady, published.Status)
	// Marketing flags are never inherited from submissions.
	assert.False(t, published.Premium)
	assert.False(t, published.Exclusive)

	stored := repo.listings[pending.ID]
	assert.Equal(t, domain.ListingStatusApproved, stored.Status)
	require.NotNil(t, stored.PublishedPropertyID)
	assert.Equal(t, propertyID, *stored.PublishedPropertyID)
}

func TestApprove_AlreadyReviewed(t *testing.T) {
	decided := validListing()
	decided.ID = uuid.New()
	decided.Status = domain.ListingStatusRejected

	svc := newService(t, newStubRepo(decided), &stubCatalog{})

	_, err := svc.Approve(context.Background(), decided.ID)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestApprove_CatalogFailureLeavesListingPending(t *testing.T) {
	pending := validListing()
	pending.ID = uuid.New()
	pending.Status = domain.ListingStatusPending

	repo := newStubRepo(pending)
	svc := newService(t, repo, &stubCatalog{failWith: errors.New("catalog down")})

	_, err := svc.Approve(context.Background(), pending.ID)
	require.Error(t, err)
	assert.Equal(t, domain.ListingStatusPending, repo.listings[pending.ID].Status)
}

func TestReject_RequiresReason(t *testing.T) {
	pending := validListing()
	pending.ID = uuid.New()
	pending.Status = domain.ListingStatusPending

	repo := newStubRepo(pending)
	svc := newService(t, repo, &stubCatalog{})

	err := svc.Reject(context.Background(), pending.ID, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)

	require.NoError(t, svc.Reject(context.Background(), pending.ID, "photos do not match the unit"))
	stored := repo.listings[pending.ID]
	assert.Equal(t, domain.ListingStatusRejected, stored.Status)
	assert.Equal(t, "photos do not match the unit", stored.RejectionReason)
}

func TestReject_AlreadyReviewed(t *testing.T) {
	approved := validListing()
	approved.ID = uuid.New()
	approved.Status = domain.ListingStatusApproved

	svc := newService(t, newStubRepo(approved), &stubCatalog{})

	err := svc.Reject(context.Background(), approved.ID, "late")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestDeleteListing_NotFound(t *testing.T) {
	svc := newService(t, newStubRepo(), &stubCatalog{})

	err := svc.DeleteListing(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetListing_NotFound(t *testing.T) {
	svc := newService(t, newStubRepo(), &stubCatalog{})

	_, err := svc.GetListing(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrListingNotFound)
}
