package lead

import (
	"context"
	"encoding/json"
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
	leads map[uuid.UUID]domain.Lead
}

func newStubRepo(leads ...domain.Lead) *stubRepo {
	r := &stubRepo{leads: map[uuid.UUID]domain.Lead{}}
	for _, l := range leads {
		r.leads[l.ID] = l
	}
	return r
}

func (r *stubRepo) CreateLead(_ context.Context, l domain.Lead) (uuid.UUID, error) {
	l.ID = uuid.New()
	r.leads[l.ID] = l
	return l.ID, nil
}

func (r *stubRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return domain.Lead{}, repository.ErrLeadNotFound
	}
	return l, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.LeadStatus) error {
	l, ok := r.leads[id]
	if !ok {
		return repository.ErrLeadNotFound
	}
	l.Status = status
	r.leads[id] = l
	return nil
}

func (r *stubRepo) ListLeads(_ context.Context, _ domain.LeadFilter) (*domain.PaginatedResult[domain.Lead], error) {
	var items []domain.Lead
	for _, l := range r.leads {
		items = append(items, l)
	}
	return &domain.PaginatedResult[domain.Lead]{Items: items, TotalCount: int32(len(items))}, nil
}

type stubProperties struct{}

func (stubProperties) GetProperty(_ context.Context, id int64) (domain.Property, error) {
	if id == 7 {
		return domain.Property{ID: 7, Title: "Creek Rise 2BR"}, nil
	}
	return domain.Property{}, repository.ErrPropertyNotFound
}

func newService(t *testing.T, repo *stubRepo) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	m := metrics.GetSiteMetrics(log)
	m.Reset()
	return New(log, repo, stubProperties{}, m)
}

func contactLead() domain.Lead {
	return domain.Lead{
		Source:       domain.LeadSourceContact,
		ContactName:  "Omar Haddad",
		ContactEmail: "omar@example.com",
		Message:      "Looking for a 2BR in the Marina",
	}
}

func TestCapture_EntersPipelineAsNew(t *testing.T) {
	repo := newStubRepo()
	svc := newService(t, repo)

	in := contactLead()
	in.Status = domain.LeadStatusClosed // must be ignored

	id, err := svc.Capture(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusNew, repo.leads[id].Status)
}

func TestCapture_Validation(t *testing.T) {
	svc := newService(t, newStubRepo())

	tests := []struct {
		name   string
		mutate func(*domain.Lead)
		want   error
	}{
		{"unknown source", func(l *domain.Lead) { l.Source = "TELEPATHY" }, ErrInvalidLead},
		{"missing name", func(l *domain.Lead) { l.ContactName = " " }, ErrInvalidLead},
		{"no contact channel", func(l *domain.Lead) { l.ContactEmail = ""; l.ContactPhone = "" }, ErrInvalidLead},
		{"bad email", func(l *domain.Lead) { l.ContactEmail = "nope" }, ErrInvalidLead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := contactLead()
			tt.mutate(&in)
			_, err := svc.Capture(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCapture_PhoneOnlyIsEnough(t *testing.T) {
	svc := newService(t, newStubRepo())

	in := contactLead()
	in.ContactEmail = ""
	in.ContactPhone = "+971501234567"

	_, err := svc.Capture(context.Background(), in)
	assert.NoError(t, err)
}

func TestCapture_ViewingNeedsRealProperty(t *testing.T) {
	svc := newService(t, newStubRepo())

	in := contactLead()
	in.Source = domain.LeadSourceViewing

	_, err := svc.Capture(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidLead)

	missing := int64(999)
	in.PropertyID = &missing
	_, err = svc.Capture(context.Background(), in)
	assert.ErrorIs(t, err, ErrUnknownProperty)

	known := int64(7)
	in.PropertyID = &known
	_, err = svc.Capture(context.Background(), in)
	assert.NoError(t, err)
}

func TestCapture_MatchmakerNeedsPreferences(t *testing.T) {
	repo := newStubRepo()
	svc := newService(t, repo)

	in := contactLead()
	in.Source = domain.LeadSourceMatchmaker

	_, err := svc.Capture(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidLead)

	in.Preferences = json.RawMessage(`{"budget":"2,000,000","lifestyle":["investment"]}`)
	id, err := svc.Capture(context.Background(), in)
	require.NoError(t, err)
	assert.JSONEq(t, string(in.Preferences), string(repo.leads[id].Preferences))
}

func TestUpdateStatus_Pipeline(t *testing.T) {
	fresh := contactLead()
	fresh.ID = uuid.New()
	fresh.Status = domain.LeadStatusNew

	repo := newStubRepo(fresh)
	svc := newService(t, repo)

	require.NoError(t, svc.UpdateStatus(context.Background(), fresh.ID, domain.LeadStatusContacted))
	require.NoError(t, svc.UpdateStatus(context.Background(), fresh.ID, domain.LeadStatusClosed))

	// Closed is terminal.
	err := svc.UpdateStatus(context.Background(), fresh.ID, domain.LeadStatusContacted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_JunkStraightToClosed(t *testing.T) {
	junk := contactLead()
	junk.ID = uuid.New()
	junk.Status = domain.LeadStatusNew

	svc := newService(t, newStubRepo(junk))
	assert.NoError(t, svc.UpdateStatus(context.Background(), junk.ID, domain.LeadStatusClosed))
}

func TestGetLead_NotFound(t *testing.T) {
	svc := newService(t, newStubRepo())

	_, err := svc.GetLead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
