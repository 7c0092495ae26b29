package user

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"property_hub/internal/domain"
	"property_hub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	byEmail map[string]domain.User
}

func newStubRepo() *stubRepo {
	return &stubRepo{byEmail: map[string]domain.User{}}
}

func (r *stubRepo) CreateUser(_ context.Context, u domain.User) (uuid.UUID, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return uuid.Nil, repository.ErrEmailTaken
	}
	u.ID = uuid.New()
	r.byEmail[u.Email] = u
	return u.ID, nil
}

func (r *stubRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *stubRepo) GetByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func newService(repo *stubRepo) *Service {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(log, repo, "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	id, err := svc.Register(context.Background(), "admin@example.com", "s3cret-pass", "Admin", domain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	// The stored hash must not be the raw password.
	stored := repo.byEmail["admin@example.com"]
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)

	token, err := svc.Login(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.Register(context.Background(), "not-an-email", "s3cret-pass", "X", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = svc.Register(context.Background(), "a@example.com", "short", "X", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = svc.Register(context.Background(), "a@example.com", "s3cret-pass", "X", "SUPERUSER")
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.Register(context.Background(), "dup@example.com", "s3cret-pass", "A", domain.RoleEditor)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "dup@example.com", "other-pass99", "B", domain.RoleEditor)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.Register(context.Background(), "admin@example.com", "s3cret-pass", "Admin", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts fail with the same error as wrong passwords.
	_, err = svc.Login(context.Background(), "ghost@example.com", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	repo := newStubRepo()
	issuer := newService(repo)

	_, err := issuer.Register(context.Background(), "admin@example.com", "s3cret-pass", "Admin", domain.RoleAdmin)
	require.NoError(t, err)
	token, err := issuer.Login(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	verifier := New(log, repo, "another-secret", time.Hour)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
