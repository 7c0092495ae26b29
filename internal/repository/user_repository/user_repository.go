package user_repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"property_hub/internal/domain"
	"property_hub/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewUserRepository(db *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// CreateUser stores a back-office account and returns its id.
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (uuid.UUID, error) {
	const op = "UserRepository.CreateUser"

	query := `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role.String(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, repository.ErrEmailTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetByEmail fetches an account by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const op = "UserRepository.GetByEmail"

	query := `
		SELECT user_id, email, password_hash, name, role, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var u domain.User
	var roleStr string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&roleStr,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, repository.ErrUserNotFound)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	u.Role = domain.UserRole(roleStr)
	return u, nil
}

// GetByID fetches an account by id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const op = "UserRepository.GetByID"

	query := `
		SELECT user_id, email, password_hash, name, role, created_at
		FROM users
		WHERE user_id = $1
	`

	var u domain.User
	var roleStr string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&roleStr,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, repository.ErrUserNotFound)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	u.Role = domain.UserRole(roleStr)
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
