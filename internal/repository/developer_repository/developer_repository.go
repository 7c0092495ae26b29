package developer_repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"property_hub/internal/domain"
	"property_hub/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeveloperRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewDeveloperRepository(db *pgxpool.Pool, log *slog.Logger) *DeveloperRepository {
	return &DeveloperRepository{db: db, log: log}
}

// CreateDeveloper inserts a developer profile and returns its id.
func (r *DeveloperRepository) CreateDeveloper(ctx context.Context, dev domain.Developer) (int64, error) {
	const op = "DeveloperRepository.CreateDeveloper"

	query := `
		INSERT INTO developers (name, description, logo_url, established, flagship_projects)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING developer_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dev.Name,
		dev.Description,
		dev.LogoURL,
		dev.Established,
		dev.FlagshipProjects,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetByID fetches a developer profile by id.
func (r *DeveloperRepository) GetByID(ctx context.Context, id int64) (domain.Developer, error) {
	const op = "DeveloperRepository.GetByID"

	query := `
		SELECT developer_id, name, description, logo_url, established, flagship_projects,
			created_at, updated_at
		FROM developers
		WHERE developer_id = $1
	`

	var d domain.Developer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.LogoURL,
		&d.Established,
		&d.FlagshipProjects,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Developer{}, fmt.Errorf("%s: %w", op, repository.ErrDeveloperNotFound)
		}
		return domain.Developer{}, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

// ListDevelopers returns all developer profiles sorted by name. The roster is
// a handful of rows, so no pagination.
func (r *DeveloperRepository) ListDevelopers(ctx context.Context) ([]domain.Developer, error) {
	const op = "DeveloperRepository.ListDevelopers"

	query := `
		SELECT developer_id, name, description, logo_url, established, flagship_projects,
			created_at, updated_at
		FROM developers
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var devs []domain.Developer
	for rows.Next() {
		var d domain.Developer
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Description,
			&d.LogoURL,
			&d.Established,
			&d.FlagshipProjects,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}
		devs = append(devs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return devs, nil
}
