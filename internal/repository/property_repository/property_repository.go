package property_repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"property_hub/internal/domain"
	"property_hub/internal/repository"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewPropertyRepository(db *pgxpool.Pool, log *slog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, log: log}
}

const propertyColumns = `
	property_id, title, description, price, property_type, beds,
	location_id, developer_id,
	premium, exclusive, new_launch,
	status, amenities, images,
	created_at, updated_at
`

// CreateProperty inserts a catalog record and returns its id.
func (r *PropertyRepository) CreateProperty(ctx context.Context, property domain.Property) (int64, error) {
	const op = "PropertyRepository.CreateProperty"

	query := `
		INSERT INTO properties (
			title, description, price, property_type, beds,
			location_id, developer_id,
			premium, exclusive, new_launch,
			status, amenities, images
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING property_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		property.Title,
		property.Description,
		property.Price,
		property.PropertyType.String(),
		property.Beds,
		property.LocationID,
		property.DeveloperID,
		property.Premium,
		property.Exclusive,
		property.NewLaunch,
		property.Status.String(),
		property.Amenities,
		property.Images,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetByID fetches a catalog record by id.
func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (domain.Property, error) {
	const op = "PropertyRepository.GetByID"

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1`

	p, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, fmt.Errorf("%s: %w", op, repository.ErrPropertyNotFound)
		}
		return domain.Property{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// UpdateProperty applies a partial update to a catalog record.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, propertyID int64, update domain.PropertyUpdate) error {
	const op = "PropertyRepository.UpdateProperty"

	setClauses := []string{}
	params := []interface{}{}
	paramCount := 1

	if update.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", paramCount))
		params = append(params, *update.Title)
		paramCount++
	}
	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", paramCount))
		params = append(params, *update.Description)
		paramCount++
	}
	if update.Price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", paramCount))
		params = append(params, *update.Price)
		paramCount++
	}
	if update.PropertyType != nil {
		setClauses = append(setClauses, fmt.Sprintf("property_type = $%d", paramCount))
		params = append(params, (*update.PropertyType).String())
		paramCount++
	}
	if update.Beds != nil {
		setClauses = append(setClauses, fmt.Sprintf("beds = $%d", paramCount))
		params = append(params, *update.Beds)
		paramCount++
	}
	if update.LocationID != nil {
		setClauses = append(setClauses, fmt.Sprintf("location_id = $%d", paramCount))
		params = append(params, *update.LocationID)
		paramCount++
	}
	if update.DeveloperID != nil {
		setClauses = append(setClauses, fmt.Sprintf("developer_id = $%d", paramCount))
		params = append(params, *update.DeveloperID)
		paramCount++
	}
	if update.Premium != nil {
		setClauses = append(setClauses, fmt.Sprintf("premium = $%d", paramCount))
		params = append(params, *update.Premium)
		paramCount++
	}
	if update.Exclusive != nil {
		setClauses = append(setClauses, fmt.Sprintf("exclusive = $%d", paramCount))
		params = append(params, *update.Exclusive)
		paramCount++
	}
	if update.NewLaunch != nil {
		setClauses = append(setClauses, fmt.Sprintf("new_launch = $%d", paramCount))
		params = append(params, *update.NewLaunch)
		paramCount++
	}
	if update.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", paramCount))
		params = append(params, (*update.Status).String())
		paramCount++
	}
	if update.Amenities != nil {
		setClauses = append(setClauses, fmt.Sprintf("amenities = $%d", paramCount))
		params = append(params, update.Amenities)
		paramCount++
	}
	if update.Images != nil {
		setClauses = append(setClauses, fmt.Sprintf("images = $%d", paramCount))
		params = append(params, update.Images)
		paramCount++
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNoFieldsToUpdate)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE properties SET %s WHERE property_id = $%d`, strings.Join(setClauses, ", "), paramCount)
	params = append(params, propertyID)

	tag, err := r.db.Exec(ctx, query, params...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrPropertyNotFound)
	}

	return nil
}

// DeleteProperty removes a catalog record.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, propertyID int64) error {
	const op = "PropertyRepository.DeleteProperty"

	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE property_id = $1`, propertyID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrPropertyNotFound)
	}

	return nil
}

// AllProperties returns the full catalog in insertion order. The matchmaker
// scores the whole catalog on every request, so this is deliberately not
// paginated.
func (r *PropertyRepository) AllProperties(ctx context.Context) ([]domain.Property, error) {
	const op = "PropertyRepository.AllProperties"

	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY property_id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return properties, nil
}

// ListProperties returns catalog records by filter with cursor pagination.
func (r *PropertyRepository) ListProperties(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult[domain.Property], error) {
	const op = "PropertyRepository.ListProperties"

	pageSize := int(domain.DefaultPageSize)
	var cursor *domain.PageCursor
	orderBy := "created_at"
	orderDir := domain.OrderDesc

	if filter.Pagination != nil {
		pageSize = int(domain.NormalizePageSize(filter.Pagination.PageSize))
		orderDir = domain.NormalizeOrderDirection(string(filter.Pagination.OrderDirection))

		switch filter.Pagination.OrderBy {
		case "created_at", "updated_at", "title", "price":
			orderBy = filter.Pagination.OrderBy
		}

		if filter.Pagination.PageToken != "" {
			var err error
			cursor, err = domain.DecodePageCursor(filter.Pagination.PageToken)
			if err != nil {
				r.log.Warn("failed to decode page cursor, starting from beginning", "error", err)
				cursor = nil
			}
		}
	}

	// Base WHERE conditions (without the cursor).
	baseWhereClauses := []string{}
	baseParams := []interface{}{}
	paramCount := 1

	if filter.PropertyType != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("property_type = $%d", paramCount))
		baseParams = append(baseParams, (*filter.PropertyType).String())
		paramCount++
	}
	if filter.Status != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("status = $%d", paramCount))
		baseParams = append(baseParams, (*filter.Status).String())
		paramCount++
	}
	if filter.LocationID != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("location_id = $%d", paramCount))
		baseParams = append(baseParams, *filter.LocationID)
		paramCount++
	}
	if filter.DeveloperID != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("developer_id = $%d", paramCount))
		baseParams = append(baseParams, *filter.DeveloperID)
		paramCount++
	}
	if filter.MinPrice != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("price >= $%d", paramCount))
		baseParams = append(baseParams, *filter.MinPrice)
		paramCount++
	}
	if filter.MaxPrice != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("price <= $%d", paramCount))
		baseParams = append(baseParams, *filter.MaxPrice)
		paramCount++
	}
	if filter.MinBeds != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("beds >= $%d", paramCount))
		baseParams = append(baseParams, *filter.MinBeds)
		paramCount++
	}
	if filter.MaxBeds != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("beds <= $%d", paramCount))
		baseParams = append(baseParams, *filter.MaxBeds)
		paramCount++
	}
	if filter.Premium != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("premium = $%d", paramCount))
		baseParams = append(baseParams, *filter.Premium)
		paramCount++
	}
	if filter.Exclusive != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("exclusive = $%d", paramCount))
		baseParams = append(baseParams, *filter.Exclusive)
		paramCount++
	}
	if filter.NewLaunch != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("new_launch = $%d", paramCount))
		baseParams = append(baseParams, *filter.NewLaunch)
		paramCount++
	}

	countQuery := "SELECT COUNT(*) FROM properties"
	if len(baseWhereClauses) > 0 {
		countQuery += " WHERE " + strings.Join(baseWhereClauses, " AND ")
	}

	var totalCount int32
	err := r.db.QueryRow(ctx, countQuery, baseParams...).Scan(&totalCount)
	if err != nil {
		return nil, fmt.Errorf("%s: count failed: %w", op, err)
	}

	whereClauses := append([]string{}, baseWhereClauses...)
	params := append([]interface{}{}, baseParams...)

	if cursor != nil {
		if orderDir == domain.OrderDesc {
			whereClauses = append(whereClauses,
				fmt.Sprintf("(%s, property_id) < ($%d, $%d)", orderBy, paramCount, paramCount+1))
		} else {
			whereClauses = append(whereClauses,
				fmt.Sprintf("(%s, property_id) > ($%d, $%d)", orderBy, paramCount, paramCount+1))
		}
		params = append(params, cursor.LastCreatedAt, cursor.LastID)
		paramCount += 2
	}

	query := `SELECT ` + propertyColumns + ` FROM properties`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	dirStr := "DESC"
	if orderDir == domain.OrderAsc {
		dirStr = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, property_id %s", orderBy, dirStr, dirStr)

	// LIMIT +1 to detect has_more.
	query += fmt.Sprintf(" LIMIT $%d", paramCount)
	params = append(params, pageSize+1)

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	hasMore := len(properties) > pageSize
	if hasMore {
		properties = properties[:pageSize]
	}

	var nextPageToken string
	if hasMore && len(properties) > 0 {
		lastProp := properties[len(properties)-1]
		nextCursor := &domain.PageCursor{
			LastID:        lastProp.ID,
			LastCreatedAt: lastProp.CreatedAt,
		}
		nextPageToken = nextCursor.Encode()
	}

	return &domain.PaginatedResult[domain.Property]{
		Items:         properties,
		NextPageToken: nextPageToken,
		TotalCount:    totalCount,
		HasMore:       hasMore,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	var propertyTypeStr string
	var statusStr string
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&propertyTypeStr,
		&p.Beds,
		&p.LocationID,
		&p.DeveloperID,
		&p.Premium,
		&p.Exclusive,
		&p.NewLaunch,
		&statusStr,
		&p.Amenities,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.PropertyType = domain.PropertyType(propertyTypeStr)
	p.Status = domain.PropertyStatus(statusStr)
	return p, nil
}
