package listing_repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"property_hub/internal/domain"
	"property_hub/internal/repository"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewListingRepository(db *pgxpool.Pool, log *slog.Logger) *ListingRepository {
	return &ListingRepository{db: db, log: log}
}

const listingColumns = `
	listing_id, title, description, price, property_type, beds,
	location_id, amenities, photo_keys,
	contact_name, contact_phone, contact_email,
	status, rejection_reason, published_property_id,
	created_at, updated_at
`

// CreateListing stores an owner submission and returns its id.
func (r *ListingRepository) CreateListing(ctx context.Context, listing domain.Listing) (uuid.UUID, error) {
	const op = "ListingRepository.CreateListing"

	query := `
		INSERT INTO listings (
			title, description, price, property_type, beds,
			location_id, amenities, photo_keys,
			contact_name, contact_phone, contact_email,
			status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING listing_id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		listing.Title,
		listing.Description,
		listing.Price,
		listing.PropertyType.String(),
		listing.Beds,
		listing.LocationID,
		listing.Amenities,
		listing.PhotoKeys,
		listing.ContactName,
		listing.ContactPhone,
		listing.ContactEmail,
		listing.Status.String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetByID fetches a listing by id.
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	const op = "ListingRepository.GetByID"

	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`

	l, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, fmt.Errorf("%s: %w", op, repository.ErrListingNotFound)
		}
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

// SetReviewOutcome records an admin decision. The WHERE clause enforces the
// state machine at the database level: only a pending listing can be decided.
func (r *ListingRepository) SetReviewOutcome(ctx context.Context, listingID uuid.UUID, status domain.ListingStatus, rejectionReason string, publishedPropertyID *int64) error {
	const op = "ListingRepository.SetReviewOutcome"

	query := `
		UPDATE listings
		SET status = $1, rejection_reason = $2, published_property_id = $3, updated_at = NOW()
		WHERE listing_id = $4 AND status = $5
	`

	tag, err := r.db.Exec(ctx, query,
		status.String(),
		rejectionReason,
		publishedPropertyID,
		listingID,
		domain.ListingStatusPending.String(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrListingNotFound)
	}

	return nil
}

// DeleteListing removes a submission.
func (r *ListingRepository) DeleteListing(ctx context.Context, listingID uuid.UUID) error {
	const op = "ListingRepository.DeleteListing"

	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE listing_id = $1`, listingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrListingNotFound)
	}

	return nil
}

// ListListings returns submissions by filter with cursor pagination.
func (r *ListingRepository) ListListings(ctx context.Context, filter domain.ListingFilter) (*domain.PaginatedResult[domain.Listing], error) {
	const op = "ListingRepository.ListListings"

	pageSize := int(domain.DefaultPageSize)
	var cursor *domain.PageCursor
	orderBy := "created_at"
	orderDir := domain.OrderDesc

	if filter.Pagination != nil {
		pageSize = int(domain.NormalizePageSize(filter.Pagination.PageSize))
		orderDir = domain.NormalizeOrderDirection(string(filter.Pagination.OrderDirection))

		switch filter.Pagination.OrderBy {
		case "created_at", "updated_at", "price":
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

	baseWhereClauses := []string{}
	baseParams := []interface{}{}
	paramCount := 1

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

	countQuery := "SELECT COUNT(*) FROM listings"
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
				fmt.Sprintf("(%s, listing_id) < ($%d, $%d)", orderBy, paramCount, paramCount+1))
		} else {
			whereClauses = append(whereClauses,
				fmt.Sprintf("(%s, listing_id) > ($%d, $%d)", orderBy, paramCount, paramCount+1))
		}
		params = append(params, cursor.LastCreatedAt, cursor.LastUID)
		paramCount += 2
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	dirStr := "DESC"
	if orderDir == domain.OrderAsc {
		dirStr = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, listing_id %s", orderBy, dirStr, dirStr)

	// LIMIT +1 to detect has_more.
	query += fmt.Sprintf(" LIMIT $%d", paramCount)
	params = append(params, pageSize+1)

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	hasMore := len(listings) > pageSize
	if hasMore {
		listings = listings[:pageSize]
	}

	var nextPageToken string
	if hasMore && len(listings) > 0 {
		last := listings[len(listings)-1]
		nextCursor := &domain.PageCursor{
			LastUID:       last.ID,
			LastCreatedAt: last.CreatedAt,
		}
		nextPageToken = nextCursor.Encode()
	}

	return &domain.PaginatedResult[domain.Listing]{
		Items:         listings,
		NextPageToken: nextPageToken,
		TotalCount:    totalCount,
		HasMore:       hasMore,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (domain.Listing, error) {
	var l domain.Listing
	var propertyTypeStr string
	var statusStr string
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.Price,
		&propertyTypeStr,
		&l.Beds,
		&l.LocationID,
		&l.Amenities,
		&l.PhotoKeys,
		&l.ContactName,
		&l.ContactPhone,
		&l.ContactEmail,
		&statusStr,
		&l.RejectionReason,
		&l.PublishedPropertyID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}
	l.PropertyType = domain.PropertyType(propertyTypeStr)
	l.Status = domain.ListingStatus(statusStr)
	return l, nil
}
