package lead_repository

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

type LeadRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewLeadRepository(db *pgxpool.Pool, log *slog.Logger) *LeadRepository {
	return &LeadRepository{db: db, log: log}
}

// CreateLead stores a captured enquiry and returns its id.
func (r *LeadRepository) CreateLead(ctx context.Context, lead domain.Lead) (uuid.UUID, error) {
	const op = "LeadRepository.CreateLead"

	query := `
		INSERT INTO leads (
			source, contact_name, contact_phone, contact_email,
			message, property_id, preferences, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING lead_id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		lead.Source.String(),
		lead.ContactName,
		lead.ContactPhone,
		lead.ContactEmail,
		lead.Message,
		lead.PropertyID,
		lead.Preferences,
		lead.Status.String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetByID fetches a lead by id.
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	const op = "LeadRepository.GetByID"

	query := `
		SELECT
			lead_id, source, contact_name, contact_phone, contact_email,
			message, property_id, preferences, status,
			created_at, updated_at
		FROM leads
		WHERE lead_id = $1
	`

	var l domain.Lead
	var sourceStr, statusStr string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&sourceStr,
		&l.ContactName,
		&l.ContactPhone,
		&l.ContactEmail,
		&l.Message,
		&l.PropertyID,
		&l.Preferences,
		&statusStr,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lead{}, fmt.Errorf("%s: %w", op, repository.ErrLeadNotFound)
		}
		return domain.Lead{}, fmt.Errorf("%s: %w", op, err)
	}

	l.Source = domain.LeadSource(sourceStr)
	l.Status = domain.LeadStatus(statusStr)

	return l, nil
}

// UpdateStatus moves a lead through the follow-up pipeline.
func (r *LeadRepository) UpdateStatus(ctx context.Context, leadID uuid.UUID, status domain.LeadStatus) error {
	const op = "LeadRepository.UpdateStatus"

	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE lead_id = $2`

	tag, err := r.db.Exec(ctx, query, status.String(), leadID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrLeadNotFound)
	}

	return nil
}

// ListLeads returns leads by filter with cursor pagination.
func (r *LeadRepository) ListLeads(ctx context.Context, filter domain.LeadFilter) (*domain.PaginatedResult[domain.Lead], error) {
	const op = "LeadRepository.ListLeads"

	pageSize := int(domain.DefaultPageSize)
	var cursor *domain.PageCursor
	orderBy := "created_at"
	orderDir := domain.OrderDesc

	if filter.Pagination != nil {
		pageSize = int(domain.NormalizePageSize(filter.Pagination.PageSize))
		orderDir = domain.NormalizeOrderDirection(string(filter.Pagination.OrderDirection))

		switch filter.Pagination.OrderBy {
		case "created_at", "updated_at":
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

	if filter.Source != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("source = $%d", paramCount))
		baseParams = append(baseParams, (*filter.Source).String())
		paramCount++
	}
	if filter.Status != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("status = $%d", paramCount))
		baseParams = append(baseParams, (*filter.Status).String())
		paramCount++
	}
	if filter.PropertyID != nil {
		baseWhereClauses = append(baseWhereClauses, fmt.Sprintf("property_id = $%d", paramCount))
		baseParams = append(baseParams, *filter.PropertyID)
		paramCount++
	}

	countQuery := "SELECT COUNT(*) FROM leads"
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
		// Keyset pagination on (order column, lead_id).
		if orderDir == domain.OrderDesc {
			whereClauses = append(whereClauses,
				fmt.Sprintf("(%s, lead_id) < ($%d, $%d)", orderBy, paramCount, paramCount+1))
		} else {
			whereClauses = append(whereClauses,
				fmt.Sprintf("(%s, lead_id) > ($%d, $%d)", orderBy, paramCount, paramCount+1))
		}
		params = append(params, cursor.LastCreatedAt, cursor.LastUID)
		paramCount += 2
	}

	query := `
		SELECT
			lead_id, source, contact_name, contact_phone, contact_email,
			message, property_id, preferences, status,
			created_at, updated_at
		FROM leads
	`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	dirStr := "DESC"
	if orderDir == domain.OrderAsc {
		dirStr = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, lead_id %s", orderBy, dirStr, dirStr)

	// LIMIT +1 to detect has_more.
	query += fmt.Sprintf(" LIMIT $%d", paramCount)
	params = append(params, pageSize+1)

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var l domain.Lead
		var sourceStr, statusStr string
		if err := rows.Scan(
			&l.ID,
			&sourceStr,
			&l.ContactName,
			&l.ContactPhone,
			&l.ContactEmail,
			&l.Message,
			&l.PropertyID,
			&l.Preferences,
			&statusStr,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}
		l.Source = domain.LeadSource(sourceStr)
		l.Status = domain.LeadStatus(statusStr)
		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	hasMore := len(leads) > pageSize
	if hasMore {
		leads = leads[:pageSize]
	}

	var nextPageToken string
	if hasMore && len(leads) > 0 {
		lastLead := leads[len(leads)-1]
		nextCursor := &domain.PageCursor{
			LastUID:       lastLead.ID,
			LastCreatedAt: lastLead.CreatedAt,
		}
		nextPageToken = nextCursor.Encode()
	}

	return &domain.PaginatedResult[domain.Lead]{
		Items:         leads,
		NextPageToken: nextPageToken,
		TotalCount:    totalCount,
		HasMore:       hasMore,
	}, nil
}
