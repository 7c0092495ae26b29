package domain

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultPageSize records per page when the caller does not ask for one
	DefaultPageSize = 20
	// MaxPageSize upper bound on records per page
	MaxPageSize = 100
)

// OrderDirection sort direction
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// PaginationParams pagination parameters for a list request
type PaginationParams struct {
	PageSize       int32
	PageToken      string // cursor for cursor-based pagination
	OrderBy        string
	OrderDirection OrderDirection
}

// PageCursor cursor for cursor-based pagination. Catalog tables key on int64
// ids, intake tables on uuids; each repository fills the field it keys on.
type PageCursor struct {
	LastID        int64     `json:"id,omitempty"`
	LastUID       uuid.UUID `json:"uid,omitempty"`
	LastCreatedAt time.Time `json:"ca"`
}

// Encode encodes the cursor as a base64 string
func (c *PageCursor) Encode() string {
	if c == nil {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(data)
}

// DecodePageCursor decodes a cursor from a base64 string
func DecodePageCursor(token string) (*PageCursor, error) {
	if token == "" {
		return nil, nil
	}
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var cursor PageCursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, err
	}
	return &cursor, nil
}

// PaginatedResult result of a paginated query
type PaginatedResult[T any] struct {
	Items         []T
	NextPageToken string
	TotalCount    int32
	HasMore       bool
}

// NormalizePageSize clamps the page size into the allowed range
func NormalizePageSize(size int32) int32 {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// NormalizeOrderDirection normalizes the sort direction
func NormalizeOrderDirection(dir string) OrderDirection {
	if dir == "asc" || dir == "ASC" {
		return OrderAsc
	}
	return OrderDesc
}

// Clamp bounds v into [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
