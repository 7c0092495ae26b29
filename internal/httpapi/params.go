package httpapi

import (
	"net/http"
	"strconv"

	"property_hub/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func uuidParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func queryInt64(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt32(r *http.Request, name string) *int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	out := int32(v)
	return &out
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func queryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryPagination reads the shared cursor-pagination query parameters.
func queryPagination(r *http.Request) *domain.PaginationParams {
	q := r.URL.Query()
	var size int32
	if v := queryInt32(r, "page_size"); v != nil {
		size = *v
	}
	return &domain.PaginationParams{
		PageSize:       size,
		PageToken:      q.Get("page_token"),
		OrderBy:        q.Get("order_by"),
		OrderDirection: domain.NormalizeOrderDirection(q.Get("order_dir")),
	}
}
