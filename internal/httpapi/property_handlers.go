package httpapi

import (
	"net/http"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"

	"github.com/samber/lo"
)

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	filter := domain.PropertyFilter{
		LocationID:  queryInt64(r, "location_id"),
		DeveloperID: queryInt64(r, "developer_id"),
		MinPrice:    queryInt64(r, "min_price"),
		MaxPrice:    queryInt64(r, "max_price"),
		MinBeds:     queryInt32(r, "min_beds"),
		MaxBeds:     queryInt32(r, "max_beds"),
		Premium:     queryBool(r, "premium"),
		Exclusive:   queryBool(r, "exclusive"),
		NewLaunch:   queryBool(r, "new_launch"),
		Pagination:  queryPagination(r),
	}
	if raw := r.URL.Query().Get("property_type"); raw != "" {
		pt := domain.PropertyType(raw)
		filter.PropertyType = &pt
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := domain.PropertyStatus(raw)
		filter.Status = &st
	}

	res, err := s.properties.ListProperties(r.Context(), filter)
	if err != nil {
		s.log.Error("list properties failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(res, toPropertyResponse))
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	p, err := s.properties.GetProperty(r.Context(), id)
	if err != nil {
		s.respondPropertyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponse(p))
}

type featuredResponse struct {
	Premium     []propertyResponse `json:"premium"`
	Exclusive   []propertyResponse `json:"exclusive"`
	NewLaunches []propertyResponse `json:"new_launches"`
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	sel, err := s.properties.Featured(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		s.log.Error("featured selection failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	conv := func(p domain.Property, _ int) propertyResponse { return toPropertyResponse(p) }
	writeJSON(w, http.StatusOK, featuredResponse{
		Premium:     lo.Map(sel.Premium, conv),
		Exclusive:   lo.Map(sel.Exclusive, conv),
		NewLaunches: lo.Map(sel.NewLaunches, conv),
	})
}

func (s *Server) handleGoldenVisa(w http.ResponseWriter, r *http.Request) {
	items, err := s.properties.GoldenVisaEligible(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		s.log.Error("golden visa selection failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"threshold": domain.GoldenVisaMinPrice,
		"items": lo.Map(items, func(p domain.Property, _ int) propertyResponse {
			return toPropertyResponse(p)
		}),
	})
}

func (s *Server) handleGoldenVisaEligibility(w http.ResponseWriter, r *http.Request) {
	price := queryInt64(r, "price")
	if price == nil {
		writeError(w, http.StatusBadRequest, "price query parameter is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"price":     *price,
		"threshold": domain.GoldenVisaMinPrice,
		"eligible":  domain.GoldenVisaEligible(*price),
	})
}

func (s *Server) handlePropertyJSONLD(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	p, err := s.properties.GetProperty(r.Context(), id)
	if err != nil {
		s.respondPropertyError(w, err)
		return
	}
	loc, err := s.properties.GetLocation(p.LocationID)
	if err != nil {
		loc = domain.Location{City: "Dubai"}
	}
	writeJSON(w, http.StatusOK, s.jsonld.GeneratePropertyJSONLD(p, loc, s.baseURL))
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lo.Map(s.properties.Locations(),
		func(l domain.Location, _ int) locationResponse { return toLocationResponse(l) }))
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid location id")
		return
	}
	loc, err := s.properties.GetLocation(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}
	writeJSON(w, http.StatusOK, toLocationResponse(loc))
}
