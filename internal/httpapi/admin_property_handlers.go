package httpapi

import (
	"errors"
	"net/http"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/services/property"
)

type propertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"`
	PropertyType string   `json:"property_type"`
	Beds         int32    `json:"beds"`
	LocationID   int64    `json:"location_id"`
	DeveloperID  int64    `json:"developer_id"`
	Premium      bool     `json:"premium"`
	Exclusive    bool     `json:"exclusive"`
	NewLaunch    bool     `json:"new_launch"`
	Status       string   `json:"status"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
}

func (s *Server) handleAdminCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := s.properties.CreateProperty(r.Context(), domain.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		PropertyType: domain.PropertyType(req.PropertyType),
		Beds:         req.Beds,
		LocationID:   req.LocationID,
		DeveloperID:  req.DeveloperID,
		Premium:      req.Premium,
		Exclusive:    req.Exclusive,
		NewLaunch:    req.NewLaunch,
		Status:       domain.PropertyStatus(req.Status),
		Amenities:    req.Amenities,
		Images:       req.Images,
	})
	if err != nil {
		s.respondPropertyError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type propertyUpdateRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *int64   `json:"price"`
	PropertyType *string  `json:"property_type"`
	Beds         *int32   `json:"beds"`
	LocationID   *int64   `json:"location_id"`
	DeveloperID  *int64   `json:"developer_id"`
	Premium      *bool    `json:"premium"`
	Exclusive    *bool    `json:"exclusive"`
	NewLaunch    *bool    `json:"new_launch"`
	Status       *string  `json:"status"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
}

func (s *Server) handleAdminUpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	var req propertyUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	update := domain.PropertyUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Beds:        req.Beds,
		LocationID:  req.LocationID,
		DeveloperID: req.DeveloperID,
		Premium:     req.Premium,
		Exclusive:   req.Exclusive,
		NewLaunch:   req.NewLaunch,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}
	if req.PropertyType != nil {
		pt := domain.PropertyType(*req.PropertyType)
		update.PropertyType = &pt
	}
	if req.Status != nil {
		st := domain.PropertyStatus(*req.Status)
		update.Status = &st
	}

	updated, err := s.properties.UpdateProperty(r.Context(), id, update)
	if err != nil {
		s.respondPropertyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPropertyResponse(updated))
}

func (s *Server) handleAdminDeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	if err := s.properties.DeleteProperty(r.Context(), id); err != nil {
		s.respondPropertyError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) respondPropertyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, property.ErrPropertyNotFound):
		writeError(w, http.StatusNotFound, "property not found")
	case errors.Is(err, property.ErrUnknownLocation):
		writeError(w, http.StatusBadRequest, "unknown location")
	default:
		s.log.Error("property operation failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
