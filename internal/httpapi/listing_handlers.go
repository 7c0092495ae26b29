package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/lib/photos"
	"property_hub/internal/services/listing"
)

type submitListingRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"`
	PropertyType string   `json:"property_type"`
	Beds         int32    `json:"beds"`
	LocationID   int64    `json:"location_id"`
	Amenities    []string `json:"amenities"`
	PhotoKeys    []string `json:"photo_keys"`
	ContactName  string   `json:"contact_name"`
	ContactPhone string   `json:"contact_phone"`
	ContactEmail string   `json:"contact_email"`
}

func (s *Server) handleSubmitListing(w http.ResponseWriter, r *http.Request) {
	var req submitListingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := s.listings.Submit(r.Context(), domain.Listing{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		PropertyType: domain.PropertyType(req.PropertyType),
		Beds:         req.Beds,
		LocationID:   req.LocationID,
		Amenities:    req.Amenities,
		PhotoKeys:    req.PhotoKeys,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		s.respondListingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":     id,
		"status": domain.ListingStatusPending.String(),
	})
}

// maxPhotoSize caps a single uploaded photo at 10 MiB.
const maxPhotoSize = 10 << 20

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	if !s.photos.IsEnabled() {
		writeError(w, http.StatusServiceUnavailable, "photo storage is not configured")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "only image uploads are accepted")
		return
	}

	key, err := s.photos.UploadPhoto(r.Context(), file, header.Size, contentType)
	if err != nil {
		if errors.Is(err, photos.ErrStorageDisabled) {
			writeError(w, http.StatusServiceUnavailable, "photo storage is not configured")
			return
		}
		s.log.Error("photo upload failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	url, err := s.photos.PhotoURL(r.Context(), key)
	if err != nil {
		s.log.Warn("photo url generation failed", sl.Err(err))
	}
	writeJSON(w, http.StatusCreated, map[string]string{"key": key, "url": url})
}

func (s *Server) handleAdminListListings(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListingFilter{
		LocationID: queryInt64(r, "location_id"),
		Pagination: queryPagination(r),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := domain.ListingStatus(raw)
		filter.Status = &st
	}
	res, err := s.listings.ListListings(r.Context(), filter)
	if err != nil {
		s.log.Error("list listings failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(res, toListingResponse))
}

func (s *Server) handleAdminGetListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid listing id")
		return
	}
	l, err := s.listings.GetListing(r.Context(), id)
	if err != nil {
		s.respondListingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

type reviewListingRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (s *Server) handleAdminReviewListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid listing id")
		return
	}
	var req reviewListingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if claims, ok := claimsFromContext(r.Context()); ok {
		s.log.Info("listing review",
			slog.String("listing_id", id.String()),
			slog.String("reviewer", claims.Email),
			slog.String("decision", req.Status),
		)
	}

	switch domain.ListingStatus(req.Status) {
	case domain.ListingStatusApproved:
		propertyID, err := s.listings.Approve(r.Context(), id)
		if err != nil {
			s.respondListingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      domain.ListingStatusApproved.String(),
			"property_id": propertyID,
		})
	case domain.ListingStatusRejected:
		if err := s.listings.Reject(r.Context(), id, req.Reason); err != nil {
			s.respondListingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": domain.ListingStatusRejected.String(),
		})
	default:
		writeError(w, http.StatusBadRequest, "status must be APPROVED or REJECTED")
	}
}

func (s *Server) handleAdminDeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid listing id")
		return
	}
	if err := s.listings.DeleteListing(r.Context(), id); err != nil {
		s.respondListingError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) respondListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrListingNotFound):
		writeError(w, http.StatusNotFound, "listing not found")
	case errors.Is(err, listing.ErrAlreadyReviewed):
		writeError(w, http.StatusConflict, "listing already reviewed")
	case errors.Is(err, listing.ErrReasonRequired),
		errors.Is(err, listing.ErrInvalidListing),
		errors.Is(err, listing.ErrUnknownLocation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("listing operation failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
