package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/services/lead"
)

type captureLeadRequest struct {
	Source       string          `json:"source"`
	ContactName  string          `json:"contact_name"`
	ContactPhone string          `json:"contact_phone"`
	ContactEmail string          `json:"contact_email"`
	Message      string          `json:"message"`
	PropertyID   *int64          `json:"property_id"`
	Preferences  json.RawMessage `json:"preferences"`
}

func (s *Server) handleCaptureLead(w http.ResponseWriter, r *http.Request) {
	var req captureLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := s.leads.Capture(r.Context(), domain.Lead{
		Source:       domain.LeadSource(req.Source),
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Message:      req.Message,
		PropertyID:   req.PropertyID,
		Preferences:  req.Preferences,
	})
	if err != nil {
		s.respondLeadError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":     id,
		"status": domain.LeadStatusNew.String(),
	})
}

func (s *Server) handleAdminListLeads(w http.ResponseWriter, r *http.Request) {
	filter := domain.LeadFilter{
		PropertyID: queryInt64(r, "property_id"),
		Pagination: queryPagination(r),
	}
	if raw := r.URL.Query().Get("source"); raw != "" {
		src := domain.LeadSource(raw)
		filter.Source = &src
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := domain.LeadStatus(raw)
		filter.Status = &st
	}
	res, err := s.leads.ListLeads(r.Context(), filter)
	if err != nil {
		s.log.Error("list leads failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(res, toLeadResponse))
}

func (s *Server) handleAdminGetLead(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}
	l, err := s.leads.GetLead(r.Context(), id)
	if err != nil {
		s.respondLeadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeadResponse(l))
}

type updateLeadStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleAdminUpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}
	var req updateLeadStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.leads.UpdateStatus(r.Context(), id, domain.LeadStatus(req.Status)); err != nil {
		s.respondLeadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (s *Server) respondLeadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lead.ErrLeadNotFound):
		writeError(w, http.StatusNotFound, "lead not found")
	case errors.Is(err, lead.ErrInvalidLead),
		errors.Is(err, lead.ErrUnknownProperty),
		errors.Is(err, lead.ErrInvalidTransition):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("lead operation failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
