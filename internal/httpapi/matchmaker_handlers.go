package httpapi

import (
	"errors"
	"net/http"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/services/matchmaker"
)

type matchRequest struct {
	domain.PreferenceForm
	TopN int `json:"top_n"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	results, err := s.matchmaker.Match(r.Context(), req.PreferenceForm, req.TopN)
	if err != nil {
		if errors.Is(err, matchmaker.ErrNoLifestyle) {
			writeError(w, http.StatusBadRequest, "at least one lifestyle tag is required")
			return
		}
		s.log.Error("matchmaking failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches": toScoredResponses(results),
	})
}
