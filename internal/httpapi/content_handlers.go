package httpapi

import (
	"errors"
	"net/http"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/services/developer"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type faqEntryResponse struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	entries := s.content.FAQ(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": s.content.FAQCategories(),
		"entries": lo.Map(entries, func(e domain.FAQEntry, _ int) faqEntryResponse {
			return faqEntryResponse{Category: e.Category, Question: e.Question, Answer: e.Answer}
		}),
		"jsonld": s.jsonld.GenerateFAQJSONLD(entries),
	})
}

type guideSectionResponse struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Steps []string `json:"steps,omitempty"`
}

func toGuideSectionResponse(g domain.GuideSection) guideSectionResponse {
	return guideSectionResponse{Slug: g.Slug, Title: g.Title, Body: g.Body, Steps: g.Steps}
}

func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lo.Map(s.content.Guide(),
		func(g domain.GuideSection, _ int) guideSectionResponse { return toGuideSectionResponse(g) }))
}

func (s *Server) handleGuideSection(w http.ResponseWriter, r *http.Request) {
	section, ok := s.content.GuideSection(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "guide section not found")
		return
	}
	writeJSON(w, http.StatusOK, toGuideSectionResponse(section))
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	posts := s.content.BlogPosts(r.Context(), queryInt(r, "limit", 0))
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (s *Server) handleListDevelopers(w http.ResponseWriter, r *http.Request) {
	devs, err := s.developers.ListDevelopers(r.Context())
	if err != nil {
		s.log.Error("list developers failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(devs,
		func(d domain.Developer, _ int) developerResponse { return toDeveloperResponse(d) }))
}

func (s *Server) handleGetDeveloper(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid developer id")
		return
	}
	dev, err := s.developers.GetDeveloper(r.Context(), id)
	if err != nil {
		if errors.Is(err, developer.ErrDeveloperNotFound) {
			writeError(w, http.StatusNotFound, "developer not found")
			return
		}
		s.log.Error("get developer failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"developer": toDeveloperResponse(dev),
		"jsonld":    s.jsonld.GenerateDeveloperJSONLD(dev, s.baseURL),
	})
}

type createDeveloperRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	LogoURL          string   `json:"logo_url"`
	Established      int32    `json:"established"`
	FlagshipProjects []string `json:"flagship_projects"`
}

func (s *Server) handleAdminCreateDeveloper(w http.ResponseWriter, r *http.Request) {
	var req createDeveloperRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := s.developers.CreateDeveloper(r.Context(), domain.Developer{
		Name:             req.Name,
		Description:      req.Description,
		LogoURL:          req.LogoURL,
		Established:      req.Established,
		FlagshipProjects: req.FlagshipProjects,
	})
	if err != nil {
		s.log.Error("create developer failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}
