package httpapi

import (
	"log/slog"
	"net/http"

	"property_hub/internal/lib/jsonld"
	"property_hub/internal/lib/metrics"
	"property_hub/internal/lib/photos"
	"property_hub/internal/services/content"
	"property_hub/internal/services/developer"
	"property_hub/internal/services/lead"
	"property_hub/internal/services/listing"
	"property_hub/internal/services/matchmaker"
	"property_hub/internal/services/property"
	"property_hub/internal/services/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Server holds the HTTP surface: public site endpoints and the admin
// back office.
type Server struct {
	log         *slog.Logger
	properties  *property.Service
	matchmaker  *matchmaker.Service
	listings    *listing.Service
	leads       *lead.Service
	developers  *developer.Service
	content     *content.Service
	users       *user.Service
	photos      photos.Store
	jsonld      *jsonld.Generator
	metrics     *metrics.SiteMetrics
	baseURL     string
	disableAuth bool
}

type Deps struct {
	Log         *slog.Logger
	Properties  *property.Service
	Matchmaker  *matchmaker.Service
	Listings    *listing.Service
	Leads       *lead.Service
	Developers  *developer.Service
	Content     *content.Service
	Users       *user.Service
	Photos      photos.Store
	Metrics     *metrics.SiteMetrics
	BaseURL     string
	DisableAuth bool
}

func NewServer(deps Deps) *Server {
	return &Server{
		log:         deps.Log,
		properties:  deps.Properties,
		matchmaker:  deps.Matchmaker,
		listings:    deps.Listings,
		leads:       deps.Leads,
		developers:  deps.Developers,
		content:     deps.Content,
		users:       deps.Users,
		photos:      deps.Photos,
		jsonld:      jsonld.NewGenerator(),
		metrics:     deps.Metrics,
		baseURL:     deps.BaseURL,
		disableAuth: deps.DisableAuth,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	r.Get("/health", s.handleHealth)
	r.Mount("/swagger", swaggerHandler())

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog
		r.Get("/properties", s.handleListProperties)
		r.Get("/properties/featured", s.handleFeatured)
		r.Get("/properties/golden-visa", s.handleGoldenVisa)
		r.Get("/properties/{id}", s.handleGetProperty)
		r.Get("/properties/{id}/jsonld", s.handlePropertyJSONLD)
		r.Get("/locations", s.handleListLocations)
		r.Get("/locations/{id}", s.handleGetLocation)
		r.Get("/developers", s.handleListDevelopers)
		r.Get("/developers/{id}", s.handleGetDeveloper)

		// Matchmaker
		r.Post("/matchmaker", s.handleMatch)

		// Calculators
		r.Post("/calculators/mortgage", s.handleMortgage)
		r.Post("/calculators/roi", s.handleROI)
		r.Post("/calculators/service-charge", s.handleServiceCharge)
		r.Post("/calculators/price-prediction", s.handlePrediction)
		r.Get("/golden-visa/eligibility", s.handleGoldenVisaEligibility)

		// Intake
		r.Post("/leads", s.handleCaptureLead)
		r.Post("/listings", s.handleSubmitListing)
		r.Post("/listings/photos", s.handleUploadPhoto)

		// Content
		r.Get("/content/faq", s.handleFAQ)
		r.Get("/content/legal-guide", s.handleGuide)
		r.Get("/content/legal-guide/{slug}", s.handleGuideSection)
		r.Get("/content/blog", s.handleBlog)

		// Auth
		r.Post("/auth/login", s.handleLogin)

		// Back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly(s.users, s.disableAuth))

			r.Get("/listings", s.handleAdminListListings)
			r.Get("/listings/{id}", s.handleAdminGetListing)
			r.Patch("/listings/{id}/status", s.handleAdminReviewListing)
			r.Delete("/listings/{id}", s.handleAdminDeleteListing)

			r.Get("/leads", s.handleAdminListLeads)
			r.Get("/leads/{id}", s.handleAdminGetLead)
			r.Patch("/leads/{id}/status", s.handleAdminUpdateLeadStatus)

			r.Post("/properties", s.handleAdminCreateProperty)
			r.Patch("/properties/{id}", s.handleAdminUpdateProperty)
			r.Delete("/properties/{id}", s.handleAdminDeleteProperty)

			r.Post("/developers", s.handleAdminCreateDeveloper)

			r.Post("/users", s.handleAdminRegisterUser)

			r.Get("/metrics", s.handleAdminMetrics)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
