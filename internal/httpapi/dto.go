package httpapi

import (
	"encoding/json"
	"time"

	"property_hub/internal/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type propertyResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        int64     `json:"price"`
	PropertyType string    `json:"property_type"`
	Beds         int32     `json:"beds"`
	LocationID   int64     `json:"location_id"`
	DeveloperID  int64     `json:"developer_id,omitempty"`
	Premium      bool      `json:"premium"`
	Exclusive    bool      `json:"exclusive"`
	NewLaunch    bool      `json:"new_launch"`
	Status       string    `json:"status"`
	Amenities    []string  `json:"amenities,omitempty"`
	Images       []string  `json:"images,omitempty"`
	GoldenVisa   bool      `json:"golden_visa_eligible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toPropertyResponse(p domain.Property) propertyResponse {
	return propertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		PropertyType: p.PropertyType.String(),
		Beds:         p.Beds,
		LocationID:   p.LocationID,
		DeveloperID:  p.DeveloperID,
		Premium:      p.Premium,
		Exclusive:    p.Exclusive,
		NewLaunch:    p.NewLaunch,
		Status:       p.Status.String(),
		Amenities:    p.Amenities,
		Images:       p.Images,
		GoldenVisa:   domain.GoldenVisaEligible(p.Price),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type scoredPropertyResponse struct {
	propertyResponse
	MatchScore int `json:"match_score"`
}

func toScoredResponses(scored []domain.ScoredProperty) []scoredPropertyResponse {
	return lo.Map(scored, func(s domain.ScoredProperty, _ int) scoredPropertyResponse {
		return scoredPropertyResponse{
			propertyResponse: toPropertyResponse(s.Property),
			MatchScore:       s.MatchScore,
		}
	})
}

type locationResponse struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	City string   `json:"city"`
	Tags []string `json:"tags,omitempty"`
}

func toLocationResponse(l domain.Location) locationResponse {
	return locationResponse{ID: l.ID, Name: l.Name, City: l.City, Tags: l.Tags}
}

type developerResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	LogoURL          string   `json:"logo_url,omitempty"`
	Established      int32    `json:"established,omitempty"`
	FlagshipProjects []string `json:"flagship_projects,omitempty"`
}

func toDeveloperResponse(d domain.Developer) developerResponse {
	return developerResponse{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		LogoURL:          d.LogoURL,
		Established:      d.Established,
		FlagshipProjects: d.FlagshipProjects,
	}
}

type listingResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	Price               int64     `json:"price"`
	PropertyType        string    `json:"property_type"`
	Beds                int32     `json:"beds"`
	LocationID          int64     `json:"location_id"`
	Amenities           []string  `json:"amenities,omitempty"`
	PhotoKeys           []string  `json:"photo_keys,omitempty"`
	ContactName         string    `json:"contact_name"`
	ContactPhone        string    `json:"contact_phone,omitempty"`
	ContactEmail        string    `json:"contact_email"`
	Status              string    `json:"status"`
	RejectionReason     string    `json:"rejection_reason,omitempty"`
	PublishedPropertyID *int64    `json:"published_property_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toListingResponse(l domain.Listing) listingResponse {
	return listingResponse{
		ID:                  l.ID,
		Title:               l.Title,
		Description:         l.Description,
		Price:               l.Price,
		PropertyType:        l.PropertyType.String(),
		Beds:                l.Beds,
		LocationID:          l.LocationID,
		Amenities:           l.Amenities,
		PhotoKeys:           l.PhotoKeys,
		ContactName:         l.ContactName,
		ContactPhone:        l.ContactPhone,
		ContactEmail:        l.ContactEmail,
		Status:              l.Status.String(),
		RejectionReason:     l.RejectionReason,
		PublishedPropertyID: l.PublishedPropertyID,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

type leadResponse struct {
	ID           uuid.UUID       `json:"id"`
	Source       string          `json:"source"`
	ContactName  string          `json:"contact_name"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	ContactEmail string          `json:"contact_email,omitempty"`
	Message      string          `json:"message,omitempty"`
	PropertyID   *int64          `json:"property_id,omitempty"`
	Preferences  json.RawMessage `json:"preferences,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toLeadResponse(l domain.Lead) leadResponse {
	return leadResponse{
		ID:           l.ID,
		Source:       l.Source.String(),
		ContactName:  l.ContactName,
		ContactPhone: l.ContactPhone,
		ContactEmail: l.ContactEmail,
		Message:      l.Message,
		PropertyID:   l.PropertyID,
		Preferences:  l.Preferences,
		Status:       l.Status.String(),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// pageResponse is the envelope for cursor-paginated list endpoints.
type pageResponse[T any] struct {
	Items         []T    `json:"items"`
	NextPageToken string `json:"next_page_token,omitempty"`
	TotalCount    int32  `json:"total_count"`
	HasMore       bool   `json:"has_more"`
}

func toPageResponse[S, T any](res *domain.PaginatedResult[S], conv func(S) T) pageResponse[T] {
	return pageResponse[T]{
		Items:         lo.Map(res.Items, func(item S, _ int) T { return conv(item) }),
		NextPageToken: res.NextPageToken,
		TotalCount:    res.TotalCount,
		HasMore:       res.HasMore,
	}
}
