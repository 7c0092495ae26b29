package jsonld

import (
	"encoding/json"
	"fmt"
	"time"

	"property_hub/internal/domain"
)

// Generator produces schema.org JSON-LD markup for catalog pages.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// RealEstateListing is the schema.org markup for a catalog record.
type RealEstateListing struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	ID           string `json:"@id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url,omitempty"`
	DatePosted   string `json:"datePosted,omitempty"`
	DateModified string `json:"dateModified,omitempty"`

	Offers  *Offer         `json:"offers,omitempty"`
	Address *PostalAddress `json:"address,omitempty"`

	NumberOfBedrooms *int32 `json:"numberOfBedrooms,omitempty"`
	PropertyType     string `json:"propertyType,omitempty"`

	Image []string `json:"image,omitempty"`

	AdditionalProperty []PropertyValue `json:"additionalProperty,omitempty"`
}

// Offer is the schema.org price offer.
type Offer struct {
	Type          string `json:"@type"`
	Price         int64  `json:"price,omitempty"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability,omitempty"`
}

// PostalAddress is the schema.org address.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality,omitempty"` // community
	AddressRegion   string `json:"addressRegion,omitempty"`   // city
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// PropertyValue is an additional schema.org property.
type PropertyValue struct {
	Type  string      `json:"@type"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// GeneratePropertyJSONLD builds the markup for a catalog record. The
// location is passed separately since catalog rows only carry the id.
func (g *Generator) GeneratePropertyJSONLD(property domain.Property, location domain.Location, baseURL string) *RealEstateListing {
	url := fmt.Sprintf("%s/properties/%d", baseURL, property.ID)

	listing := &RealEstateListing{
		Context:      "https://schema.org",
		Type:         g.mapPropertyType(property.PropertyType),
		ID:           url,
		Name:         property.Title,
		Description:  property.Description,
		URL:          url,
		DatePosted:   property.CreatedAt.Format(time.RFC3339),
		DateModified: property.UpdatedAt.Format(time.RFC3339),
		PropertyType: property.PropertyType.String(),
	}

	if property.Price > 0 {
		listing.Offers = &Offer{
			Type:          "Offer",
			Price:         property.Price,
			PriceCurrency: "AED",
			Availability:  g.mapPropertyStatus(property.Status),
		}
	}

	listing.Address = &PostalAddress{
		Type:            "PostalAddress",
		AddressLocality: location.Name,
		AddressRegion:   location.City,
		AddressCountry:  "AE",
	}

	beds := property.Beds
	listing.NumberOfBedrooms = &beds

	if len(property.Images) > 0 {
		listing.Image = append(listing.Image, property.Images...)
	}

	if property.Status == domain.PropertyStatusOffPlan {
		g.AddAdditionalProperties(listing, map[string]interface{}{
			"completionStatus": "off-plan",
		})
	}
	if domain.GoldenVisaEligible(property.Price) {
		g.AddAdditionalProperties(listing, map[string]interface{}{
			"goldenVisaEligible": true,
		})
	}

	return listing
}

// GeneratePropertyJSONLDBytes renders the markup ready to embed in a page.
func (g *Generator) GeneratePropertyJSONLDBytes(property domain.Property, location domain.Location, baseURL string) ([]byte, error) {
	listing := g.GeneratePropertyJSONLD(property, location, baseURL)

	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON-LD: %w", err)
	}
	return data, nil
}

// AddAdditionalProperties attaches extra schema.org properties.
func (g *Generator) AddAdditionalProperties(listing *RealEstateListing, props map[string]interface{}) {
	for name, value := range props {
		listing.AdditionalProperty = append(listing.AdditionalProperty, PropertyValue{
			Type:  "PropertyValue",
			Name:  name,
			Value: value,
		})
	}
}

func (g *Generator) mapPropertyType(pt domain.PropertyType) string {
	switch pt {
	case domain.PropertyTypeApartment, domain.PropertyTypeStudio, domain.PropertyTypePenthouse:
		return "Apartment"
	case domain.PropertyTypeVilla, domain.PropertyTypeTownhouse:
		return "House"
	default:
		return "RealEstateListing"
	}
}

func (g *Generator) mapPropertyStatus(status domain.PropertyStatus) string {
	switch status {
	case domain.PropertyStatusReady:
		return "https://schema.org/InStock"
	case domain.PropertyStatusOffPlan:
		return "https://schema.org/PreOrder"
	default:
		return "https://schema.org/InStock"
	}
}

// Organization is the schema.org markup for a developer profile.
type Organization struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	ID           string `json:"@id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Logo         string `json:"logo,omitempty"`
	FoundingDate string `json:"foundingDate,omitempty"`
}

// GenerateDeveloperJSONLD builds the markup for a developer page.
func (g *Generator) GenerateDeveloperJSONLD(dev domain.Developer, baseURL string) *Organization {
	org := &Organization{
		Context:     "https://schema.org",
		Type:        "Organization",
		ID:          fmt.Sprintf("%s/developers/%d", baseURL, dev.ID),
		Name:        dev.Name,
		Description: dev.Description,
		Logo:        dev.LogoURL,
	}
	if dev.Established > 0 {
		org.FoundingDate = fmt.Sprintf("%d", dev.Established)
	}
	return org
}

// FAQPage is the schema.org markup for the FAQ page.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// GenerateFAQJSONLD builds the markup for the FAQ page.
func (g *Generator) GenerateFAQJSONLD(entries []domain.FAQEntry) *FAQPage {
	page := &FAQPage{
		Context: "https://schema.org",
		Type:    "FAQPage",
	}
	for _, e := range entries {
		page.MainEntity = append(page.MainEntity, Question{
			Type: "Question",
			Name: e.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: e.Answer,
			},
		})
	}
	return page
}
