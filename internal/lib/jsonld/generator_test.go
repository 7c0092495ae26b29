package jsonld

import (
	"encoding/json"
	"testing"
	"time"

	"property_hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePropertyJSONLD(t *testing.T) {
	g := NewGenerator()

	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	p := domain.Property{
		ID:           42,
		Title:        "Palm Signature Penthouse",
		Description:  "Full-floor penthouse on the crescent",
		Price:        12_500_000,
		PropertyType: domain.PropertyTypePenthouse,
		Beds:         4,
		Status:       domain.PropertyStatusReady,
		Images:       []string{"https://cdn.example.com/42/1.jpg"},
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	loc := domain.Location{ID: 1, Name: "Palm Jumeirah", City: "Dubai"}

	listing := g.GeneratePropertyJSONLD(p, loc, "https://example.com")

	assert.Equal(t, "https://schema.org", listing.Context)
	assert.Equal(t, "Apartment", listing.Type)
	assert.Equal(t, "https://example.com/properties/42", listing.URL)

	require.NotNil(t, listing.Offers)
	assert.Equal(t, int64(12_500_000), listing.Offers.Price)
	assert.Equal(t, "AED", listing.Offers.PriceCurrency)
	assert.Equal(t, "https://schema.org/InStock", listing.Offers.Availability)

	require.NotNil(t, listing.Address)
	assert.Equal(t, "Palm Jumeirah", listing.Address.AddressLocality)
	assert.Equal(t, "AE", listing.Address.AddressCountry)

	require.NotNil(t, listing.NumberOfBedrooms)
	assert.Equal(t, int32(4), *listing.NumberOfBedrooms)

	// 12.5M qualifies for the Golden Visa annotation.
	var foundVisa bool
	for _, prop := range listing.AdditionalProperty {
		if prop.Name == "goldenVisaEligible" {
			foundVisa = true
		}
	}
	assert.True(t, foundVisa)
}

func TestGeneratePropertyJSONLD_OffPlanVilla(t *testing.T) {
	g := NewGenerator()

	p := domain.Property{
		ID:           7,
		Title:        "Hills Grove Villa",
		Price:        1_800_000,
		PropertyType: domain.PropertyTypeVilla,
		Status:       domain.PropertyStatusOffPlan,
	}
	loc := domain.Location{ID: 6, Name: "Dubai Hills Estate", City: "Dubai"}

	listing := g.GeneratePropertyJSONLD(p, loc, "https://example.com")

	assert.Equal(t, "House", listing.Type)
	require.NotNil(t, listing.Offers)
	assert.Equal(t, "https://schema.org/PreOrder", listing.Offers.Availability)

	var foundOffPlan, foundVisa bool
	for _, prop := range listing.AdditionalProperty {
		switch prop.Name {
		case "completionStatus":
			foundOffPlan = true
		case "goldenVisaEligible":
			foundVisa = true
		}
	}
	assert.True(t, foundOffPlan)
	assert.False(t, foundVisa, "1.8M must not carry the visa annotation")
}

func TestGeneratePropertyJSONLDBytes_ValidJSON(t *testing.T) {
	g := NewGenerator()

	data, err := g.GeneratePropertyJSONLDBytes(
		domain.Property{ID: 1, Title: "Test", Price: 100},
		domain.Location{Name: "Business Bay", City: "Dubai"},
		"https://example.com",
	)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "https://schema.org", decoded["@context"])
}

func TestGenerateFAQJSONLD(t *testing.T) {
	g := NewGenerator()

	page := g.GenerateFAQJSONLD(domain.SeedFAQ())

	assert.Equal(t, "FAQPage", page.Type)
	require.NotEmpty(t, page.MainEntity)
	assert.Equal(t, "Question", page.MainEntity[0].Type)
	assert.NotEmpty(t, page.MainEntity[0].AcceptedAnswer.Text)
}

func TestGenerateDeveloperJSONLD(t *testing.T) {
	g := NewGenerator()

	org := g.GenerateDeveloperJSONLD(domain.Developer{
		ID:          3,
		Name:        "Emaar Properties",
		Established: 1997,
	}, "https://example.com")

	assert.Equal(t, "Organization", org.Type)
	assert.Equal(t, "https://example.com/developers/3", org.ID)
	assert.Equal(t, "1997", org.FoundingDate)
}
