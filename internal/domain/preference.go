package domain

import (
	"math"
	"strconv"
	"strings"
)

// InvestmentGoal is the buyer's stated purpose for the purchase.
type InvestmentGoal string

const (
	GoalUnspecified         InvestmentGoal = ""
	GoalRentalIncome        InvestmentGoal = "rental-income"
	GoalCapitalAppreciation InvestmentGoal = "capital-appreciation"
	GoalGoldenVisa          InvestmentGoal = "golden-visa"
	GoalPrimaryResidence    InvestmentGoal = "primary-residence"
	GoalVacationHome        InvestmentGoal = "vacation-home"
)

// Lifestyle tags accepted from the matchmaker form.
const (
	LifestyleLuxury     = "luxury"
	LifestyleFamily     = "family"
	LifestyleInvestment = "investment"
	LifestyleBeachfront = "beachfront"
)

// PreferenceForm is the raw matchmaker submission as it arrives from the
// website form. All fields are free text; parsing happens once, in
// ParsePreferences.
type PreferenceForm struct {
	Budget         string   `json:"budget"`
	PropertyType   string   `json:"propertyType"`
	Bedrooms       string   `json:"bedrooms"`
	Location       string   `json:"location"`
	Lifestyle      []string `json:"lifestyle"`
	InvestmentGoal string   `json:"investmentGoal"`
	Amenities      []string `json:"amenities"`
}

// Preferences is the immutable, fully parsed preference value the matchmaker
// consumes. A nil/zero field means "no filter": malformed numeric input is
// normalized to absent here, so the engine never sees an unparseable bound.
type Preferences struct {
	// Budget is the price ceiling in AED; nil means no ceiling.
	Budget *int64
	// PropertyType is the lower-cased exact-match filter; empty means any.
	PropertyType string
	// Bedrooms is nil when the buyer said "any" (or the value did not parse).
	Bedrooms *BedroomPreference
	// Location is the normalized substring to match against directory names
	// (lower case, hyphens replaced by spaces); empty means no preference.
	Location string
	// Lifestyle holds lower-cased lifestyle tags.
	Lifestyle []string
	InvestmentGoal InvestmentGoal
	// Amenities holds lower-cased desired amenity tags.
	Amenities []string
}

// BedroomPreference is either "studio" or an exact bed count.
type BedroomPreference struct {
	Studio bool
	Beds   int32
}

// ParsePreferences builds an immutable Preferences value from a raw form.
// It is total: every malformed field degrades to "no filter" rather than
// poisoning the comparison downstream.
func ParsePreferences(form PreferenceForm) Preferences {
	p := Preferences{
		PropertyType:   strings.ToLower(strings.TrimSpace(form.PropertyType)),
		Budget:         parseBudget(form.Budget),
		Bedrooms:       parseBedrooms(form.Bedrooms),
		Location:       NormalizeLocationQuery(form.Location),
		Lifestyle:      normalizeTags(form.Lifestyle),
		Amenities:      normalizeTags(form.Amenities),
		InvestmentGoal: InvestmentGoal(strings.ToLower(strings.TrimSpace(form.InvestmentGoal))),
	}
	return p
}

// HasLifestyle reports whether the given lifestyle tag was selected.
func (p Preferences) HasLifestyle(tag string) bool {
	for _, t := range p.Lifestyle {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeLocationQuery lowers the query and treats hyphens as spaces, so
// "palm-jumeirah" matches the directory name "Palm Jumeirah".
// The "no-preference" sentinel and blank input normalize to "".
func NormalizeLocationQuery(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "no-preference" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(s, "-", " "))
}

func parseBudget(raw string) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	// Tolerate "1,500,000" and "1 500 000" from the form.
	s = strings.NewReplacer(",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil
	}
	// A ceiling past int64 range means no ceiling at all; converting it
	// would wrap negative and reject the whole catalog.
	if v >= math.MaxInt64 {
		return nil
	}
	b := int64(v)
	return &b
}

func parseBedrooms(raw string) *BedroomPreference {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "any":
		return nil
	case "studio":
		return &BedroomPreference{Studio: true}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		// Unparseable input means no filter, not "reject everything".
		return nil
	}
	return &BedroomPreference{Beds: int32(n)}
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
