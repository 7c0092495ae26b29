package matchmaker

import (
	"sort"
	"strings"

	"property_hub/internal/domain"
)

// LocationDirectory resolves catalog location IDs to directory entries.
// The engine treats an unresolved ID as "no location name": the record then
// fails a location filter only because nothing can match the query substring,
// never with an error.
type LocationDirectory interface {
	GetLocationByID(id int64) (domain.Location, bool)
}

// Engine turns a preference value and the property catalog into an ordered,
// truncated list of best-matching properties. It is pure: it never mutates
// the catalog or the preferences, so concurrent calls need no coordination.
type Engine struct {
	locations LocationDirectory
	cfg       ScoreConfig
}

// NewEngine builds an engine over the given location directory.
func NewEngine(locations LocationDirectory, cfg ScoreConfig) *Engine {
	return &Engine{locations: locations, cfg: cfg}
}

// Match runs the full pipeline: filter, score, rank.
// topN <= 0 falls back to the configured default.
func (e *Engine) Match(catalog []domain.Property, prefs domain.Preferences, topN int) []domain.ScoredProperty {
	return e.Rank(e.Score(e.Filter(catalog, prefs), prefs), topN)
}

// Filter retains catalog records satisfying every present preference
// constraint, preserving catalog order. Absent preferences pass everything
// through.
func (e *Engine) Filter(catalog []domain.Property, prefs domain.Preferences) []domain.Property {
	var out []domain.Property
	for _, p := range catalog {
		if !e.matchesBudget(p, prefs) {
			continue
		}
		if !matchesPropertyType(p, prefs) {
			continue
		}
		if !matchesBedrooms(p, prefs) {
			continue
		}
		if !e.matchesLocation(p, prefs) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Score annotates each candidate with its match score. Bonuses are
// independent and order-free; the final value is clamped to MaxScore.
func (e *Engine) Score(candidates []domain.Property, prefs domain.Preferences) []domain.ScoredProperty {
	out := make([]domain.ScoredProperty, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, domain.ScoredProperty{
			Property:   p,
			MatchScore: e.scoreOne(p, prefs),
		})
	}
	return out
}

// Rank sorts descending by score and truncates to topN. The sort is stable,
// so ties keep catalog (filter) order and the result is deterministic.
func (e *Engine) Rank(scored []domain.ScoredProperty, topN int) []domain.ScoredProperty {
	out := make([]domain.ScoredProperty, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if topN <= 0 {
		topN = e.cfg.TopN
	}
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func (e *Engine) scoreOne(p domain.Property, prefs domain.Preferences) int {
	score := e.cfg.Base

	if p.Premium {
		score += e.cfg.PremiumBonus
	}
	if p.Exclusive {
		score += e.cfg.ExclusiveBonus
	}
	if p.NewLaunch {
		score += e.cfg.NewLaunchBonus
	}

	if prefs.HasLifestyle(domain.LifestyleLuxury) && p.Premium {
		score += e.cfg.LuxuryPremiumBonus
	}
	if prefs.HasLifestyle(domain.LifestyleFamily) && p.Beds >= e.cfg.FamilyMinBeds {
		score += e.cfg.FamilyBedsBonus
	}
	if prefs.HasLifestyle(domain.LifestyleInvestment) &&
		(p.PropertyType == domain.PropertyTypeApartment || p.Status == domain.PropertyStatusOffPlan) {
		score += e.cfg.InvestmentBonus
	}
	if prefs.HasLifestyle(domain.LifestyleBeachfront) && e.isBeachfront(p.LocationID) {
		score += e.cfg.BeachfrontBonus
	}

	switch prefs.InvestmentGoal {
	case domain.GoalRentalIncome:
		if p.PropertyType == domain.PropertyTypeApartment {
			score += e.cfg.RentalIncomeBonus
		}
	case domain.GoalCapitalAppreciation:
		if p.Status == domain.PropertyStatusOffPlan {
			score += e.cfg.CapitalAppreciationBonus
		}
	case domain.GoalGoldenVisa:
		if domain.GoldenVisaEligible(p.Price) {
			score += e.cfg.GoldenVisaBonus
		}
	}

	if e.cfg.AmenityBonus > 0 && len(prefs.Amenities) > 0 {
		score += e.cfg.AmenityBonus * countMatchedAmenities(p.Amenities, prefs.Amenities)
	}

	if score > e.cfg.MaxScore {
		score = e.cfg.MaxScore
	}
	return score
}

// isBeachfront reports whether the record's community qualifies for the
// beachfront bonus. The trait is a directory tag, not a hardcoded location
// ID, so scoring stays decoupled from catalog seed data.
func (e *Engine) isBeachfront(locationID int64) bool {
	loc, ok := e.locations.GetLocationByID(locationID)
	if !ok {
		return false
	}
	return loc.HasTag(domain.LocationTagBeachfront)
}

func (e *Engine) matchesBudget(p domain.Property, prefs domain.Preferences) bool {
	if prefs.Budget == nil {
		return true
	}
	return p.Price <= *prefs.Budget
}

func matchesPropertyType(p domain.Property, prefs domain.Preferences) bool {
	if prefs.PropertyType == "" {
		return true
	}
	return strings.EqualFold(p.PropertyType.String(), prefs.PropertyType)
}

func matchesBedrooms(p domain.Property, prefs domain.Preferences) bool {
	if prefs.Bedrooms == nil {
		return true
	}
	if prefs.Bedrooms.Studio {
		return p.Beds == 0
	}
	return p.Beds == prefs.Bedrooms.Beds
}

// matchesLocation fails open on an unresolvable location ID: such a record is
// excluded only because its (absent) name cannot contain the query.
func (e *Engine) matchesLocation(p domain.Property, prefs domain.Preferences) bool {
	if prefs.Location == "" {
		return true
	}
	loc, ok := e.locations.GetLocationByID(p.LocationID)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(loc.Name), prefs.Location)
}

func countMatchedAmenities(have, want []string) int {
	set := make(map[string]struct{}, len(have))
	for _, a := range have {
		set[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	n := 0
	for _, w := range want {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}
