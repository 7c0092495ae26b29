package domain

import "strings"

// Location is a directory entry for a community / area of the city.
type Location struct {
	ID   int64
	Name string
	City string
	// Tags carry community traits the matchmaker scores against,
	// e.g. "beachfront", "golf", "family".
	Tags []string
}

// LocationTagBeachfront marks waterfront communities.
const LocationTagBeachfront = "beachfront"

// HasTag reports whether the location carries the given tag
// (case-insensitive).
func (l Location) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// SeedLocations is the built-in directory used when the database has no
// locations yet. IDs are stable: seeded properties reference them.
func SeedLocations() []Location {
	return []Location{
		{ID: 1, Name: "Palm Jumeirah", City: "Dubai", Tags: []string{LocationTagBeachfront, "luxury"}},
		{ID: 2, Name: "Downtown Dubai", City: "Dubai", Tags: []string{"luxury", "city-centre"}},
		{ID: 3, Name: "Dubai Marina", City: "Dubai", Tags: []string{"waterfront", "city-centre"}},
		{ID: 4, Name: "Business Bay", City: "Dubai", Tags: []string{"city-centre"}},
		{ID: 5, Name: "Jumeirah Village Circle", City: "Dubai", Tags: []string{"family"}},
		{ID: 6, Name: "Dubai Hills Estate", City: "Dubai", Tags: []string{"family", "golf"}},
		{ID: 7, Name: "Arabian Ranches", City: "Dubai", Tags: []string{"family"}},
		{ID: 8, Name: "Dubai Creek Harbour", City: "Dubai", Tags: []string{"waterfront"}},
	}
}
