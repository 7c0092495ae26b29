package property

import (
	"sort"
	"strings"

	"property_hub/internal/domain"
)

// Directory is an in-memory index over the community directory. The roster
// changes at deploy time, not at runtime, so it is built once and read-only
// afterwards.
type Directory struct {
	byID   map[int64]domain.Location
	byName map[string]domain.Location
	all    []domain.Location
}

// NewDirectory indexes the given locations.
func NewDirectory(locations []domain.Location) *Directory {
	d := &Directory{
		byID:   make(map[int64]domain.Location, len(locations)),
		byName: make(map[string]domain.Location, len(locations)),
		all:    make([]domain.Location, len(locations)),
	}
	copy(d.all, locations)
	sort.Slice(d.all, func(i, j int) bool { return d.all[i].ID < d.all[j].ID })
	for _, loc := range d.all {
		d.byID[loc.ID] = loc
		d.byName[strings.ToLower(loc.Name)] = loc
	}
	return d
}

// NewSeededDirectory indexes the built-in community roster.
func NewSeededDirectory() *Directory {
	return NewDirectory(domain.SeedLocations())
}

// GetLocationByID resolves a community by id.
func (d *Directory) GetLocationByID(id int64) (domain.Location, bool) {
	loc, ok := d.byID[id]
	return loc, ok
}

// GetLocationByName resolves a community by name, case-insensitively.
func (d *Directory) GetLocationByName(name string) (domain.Location, bool) {
	loc, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	return loc, ok
}

// All returns the directory ordered by id.
func (d *Directory) All() []domain.Location {
	out := make([]domain.Location, len(d.all))
	copy(out, d.all)
	return out
}
