package domain

import (
	"time"
)

// Property is a catalog record as shown on the marketing site. Catalog rows
// carry stable integer IDs so seeded data, deep links and the location
// directory stay in sync.
type Property struct {
	ID           int64
	Title        string
	Description  string
	Price        int64 // AED
	PropertyType PropertyType
	// Beds == 0 denotes a studio.
	Beds        int32
	LocationID  int64
	DeveloperID int64
	Premium     bool
	Exclusive   bool
	NewLaunch   bool
	Status      PropertyStatus
	Amenities   []string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyType is the unit type shown to buyers.
type PropertyType string

const (
	PropertyTypeUnspecified PropertyType = ""
	PropertyTypeApartment   PropertyType = "Apartment"
	PropertyTypeVilla       PropertyType = "Villa"
	PropertyTypeTownhouse   PropertyType = "Townhouse"
	PropertyTypePenthouse   PropertyType = "Penthouse"
	PropertyTypeStudio      PropertyType = "Studio"
)

func (t PropertyType) String() string {
	return string(t)
}

// PropertyStatus is the sales stage of a unit.
type PropertyStatus string

const (
	PropertyStatusUnspecified PropertyStatus = ""
	PropertyStatusOffPlan     PropertyStatus = "Off-Plan"
	PropertyStatusReady       PropertyStatus = "Ready"
)

func (s PropertyStatus) String() string {
	return string(s)
}

// PropertyFilter drives catalog listings and partial updates.
type PropertyFilter struct {
	PropertyType *PropertyType
	Status       *PropertyStatus
	LocationID   *int64
	DeveloperID  *int64
	MinPrice     *int64
	MaxPrice     *int64
	MinBeds      *int32
	MaxBeds      *int32
	Premium      *bool
	Exclusive    *bool
	NewLaunch    *bool

	Pagination *PaginationParams
}

// PropertyUpdate carries the fields of a partial catalog update. Nil fields
// are left untouched.
type PropertyUpdate struct {
	Title        *string
	Description  *string
	Price        *int64
	PropertyType *PropertyType
	Beds         *int32
	LocationID   *int64
	DeveloperID  *int64
	Premium      *bool
	Exclusive    *bool
	NewLaunch    *bool
	Status       *PropertyStatus
	Amenities    []string
	Images       []string
}

// ScoredProperty is a catalog record annotated by the matchmaker.
type ScoredProperty struct {
	Property   Property
	MatchScore int
}

// GoldenVisaMinPrice is the AED purchase price at which a property investment
// qualifies for the UAE long-term residency programme.
const GoldenVisaMinPrice int64 = 2_000_000

// GoldenVisaEligible reports whether a purchase at the given price qualifies
// for the Golden Visa programme.
func GoldenVisaEligible(price int64) bool {
	return price >= GoldenVisaMinPrice
}
