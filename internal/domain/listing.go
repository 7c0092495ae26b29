package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a property submitted by an owner or agent through the "list your
// property" form. It sits outside the public catalog until an admin approves
// it.
type Listing struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Price        int64 // AED
	PropertyType PropertyType
	Beds         int32
	LocationID   int64
	Amenities    []string
	// PhotoKeys are object-storage keys for uploaded photos.
	PhotoKeys []string

	ContactName  string
	ContactPhone string
	ContactEmail string

	Status          ListingStatus
	RejectionReason string
	// PublishedPropertyID is set once an approved listing has been published
	// into the catalog.
	PublishedPropertyID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListingStatus is the review state of a submitted listing.
type ListingStatus string

const (
	ListingStatusUnspecified ListingStatus = ""
	ListingStatusPending     ListingStatus = "PENDING"  // awaiting admin review
	ListingStatusApproved    ListingStatus = "APPROVED" // published to the catalog
	ListingStatusRejected    ListingStatus = "REJECTED" // declined, reason attached
)

func (s ListingStatus) String() string {
	return string(s)
}

// CanTransitionTo encodes the review state machine: a listing is only ever
// decided once, from PENDING.
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	switch s {
	case ListingStatusPending:
		return next == ListingStatusApproved || next == ListingStatusRejected
	default:
		return false
	}
}

// ListingFilter drives listing queries and partial updates.
type ListingFilter struct {
	Status     *ListingStatus
	LocationID *int64

	Pagination *PaginationParams
}
