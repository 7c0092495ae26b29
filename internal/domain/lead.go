package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Lead is a captured buyer enquiry: a matchmaker submission, a contact form
// or a viewing request against a specific property.
type Lead struct {
	ID     uuid.UUID
	Source LeadSource

	ContactName  string
	ContactPhone string
	ContactEmail string
	Message      string

	// PropertyID is set for viewing requests against a catalog record.
	PropertyID *int64
	// Preferences is the matchmaker form snapshot (JSONB) for
	// matchmaker-sourced leads.
	Preferences json.RawMessage

	Status    LeadStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeadSource identifies the form a lead came in through.
type LeadSource string

const (
	LeadSourceMatchmaker LeadSource = "MATCHMAKER"
	LeadSourceContact    LeadSource = "CONTACT"
	LeadSourceListing    LeadSource = "LISTING"
	LeadSourceViewing    LeadSource = "VIEWING"
)

func (s LeadSource) String() string {
	return string(s)
}

// LeadStatus is the sales-team follow-up state.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusClosed    LeadStatus = "CLOSED"
)

func (s LeadStatus) String() string {
	return string(s)
}

// LeadFilter drives lead queries and partial updates.
type LeadFilter struct {
	Source     *LeadSource
	Status     *LeadStatus
	PropertyID *int64

	Pagination *PaginationParams
}
