package domain

import "time"

// Developer is a real-estate developer profile shown on the site.
type Developer struct {
	ID          int64
	Name        string
	Description string
	LogoURL     string
	Established int32
	// FlagshipProjects are display names, not catalog references.
	FlagshipProjects []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
