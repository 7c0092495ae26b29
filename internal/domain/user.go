package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account. The public site has no user accounts;
// only admins reviewing listings and leads sign in.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         UserRole
	CreatedAt    time.Time
}

// UserRole back-office role
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
)

func (r UserRole) String() string {
	return string(r)
}
