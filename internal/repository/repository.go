package repository

import "errors"

// Sentinel errors shared by all repositories. Services translate these into
// their own error space.
var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrListingNotFound   = errors.New("listing not found")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrDeveloperNotFound = errors.New("developer not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
)
