package auth

import "errors"

// Domain errors for auth service
var (
	// Validation errors
	ErrInvalidEmail     = errors.New("a valid email address is required")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmptyFullName    = errors.New("full name cannot be empty")

	// Session errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
)
