package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)
