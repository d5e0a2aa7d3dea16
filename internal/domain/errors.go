package domain

import "errors"

// Sentinel errors for the business rules. The HTTP layer maps these to
// status codes; their messages are the client-facing error strings.
var (
	ErrToolNotFound       = errors.New("Tool not found")
	ErrToolNotAvailable   = errors.New("Tool is not available")
	ErrCheckoutNotFound   = errors.New("Checkout not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidAction      = errors.New("Invalid action")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
