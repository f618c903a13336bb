package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnauthorized    = errors.New("unauthorized access")
	ErrInvalidInput    = errors.New("invalid input")
)

// ValidationError reports a missing or malformed field on user-supplied data.
// A failed operation leaves all stores unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks whether err is a field validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BidError reports a rejected auction bid. CurrentPrice carries the price the
// bid was checked against so callers can surface the minimum acceptable bid.
type BidError struct {
	Bid          string
	CurrentPrice int64
	Reason       string
}

func (e *BidError) Error() string {
	return "invalid bid: " + e.Reason
}

// IsBidError checks whether err is a rejected bid
func IsBidError(err error) bool {
	var be *BidError
	return errors.As(err, &be)
}
