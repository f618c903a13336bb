package models

import (
	"regexp"
	"strings"
	"time"
)

// UserRole represents the role a session acts under
type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
)

// User represents a session identity. Accounts are created on first login and
// live only for the process lifetime.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Email validation regex
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsBuyer returns true for buyer sessions
func (u *User) IsBuyer() bool {
	return u.Role == RoleBuyer
}

// IsSeller returns true for seller sessions
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

// ValidateRole validates a role value
func ValidateRole(role UserRole) error {
	switch role {
	case RoleBuyer, RoleSeller:
		return nil
	case "":
		return NewValidationError("role", "please select a role")
	default:
		return NewValidationError("role", "invalid role")
	}
}

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email", "email is required")
	}

	if len(email) > 255 {
		return NewValidationError("email", "email must be less than 255 characters")
	}

	if !emailRegex.MatchString(email) {
		return NewValidationError("email", "email format is invalid")
	}

	return nil
}
