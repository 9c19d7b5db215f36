package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole is the platform role of an account
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAlumni  UserRole = "ALUMNI"
	UserRoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleStudent || r == UserRoleAlumni || r == UserRoleAdmin
}

// UserRecord is a read-only snapshot of a user account
type UserRecord struct {
	ID         uuid.UUID `json:"id" validate:"required"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       UserRole  `json:"role" validate:"required,oneof=STUDENT ALUMNI ADMIN"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	Industry   *string   `json:"industry,omitempty"`
	Experience *int      `json:"experience,omitempty" validate:"omitempty,min=0"`
	University *string   `json:"university,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FullName returns "First Last" with surrounding whitespace removed
func (u *UserRecord) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsEligibleMentor reports whether the user can take mentees.
// Only verified alumni qualify; IsActive is not considered.
func (u *UserRecord) IsEligibleMentor() bool {
	return u.Role == UserRoleAlumni && u.IsVerified
}
