package models

import (
	"time"

	"github.com/google/uuid"
)

// MentorshipStatus is the lifecycle state of a mentorship
type MentorshipStatus string

const (
	MentorshipStatusPending   MentorshipStatus = "PENDING"
	MentorshipStatusAccepted  MentorshipStatus = "ACCEPTED"
	MentorshipStatusRejected  MentorshipStatus = "REJECTED"
	MentorshipStatusActive    MentorshipStatus = "ACTIVE"
	MentorshipStatusCompleted MentorshipStatus = "COMPLETED"
	MentorshipStatusCancelled MentorshipStatus = "CANCELLED"
)

// AllMentorshipStatuses lists every status in workflow order
var AllMentorshipStatuses = []MentorshipStatus{
	MentorshipStatusPending,
	MentorshipStatusAccepted,
	MentorshipStatusRejected,
	MentorshipStatusActive,
	MentorshipStatusCompleted,
	MentorshipStatusCancelled,
}

func (s MentorshipStatus) IsValid() bool {
	for _, status := range AllMentorshipStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// MentorshipRecord is a read-only snapshot of a mentorship row.
// Pointer fields are optional in storage and nil when unset.
type MentorshipRecord struct {
	ID                uuid.UUID        `json:"id" validate:"required"`
	MentorID          uuid.UUID        `json:"mentorId" validate:"required"`
	MenteeID          uuid.UUID        `json:"menteeId" validate:"required"`
	Status            MentorshipStatus `json:"status" validate:"required,oneof=PENDING ACCEPTED REJECTED ACTIVE COMPLETED CANCELLED"`
	StartDate         *time.Time       `json:"startDate,omitempty"`
	EndDate           *time.Time       `json:"endDate,omitempty"`
	LastInteraction   *time.Time       `json:"lastInteraction,omitempty"`
	MeetingsCompleted *int             `json:"meetingsCompleted,omitempty" validate:"omitempty,min=0"`
	MentorRating      *int             `json:"mentorRating,omitempty" validate:"omitempty,min=1,max=5"`
	MenteeRating      *int             `json:"menteeRating,omitempty" validate:"omitempty,min=1,max=5"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// FilterByStatus returns the records with the given status, preserving order
func FilterByStatus(records []MentorshipRecord, status MentorshipStatus) []MentorshipRecord {
	filtered := make([]MentorshipRecord, 0, len(records))
	for _, r := range records {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
