package analytics_test

import (
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := testNow.Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func newUser(first, last string, role models.UserRole, verified bool) models.UserRecord {
	return models.UserRecord{
		ID:         uuid.New(),
		FirstName:  first,
		LastName:   last,
		Role:       role,
		IsVerified: verified,
		IsActive:   true,
	}
}

func newMentorship(mentor, mentee models.UserRecord, status models.MentorshipStatus) models.MentorshipRecord {
	return models.MentorshipRecord{
		ID:       uuid.New(),
		MentorID: mentor.ID,
		MenteeID: mentee.ID,
		Status:   status,
	}
}
