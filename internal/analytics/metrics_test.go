package analytics_test

import (
	"testing"

	"github.com/alumniconnect/portal-api/internal/analytics"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestContinuityMetrics_Empty(t *testing.T) {
	metrics := analytics.ContinuityMetrics(nil)

	assert.Equal(t, models.ContinuityMetrics{}, metrics)
}

func TestContinuityMetrics(t *testing.T) {
	mentor := newUser("Ada", "Lovelace", models.UserRoleAlumni, true)
	mentee := newUser("Alan", "Turing", models.UserRoleStudent, false)

	completedA := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)
	completedA.StartDate, completedA.EndDate = daysAgo(100), daysAgo(90)

	completedB := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)
	completedB.StartDate, completedB.EndDate = daysAgo(60), daysAgo(39)

	active := newMentorship(mentor, mentee, models.MentorshipStatusActive)
	active.StartDate = daysAgo(5)

	cancelled := newMentorship(mentor, mentee, models.MentorshipStatusCancelled)
	pending := newMentorship(mentor, mentee, models.MentorshipStatusPending)
	rejected := newMentorship(mentor, mentee, models.MentorshipStatusRejected)

	metrics := analytics.ContinuityMetrics([]models.MentorshipRecord{
		completedA, completedB, active, cancelled, pending, rejected,
	})

	// (10 + 21) / 2 = 15.5 rounds up
	assert.Equal(t, int64(16), metrics.AverageDurationDays)
	assert.Equal(t, 33.33, metrics.CompletionRate)
	assert.Equal(t, 16.67, metrics.DropoutRate)
	assert.Equal(t, 1, metrics.ActiveMentorships)
	assert.Equal(t, 6, metrics.TotalMentorships)
}

func TestContinuityMetrics_RatesStayBounded(t *testing.T) {
	mentor := newUser("Ada", "Lovelace", models.UserRoleAlumni, true)
	mentee := newUser("Alan", "Turing", models.UserRoleStudent, false)

	statuses := models.AllMentorshipStatuses
	var records []models.MentorshipRecord
	for n := 0; n < 50; n++ {
		records = append(records, newMentorship(mentor, mentee, statuses[n%len(statuses)]))

		metrics := analytics.ContinuityMetrics(records)
		assert.GreaterOrEqual(t, metrics.CompletionRate, 0.0)
		assert.GreaterOrEqual(t, metrics.DropoutRate, 0.0)
		assert.LessOrEqual(t, metrics.CompletionRate, 100.0)
		assert.LessOrEqual(t, metrics.DropoutRate, 100.0)
		assert.LessOrEqual(t, metrics.CompletionRate+metrics.DropoutRate, 100.0)
	}
}

func TestContinuityMetrics_AllCompleted(t *testing.T) {
	mentor := newUser("Ada", "Lovelace", models.UserRoleAlumni, true)
	mentee := newUser("Alan", "Turing", models.UserRoleStudent, false)

	metrics := analytics.ContinuityMetrics([]models.MentorshipRecord{
		newMentorship(mentor, mentee, models.MentorshipStatusCompleted),
		newMentorship(mentor, mentee, models.MentorshipStatusCompleted),
	})

	assert.Equal(t, 100.0, metrics.CompletionRate)
	assert.Equal(t, 0.0, metrics.DropoutRate)
	assert.Equal(t, int64(0), metrics.AverageDurationDays)
}

func TestEffectivenessMetrics_Empty(t *testing.T) {
	metrics := analytics.EffectivenessMetrics(nil)

	assert.Equal(t, models.EffectivenessMetrics{}, metrics)
}

func TestEffectivenessMetrics(t *testing.T) {
	mentor := newUser("Ada", "Lovelace", models.UserRoleAlumni, true)
	mentee := newUser("Alan", "Turing", models.UserRoleStudent, false)

	first := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)
	first.MentorRating, first.MenteeRating, first.MeetingsCompleted = intPtr(5), intPtr(4), intPtr(6)

	second := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)
	second.MentorRating, second.MenteeRating, second.MeetingsCompleted = intPtr(3), intPtr(5), intPtr(3)

	third := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)
	third.MentorRating, third.MeetingsCompleted = intPtr(4), intPtr(4)

	unrated := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)

	// Active ratings must not leak into completed statistics
	ignored := newMentorship(mentor, mentee, models.MentorshipStatusActive)
	ignored.MentorRating = intPtr(1)

	metrics := analytics.EffectivenessMetrics([]models.MentorshipRecord{first, second, third, unrated, ignored})

	assert.Equal(t, 4.0, metrics.AverageMentorRating)
	assert.Equal(t, 4.5, metrics.AverageMenteeRating)
	// 2 of 4 completed rated >= 4
	assert.Equal(t, 50.0, metrics.SuccessRate)
	// 13 / 3 = 4.33
	assert.Equal(t, int64(4), metrics.AverageMeetingsCompleted)
	assert.Equal(t, 4, metrics.TotalCompletedMentorships)
}

func TestEffectivenessMetrics_RoundsRatings(t *testing.T) {
	mentor := newUser("Ada", "Lovelace", models.UserRoleAlumni, true)
	mentee := newUser("Alan", "Turing", models.UserRoleStudent, false)

	var records []models.MentorshipRecord
	for _, rating := range []int{5, 4, 4} {
		m := newMentorship(mentor, mentee, models.MentorshipStatusCompleted)
		m.MentorRating = intPtr(rating)
		records = append(records, m)
	}

	metrics := analytics.EffectivenessMetrics(records)

	assert.Equal(t, 4.33, metrics.AverageMentorRating)
	assert.Equal(t, 100.0, metrics.SuccessRate)
	assert.Equal(t, 0.0, metrics.AverageMenteeRating)
}
