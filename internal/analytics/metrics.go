package analytics

import (
	"github.com/alumniconnect/portal-api/internal/models"
)

// successRatingThreshold is the minimum mentor rating counted as a successful mentorship
const successRatingThreshold = 4

// ContinuityMetrics derives duration, completion and dropout statistics
// over every mentorship in the snapshot.
func ContinuityMetrics(mentorships []models.MentorshipRecord) models.ContinuityMetrics {
	var (
		durationSum   int64
		durationCount int
		completed     int
		cancelled     int
		active        int
	)

	for i := range mentorships {
		m := &mentorships[i]
		if m.StartDate != nil && m.EndDate != nil {
			durationSum += wholeDaysBetween(*m.StartDate, *m.EndDate)
			durationCount++
		}

		switch m.Status {
		case models.MentorshipStatusCompleted:
			completed++
		case models.MentorshipStatusCancelled:
			cancelled++
		case models.MentorshipStatusActive:
			active++
		}
	}

	var avgDuration int64
	if durationCount > 0 {
		avgDuration = roundHalfUp(float64(durationSum) / float64(durationCount))
	}

	return models.ContinuityMetrics{
		AverageDurationDays: avgDuration,
		CompletionRate:      round2(percentage(completed, len(mentorships))),
		DropoutRate:         round2(percentage(cancelled, len(mentorships))),
		ActiveMentorships:   active,
		TotalMentorships:    len(mentorships),
	}
}

// EffectivenessMetrics derives rating and meeting statistics over completed
// mentorships. Records in any other status are ignored.
func EffectivenessMetrics(mentorships []models.MentorshipRecord) models.EffectivenessMetrics {
	completed := models.FilterByStatus(mentorships, models.MentorshipStatusCompleted)

	var (
		mentorRatingSum, mentorRatingCount int
		menteeRatingSum, menteeRatingCount int
		meetingsSum, meetingsCount         int
		successful                         int
	)

	for i := range completed {
		m := &completed[i]
		if m.MentorRating != nil {
			mentorRatingSum += *m.MentorRating
			mentorRatingCount++
			if *m.MentorRating >= successRatingThreshold {
				successful++
			}
		}
		if m.MenteeRating != nil {
			menteeRatingSum += *m.MenteeRating
			menteeRatingCount++
		}
		if m.MeetingsCompleted != nil {
			meetingsSum += *m.MeetingsCompleted
			meetingsCount++
		}
	}

	return models.EffectivenessMetrics{
		AverageMentorRating:       round2(mean(mentorRatingSum, mentorRatingCount)),
		AverageMenteeRating:       round2(mean(menteeRatingSum, menteeRatingCount)),
		SuccessRate:               round2(percentage(successful, len(completed))),
		AverageMeetingsCompleted:  roundHalfUp(mean(meetingsSum, meetingsCount)),
		TotalCompletedMentorships: len(completed),
	}
}

func mean(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
