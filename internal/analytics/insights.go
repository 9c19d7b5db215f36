package analytics

import (
	"github.com/alumniconnect/portal-api/internal/models"
)

// ProgramInsights computes platform-wide growth counters, distributions and health.
// totalUsers is the store's user count; distributions are taken from users.
func ProgramInsights(totalUsers int, users []models.UserRecord, mentorships []models.MentorshipRecord) models.ProgramInsights {
	active := len(models.FilterByStatus(mentorships, models.MentorshipStatusActive))

	var engagement int64
	if totalUsers > 0 {
		engagement = roundHalfUp(percentage(active, totalUsers))
	}

	industries := make(map[string]int)
	universities := make(map[string]int)
	for i := range users {
		u := &users[i]
		if u.Role == models.UserRoleAlumni && u.Industry != nil {
			industries[*u.Industry]++
		}
		if u.University != nil {
			universities[*u.University]++
		}
	}

	health := models.ProgramHealthNeedsAttention
	if active > 0 {
		health = models.ProgramHealthHealthy
	}

	return models.ProgramInsights{
		GrowthMetrics: models.GrowthMetrics{
			TotalUsers:        totalUsers,
			TotalMentorships:  len(mentorships),
			ActiveMentorships: active,
			EngagementRate:    engagement,
		},
		IndustryDistribution:   industries,
		UniversityDistribution: universities,
		ProgramHealth:          health,
	}
}

// PlatformOverview counts users by role, verification and activity
func PlatformOverview(users []models.UserRecord) models.PlatformOverview {
	overview := models.PlatformOverview{TotalUsers: len(users)}
	for i := range users {
		u := &users[i]
		switch u.Role {
		case models.UserRoleStudent:
			overview.TotalStudents++
		case models.UserRoleAlumni:
			overview.TotalAlumni++
			if u.IsVerified {
				overview.VerifiedAlumni++
			}
		}
		if u.IsActive {
			overview.ActiveUsers++
		}
	}
	return overview
}
