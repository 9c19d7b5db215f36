package analytics

import (
	"fmt"
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// Risk scoring weights and thresholds
const (
	riskNoInteraction    = 40
	riskStaleInteraction = 30
	riskLongRunning      = 20
	riskLowMeetings      = 25

	staleInteractionDays = 14
	longRunningDays      = 180
	lowMeetingsThreshold = 2

	AtRiskThreshold   = 50
	HighRiskThreshold = 70
)

// RiskAssessment is the score of a single mentorship and the rules that fired, in rule order
type RiskAssessment struct {
	Score   int
	Reasons []string
}

// AtRisk reports whether the score crosses the at-risk threshold
func (a RiskAssessment) AtRisk() bool {
	return a.Score >= AtRiskThreshold
}

// Level classifies an at-risk score
func (a RiskAssessment) Level() models.RiskLevel {
	if a.Score >= HighRiskThreshold {
		return models.RiskLevelHigh
	}
	return models.RiskLevelMedium
}

// ScoreRisk applies the disengagement heuristics to one mentorship at time now.
// Rules are additive; every matching rule contributes to the score.
func ScoreRisk(m *models.MentorshipRecord, now time.Time) RiskAssessment {
	var a RiskAssessment

	if m.LastInteraction == nil {
		a.Score += riskNoInteraction
		a.Reasons = append(a.Reasons, "No recorded interactions")
	} else if idle := wholeDaysBetween(*m.LastInteraction, now); idle > staleInteractionDays {
		a.Score += riskStaleInteraction
		a.Reasons = append(a.Reasons, fmt.Sprintf("No interaction for %d days", idle))
	}

	if m.StartDate != nil {
		if running := wholeDaysBetween(*m.StartDate, now); running > longRunningDays {
			a.Score += riskLongRunning
			a.Reasons = append(a.Reasons, fmt.Sprintf("Long-running mentorship (%d days)", running))
		}
	}

	if m.MeetingsCompleted != nil && *m.MeetingsCompleted < lowMeetingsThreshold {
		a.Score += riskLowMeetings
		a.Reasons = append(a.Reasons, "Low meeting frequency")
	}

	return a
}

// RiskAnalysis scores every active mentorship and reports the ones at risk.
// Mentorships in other statuses are skipped. Participant names are resolved
// through dir; an unknown participant fails the whole analysis.
func RiskAnalysis(mentorships []models.MentorshipRecord, dir Directory, now time.Time) (models.RiskReport, error) {
	active := models.FilterByStatus(mentorships, models.MentorshipStatusActive)
	atRisk := make([]models.AtRiskMentorship, 0)

	for i := range active {
		m := &active[i]
		assessment := ScoreRisk(m, now)
		if !assessment.AtRisk() {
			continue
		}

		mentor, err := dir.Lookup("mentor", m.MentorID)
		if err != nil {
			return models.RiskReport{}, fmt.Errorf("mentorship %s: %w", m.ID, err)
		}
		mentee, err := dir.Lookup("mentee", m.MenteeID)
		if err != nil {
			return models.RiskReport{}, fmt.Errorf("mentorship %s: %w", m.ID, err)
		}

		atRisk = append(atRisk, models.AtRiskMentorship{
			MentorshipID: m.ID,
			MentorName:   mentor.FullName(),
			MenteeName:   mentee.FullName(),
			RiskScore:    assessment.Score,
			RiskLevel:    assessment.Level(),
			RiskReasons:  assessment.Reasons,
		})
	}

	var riskPercentage int64
	if len(active) > 0 {
		riskPercentage = roundHalfUp(percentage(len(atRisk), len(active)))
	}

	return models.RiskReport{
		AtRiskMentorships: atRisk,
		TotalAtRisk:       len(atRisk),
		TotalActive:       len(active),
		RiskPercentage:    riskPercentage,
	}, nil
}
