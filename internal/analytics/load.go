package analytics

import (
	"fmt"
	"sort"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
)

// Load status buckets. These are reporting thresholds and are unrelated to
// AssignmentCapacity, which caps automatic suggestions.
const (
	optimalLoadMax = 2
	highLoadMax    = 4
)

// Auto-balance limits
const (
	// AssignmentCapacity is the exclusive upper bound on active mentorships
	// a mentor may reach through suggested assignments.
	AssignmentCapacity = 3
	// MaxAssignmentsPerRun caps suggestions produced by one auto-balance run.
	MaxAssignmentsPerRun = 10

	autoBalanceMessage = "Load balancing analysis completed"
)

// ClassifyLoad maps an active mentorship count to a load status
func ClassifyLoad(currentLoad int) models.LoadStatus {
	switch {
	case currentLoad == 0:
		return models.LoadStatusAvailable
	case currentLoad <= optimalLoadMax:
		return models.LoadStatusOptimal
	case currentLoad <= highLoadMax:
		return models.LoadStatusHigh
	default:
		return models.LoadStatusOverloaded
	}
}

// ActiveLoads counts active mentorships per mentor id.
// Every mentor in mentors gets an entry, zero when idle.
func ActiveLoads(mentors []models.UserRecord, mentorships []models.MentorshipRecord) map[uuid.UUID]int {
	loads := make(map[uuid.UUID]int, len(mentors))
	for i := range mentors {
		loads[mentors[i].ID] = 0
	}
	for i := range mentorships {
		m := &mentorships[i]
		if m.Status != models.MentorshipStatusActive {
			continue
		}
		if _, tracked := loads[m.MentorID]; tracked {
			loads[m.MentorID]++
		}
	}
	return loads
}

// MentorLoadOf builds the load entry for a single mentor from that mentor's mentorships
func MentorLoadOf(mentor *models.UserRecord, mentorships []models.MentorshipRecord) models.MentorLoad {
	current := 0
	for i := range mentorships {
		if mentorships[i].MentorID == mentor.ID && mentorships[i].Status == models.MentorshipStatusActive {
			current++
		}
	}
	return newMentorLoad(mentor, current)
}

func newMentorLoad(mentor *models.UserRecord, current int) models.MentorLoad {
	return models.MentorLoad{
		MentorID:    mentor.ID,
		MentorName:  mentor.FullName(),
		CurrentLoad: current,
		LoadStatus:  ClassifyLoad(current),
		Industry:    mentor.Industry,
		Experience:  mentor.Experience,
	}
}

// MentorLoads reports the current load of every eligible mentor, highest load
// first. Mentors with equal load keep their input order.
func MentorLoads(mentors []models.UserRecord, mentorships []models.MentorshipRecord) models.MentorLoadReport {
	eligible := eligibleMentors(mentors)
	loads := ActiveLoads(eligible, mentorships)

	report := models.MentorLoadReport{
		MentorLoads:  make([]models.MentorLoad, 0, len(eligible)),
		TotalMentors: len(eligible),
	}
	for i := range eligible {
		entry := newMentorLoad(&eligible[i], loads[eligible[i].ID])
		switch entry.LoadStatus {
		case models.LoadStatusAvailable:
			report.AvailableMentors++
		case models.LoadStatusOverloaded:
			report.OverloadedMentors++
		}
		report.MentorLoads = append(report.MentorLoads, entry)
	}

	sort.SliceStable(report.MentorLoads, func(i, j int) bool {
		return report.MentorLoads[i].CurrentLoad > report.MentorLoads[j].CurrentLoad
	})

	return report
}

// AutoBalance suggests mentors for pending requests using a greedy
// least-loaded strategy. Requests are handled in input order; each picks the
// eligible mentor with the lowest load below AssignmentCapacity, the earliest
// mentor winning ties. Requests with no candidate are skipped. The run stops
// after MaxAssignmentsPerRun suggestions.
//
// loads is copied before use and never modified. Nothing is persisted; the
// caller decides whether to commit any suggestion.
func AutoBalance(
	pending []models.MentorshipRecord,
	mentors []models.UserRecord,
	loads map[uuid.UUID]int,
	dir Directory,
) (models.AutoBalanceResult, error) {
	requests := models.FilterByStatus(pending, models.MentorshipStatusPending)
	eligible := eligibleMentors(mentors)

	running := make(map[uuid.UUID]int, len(eligible))
	for i := range eligible {
		running[eligible[i].ID] = loads[eligible[i].ID]
	}

	result := models.AutoBalanceResult{
		BalancingActions: make([]string, 0),
		Assignments:      make([]models.SuggestedAssignment, 0),
		PendingRequests:  len(requests),
		Message:          autoBalanceMessage,
	}

	for i := range requests {
		if result.RebalancedCount >= MaxAssignmentsPerRun {
			break
		}
		request := &requests[i]

		mentor := leastLoaded(eligible, running)
		if mentor == nil {
			continue
		}

		mentee, err := dir.Lookup("mentee", request.MenteeID)
		if err != nil {
			return models.AutoBalanceResult{}, fmt.Errorf("mentorship %s: %w", request.ID, err)
		}

		result.BalancingActions = append(result.BalancingActions,
			fmt.Sprintf("Suggested assignment: %s to %s", mentee.FirstName, mentor.FirstName))
		result.Assignments = append(result.Assignments, models.SuggestedAssignment{
			MentorshipID: request.ID,
			MenteeID:     mentee.ID,
			MenteeName:   mentee.FullName(),
			MentorID:     mentor.ID,
			MentorName:   mentor.FullName(),
		})
		running[mentor.ID]++
		result.RebalancedCount++
	}

	return result, nil
}

// leastLoaded returns the first mentor with the minimum load under capacity, or nil
func leastLoaded(mentors []models.UserRecord, running map[uuid.UUID]int) *models.UserRecord {
	var best *models.UserRecord
	bestLoad := 0
	for i := range mentors {
		load := running[mentors[i].ID]
		if load >= AssignmentCapacity {
			continue
		}
		if best == nil || load < bestLoad {
			best = &mentors[i]
			bestLoad = load
		}
	}
	return best
}

func eligibleMentors(users []models.UserRecord) []models.UserRecord {
	eligible := make([]models.UserRecord, 0, len(users))
	for i := range users {
		if users[i].IsEligibleMentor() {
			eligible = append(eligible, users[i])
		}
	}
	return eligible
}
