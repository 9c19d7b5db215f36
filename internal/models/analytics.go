package models

import "github.com/google/uuid"

// ContinuityMetrics summarises how long mentorships last and how they end
type ContinuityMetrics struct {
	AverageDurationDays int64   `json:"averageDurationDays"`
	CompletionRate      float64 `json:"completionRate"`
	DropoutRate         float64 `json:"dropoutRate"`
	ActiveMentorships   int     `json:"activeMentorships"`
	TotalMentorships    int     `json:"totalMentorships"`
}

// EffectivenessMetrics summarises outcomes of completed mentorships
type EffectivenessMetrics struct {
	AverageMentorRating       float64 `json:"averageMentorRating"`
	AverageMenteeRating       float64 `json:"averageMenteeRating"`
	SuccessRate               float64 `json:"successRate"`
	AverageMeetingsCompleted  int64   `json:"averageMeetingsCompleted"`
	TotalCompletedMentorships int     `json:"totalCompletedMentorships"`
}

// RiskLevel classifies an at-risk mentorship
type RiskLevel string

const (
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// AtRiskMentorship describes one active mentorship flagged by the risk scorer
type AtRiskMentorship struct {
	MentorshipID uuid.UUID `json:"mentorshipId"`
	MentorName   string    `json:"mentorName"`
	MenteeName   string    `json:"menteeName"`
	RiskScore    int       `json:"riskScore"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	RiskReasons  []string  `json:"riskReasons"`
}

// RiskReport is the predictive risk analysis over active mentorships
type RiskReport struct {
	AtRiskMentorships []AtRiskMentorship `json:"atRiskMentorships"`
	TotalAtRisk       int                `json:"totalAtRisk"`
	TotalActive       int                `json:"totalActive"`
	RiskPercentage    int64              `json:"riskPercentage"`
}

// LoadStatus buckets a mentor by the number of active mentorships
type LoadStatus string

const (
	LoadStatusAvailable  LoadStatus = "AVAILABLE"
	LoadStatusOptimal    LoadStatus = "OPTIMAL"
	LoadStatusHigh       LoadStatus = "HIGH"
	LoadStatusOverloaded LoadStatus = "OVERLOADED"
)

// MentorLoad is one eligible mentor's current active load
type MentorLoad struct {
	MentorID    uuid.UUID  `json:"mentorId"`
	MentorName  string     `json:"mentorName"`
	CurrentLoad int        `json:"currentLoad"`
	LoadStatus  LoadStatus `json:"loadStatus"`
	Industry    *string    `json:"industry"`
	Experience  *int       `json:"experience"`
}

// MentorLoadReport lists mentor loads sorted by current load, highest first
type MentorLoadReport struct {
	MentorLoads       []MentorLoad `json:"mentorLoads"`
	TotalMentors      int          `json:"totalMentors"`
	AvailableMentors  int          `json:"availableMentors"`
	OverloadedMentors int          `json:"overloadedMentors"`
}

// SuggestedAssignment pairs a pending request with the mentor chosen for it
type SuggestedAssignment struct {
	MentorshipID uuid.UUID `json:"mentorshipId"`
	MenteeID     uuid.UUID `json:"menteeId"`
	MenteeName   string    `json:"menteeName"`
	MentorID     uuid.UUID `json:"mentorId"`
	MentorName   string    `json:"mentorName"`
}

// AutoBalanceResult holds assignment suggestions; nothing is persisted
type AutoBalanceResult struct {
	BalancingActions []string              `json:"balancingActions"`
	Assignments      []SuggestedAssignment `json:"assignments"`
	RebalancedCount  int                   `json:"rebalancedCount"`
	PendingRequests  int                   `json:"pendingRequests"`
	Message          string                `json:"message"`
}

// ProgramHealth is the coarse platform health indicator
type ProgramHealth string

const (
	ProgramHealthHealthy        ProgramHealth = "HEALTHY"
	ProgramHealthNeedsAttention ProgramHealth = "NEEDS_ATTENTION"
)

// GrowthMetrics are the platform-wide counters in program insights
type GrowthMetrics struct {
	TotalUsers        int   `json:"totalUsers"`
	TotalMentorships  int   `json:"totalMentorships"`
	ActiveMentorships int   `json:"activeMentorships"`
	EngagementRate    int64 `json:"engagementRate"`
}

// ProgramInsights is the platform-wide distribution report
type ProgramInsights struct {
	GrowthMetrics          GrowthMetrics  `json:"growthMetrics"`
	IndustryDistribution   map[string]int `json:"industryDistribution"`
	UniversityDistribution map[string]int `json:"universityDistribution"`
	ProgramHealth          ProgramHealth  `json:"programHealth"`
}

// PlatformOverview is the headline user counters shown on the admin dashboard
type PlatformOverview struct {
	TotalUsers     int `json:"totalUsers"`
	TotalStudents  int `json:"totalStudents"`
	TotalAlumni    int `json:"totalAlumni"`
	VerifiedAlumni int `json:"verifiedAlumni"`
	ActiveUsers    int `json:"activeUsers"`
}
