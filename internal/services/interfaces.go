package services

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
)

// AdminAnalyticsServiceInterface defines the admin reporting operations
type AdminAnalyticsServiceInterface interface {
	GetContinuityMetrics(ctx context.Context) (*models.ContinuityMetrics, error)
	GetEffectivenessMetrics(ctx context.Context) (*models.EffectivenessMetrics, error)
	GetRiskAnalysis(ctx context.Context) (*models.RiskReport, error)
	GetMentorLoadBalancing(ctx context.Context) (*models.MentorLoadReport, error)
	GetMentorLoad(ctx context.Context, mentorID uuid.UUID) (*models.MentorLoad, error)
	GetProgramInsights(ctx context.Context) (*models.ProgramInsights, error)
	GetPlatformOverview(ctx context.Context) (*models.PlatformOverview, error)
	AutoBalanceMentors(ctx context.Context) (*models.AutoBalanceResult, error)
	InvalidateReports(ctx context.Context) error
}

var _ AdminAnalyticsServiceInterface = (*AdminAnalyticsService)(nil)
