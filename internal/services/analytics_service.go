package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alumniconnect/portal-api/internal/analytics"
	"github.com/alumniconnect/portal-api/internal/cache"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/repository"
	apperrors "github.com/alumniconnect/portal-api/pkg/errors"
	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	"github.com/alumniconnect/portal-api/pkg/profiling"
	"github.com/alumniconnect/portal-api/pkg/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Report names, used as cache keys and metric labels
const (
	reportContinuity    = "continuity"
	reportEffectiveness = "effectiveness"
	reportRisk          = "risk"
	reportLoad          = "load"
	reportInsights      = "insights"
	reportOverview      = "overview"
	reportMentorLoad    = "mentor_load"
	reportAutoBalance   = "auto_balance"
)

// Clock returns the current time; tests replace it
type Clock func() time.Time

// AdminAnalyticsService pulls snapshots from the record stores and runs the
// analytics engine over them. Read-only reports are cached; auto-balance never is.
type AdminAnalyticsService struct {
	mentorships repository.MentorshipStore
	users       repository.UserStore
	cache       cache.ReportCache
	now         Clock
}

// Option customizes an AdminAnalyticsService
type Option func(*AdminAnalyticsService)

// WithClock overrides the time source
func WithClock(clock Clock) Option {
	return func(s *AdminAnalyticsService) {
		s.now = clock
	}
}

// WithReportCache sets the report cache; the default caches nothing
func WithReportCache(reportCache cache.ReportCache) Option {
	return func(s *AdminAnalyticsService) {
		if reportCache != nil {
			s.cache = reportCache
		}
	}
}

// NewAdminAnalyticsService creates a new analytics service
func NewAdminAnalyticsService(mentorships repository.MentorshipStore, users repository.UserStore, opts ...Option) *AdminAnalyticsService {
	s := &AdminAnalyticsService{
		mentorships: mentorships,
		users:       users,
		cache:       cache.NoopReportCache{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetContinuityMetrics summarizes duration and completion of all mentorships
func (s *AdminAnalyticsService) GetContinuityMetrics(ctx context.Context) (*models.ContinuityMetrics, error) {
	return cachedReport(ctx, s, reportContinuity, func(ctx context.Context, _ time.Time) (models.ContinuityMetrics, error) {
		all, err := s.mentorships.ListAll(ctx)
		if err != nil {
			return models.ContinuityMetrics{}, fmt.Errorf("failed to load mentorships: %w", err)
		}
		return analytics.ContinuityMetrics(all), nil
	})
}

// GetEffectivenessMetrics summarizes ratings and meetings of completed mentorships
func (s *AdminAnalyticsService) GetEffectivenessMetrics(ctx context.Context) (*models.EffectivenessMetrics, error) {
	return cachedReport(ctx, s, reportEffectiveness, func(ctx context.Context, _ time.Time) (models.EffectivenessMetrics, error) {
		completed, err := s.mentorships.ListByStatus(ctx, models.MentorshipStatusCompleted)
		if err != nil {
			return models.EffectivenessMetrics{}, fmt.Errorf("failed to load completed mentorships: %w", err)
		}
		return analytics.EffectivenessMetrics(completed), nil
	})
}

// GetRiskAnalysis scores every active mentorship and lists the at-risk ones
func (s *AdminAnalyticsService) GetRiskAnalysis(ctx context.Context) (*models.RiskReport, error) {
	return cachedReport(ctx, s, reportRisk, func(ctx context.Context, now time.Time) (models.RiskReport, error) {
		active, err := s.mentorships.ListByStatus(ctx, models.MentorshipStatusActive)
		if err != nil {
			return models.RiskReport{}, fmt.Errorf("failed to load active mentorships: %w", err)
		}
		users, err := s.users.ListAll(ctx)
		if err != nil {
			return models.RiskReport{}, fmt.Errorf("failed to load users: %w", err)
		}

		report, err := analytics.RiskAnalysis(active, analytics.NewDirectory(users), now)
		if err != nil {
			return models.RiskReport{}, err
		}
		recordRiskGauges(&report)
		return report, nil
	})
}

// GetMentorLoadBalancing reports the active load of every eligible mentor
func (s *AdminAnalyticsService) GetMentorLoadBalancing(ctx context.Context) (*models.MentorLoadReport, error) {
	return cachedReport(ctx, s, reportLoad, func(ctx context.Context, _ time.Time) (models.MentorLoadReport, error) {
		mentors, err := s.users.ListEligibleMentors(ctx)
		if err != nil {
			return models.MentorLoadReport{}, fmt.Errorf("failed to load mentors: %w", err)
		}
		active, err := s.mentorships.ListByStatus(ctx, models.MentorshipStatusActive)
		if err != nil {
			return models.MentorLoadReport{}, fmt.Errorf("failed to load active mentorships: %w", err)
		}

		report := analytics.MentorLoads(mentors, active)
		metrics.OverloadedMentors.Set(float64(report.OverloadedMentors))
		return report, nil
	})
}

// GetMentorLoad reports the active load of a single eligible mentor
func (s *AdminAnalyticsService) GetMentorLoad(ctx context.Context, mentorID uuid.UUID) (*models.MentorLoad, error) {
	if mentorID == uuid.Nil {
		return nil, apperrors.InvalidInputError("mentorId", "must not be the nil UUID")
	}

	var load models.MentorLoad
	err := s.run(ctx, reportMentorLoad, func(ctx context.Context, _ time.Time) error {
		mentors, err := s.users.ListEligibleMentors(ctx)
		if err != nil {
			return fmt.Errorf("failed to load mentors: %w", err)
		}

		var mentor *models.UserRecord
		for i := range mentors {
			if mentors[i].ID == mentorID {
				mentor = &mentors[i]
				break
			}
		}
		if mentor == nil {
			return apperrors.NotFoundError("mentor " + mentorID.String())
		}

		active, err := s.mentorships.ListByMentor(ctx, mentorID, models.MentorshipStatusActive)
		if err != nil {
			return fmt.Errorf("failed to load mentor mentorships: %w", err)
		}

		load = analytics.MentorLoadOf(mentor, active)
		return nil
	}, attribute.String("mentor_id", mentorID.String()))
	if err != nil {
		return nil, err
	}
	return &load, nil
}

// GetProgramInsights reports growth, distributions and overall program health
func (s *AdminAnalyticsService) GetProgramInsights(ctx context.Context) (*models.ProgramInsights, error) {
	return cachedReport(ctx, s, reportInsights, func(ctx context.Context, _ time.Time) (models.ProgramInsights, error) {
		total, err := s.users.Count(ctx)
		if err != nil {
			return models.ProgramInsights{}, fmt.Errorf("failed to count users: %w", err)
		}
		users, err := s.users.ListAll(ctx)
		if err != nil {
			return models.ProgramInsights{}, fmt.Errorf("failed to load users: %w", err)
		}
		all, err := s.mentorships.ListAll(ctx)
		if err != nil {
			return models.ProgramInsights{}, fmt.Errorf("failed to load mentorships: %w", err)
		}
		return analytics.ProgramInsights(total, users, all), nil
	})
}

// GetPlatformOverview counts users by role and state
func (s *AdminAnalyticsService) GetPlatformOverview(ctx context.Context) (*models.PlatformOverview, error) {
	return cachedReport(ctx, s, reportOverview, func(ctx context.Context, _ time.Time) (models.PlatformOverview, error) {
		users, err := s.users.ListAll(ctx)
		if err != nil {
			return models.PlatformOverview{}, fmt.Errorf("failed to load users: %w", err)
		}
		return analytics.PlatformOverview(users), nil
	})
}

// AutoBalanceMentors suggests mentors for pending requests. Nothing is
// persisted and each call works on its own copy of the mentor loads.
func (s *AdminAnalyticsService) AutoBalanceMentors(ctx context.Context) (*models.AutoBalanceResult, error) {
	var result models.AutoBalanceResult
	err := s.run(ctx, reportAutoBalance, func(ctx context.Context, _ time.Time) error {
		pending, err := s.mentorships.ListByStatus(ctx, models.MentorshipStatusPending)
		if err != nil {
			return fmt.Errorf("failed to load pending mentorships: %w", err)
		}
		mentors, err := s.users.ListEligibleMentors(ctx)
		if err != nil {
			return fmt.Errorf("failed to load mentors: %w", err)
		}
		active, err := s.mentorships.ListByStatus(ctx, models.MentorshipStatusActive)
		if err != nil {
			return fmt.Errorf("failed to load active mentorships: %w", err)
		}
		users, err := s.users.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}

		loads := analytics.ActiveLoads(mentors, active)
		result, err = analytics.AutoBalance(pending, mentors, loads, analytics.NewDirectory(users))
		return err
	})
	if err != nil {
		metrics.AutoBalanceRuns.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.AutoBalanceRuns.WithLabelValues("success").Inc()
	metrics.AutoBalanceSuggestions.Add(float64(result.RebalancedCount))
	logger.Info("Auto-balance completed",
		zap.Int("pending_requests", result.PendingRequests),
		zap.Int("suggestions", result.RebalancedCount))

	return &result, nil
}

// InvalidateReports drops every cached report
func (s *AdminAnalyticsService) InvalidateReports(ctx context.Context) error {
	return s.cache.Flush(ctx)
}

// run wraps one report computation with a span, a duration metric and error logging.
// now is captured once so every rule in the run sees the same instant.
func (s *AdminAnalyticsService) run(ctx context.Context, report string, compute func(context.Context, time.Time) error, attrs ...attribute.KeyValue) error {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "analytics."+report, append(attrs, attribute.String("analytics.report", report))...)

	var err error
	profiling.Do(ctx, report, func(ctx context.Context) {
		err = compute(ctx, s.now())
	})

	tracing.EndSpan(span, err)
	duration := metrics.MeasureDuration(start)
	status := "success"
	if err != nil {
		status = "error"
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.LogError(err, "Analytics report failed", zap.String("report", report))
		}
	} else {
		logger.Debug("Analytics report computed", zap.String("report", report), zap.Float64("duration_seconds", duration))
	}
	metrics.AnalyticsReportDuration.WithLabelValues(report, status).Observe(duration)

	return err
}

// cachedReport serves report from the cache or computes and stores it.
// Cache failures are logged and never fail the request.
func cachedReport[T any](ctx context.Context, s *AdminAnalyticsService, report string, compute func(context.Context, time.Time) (T, error)) (*T, error) {
	key := cache.ReportKey(report)

	var cached T
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("Report cache read failed", zap.String("report", report), zap.Error(err))
	}

	var result T
	err = s.run(ctx, report, func(ctx context.Context, now time.Time) error {
		var computeErr error
		result, computeErr = compute(ctx, now)
		return computeErr
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		logger.Warn("Report cache write failed", zap.String("report", report), zap.Error(err))
	}

	return &result, nil
}

func recordRiskGauges(report *models.RiskReport) {
	counts := map[models.RiskLevel]int{models.RiskLevelMedium: 0, models.RiskLevelHigh: 0}
	for i := range report.AtRiskMentorships {
		counts[report.AtRiskMentorships[i].RiskLevel]++
	}
	for level, n := range counts {
		metrics.AtRiskMentorships.WithLabelValues(string(level)).Set(float64(n))
	}
}
