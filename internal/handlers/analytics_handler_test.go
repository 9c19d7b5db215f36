package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alumniconnect/portal-api/internal/models"
	apperrors "github.com/alumniconnect/portal-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsService struct {
	mock.Mock
}

func (m *mockAnalyticsService) GetContinuityMetrics(ctx context.Context) (*models.ContinuityMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContinuityMetrics), args.Error(1)
}

func (m *mockAnalyticsService) GetEffectivenessMetrics(ctx context.Context) (*models.EffectivenessMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EffectivenessMetrics), args.Error(1)
}

func (m *mockAnalyticsService) GetRiskAnalysis(ctx context.Context) (*models.RiskReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskReport), args.Error(1)
}

func (m *mockAnalyticsService) GetMentorLoadBalancing(ctx context.Context) (*models.MentorLoadReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorLoadReport), args.Error(1)
}

func (m *mockAnalyticsService) GetMentorLoad(ctx context.Context, mentorID uuid.UUID) (*models.MentorLoad, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorLoad), args.Error(1)
}

func (m *mockAnalyticsService) GetProgramInsights(ctx context.Context) (*models.ProgramInsights, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgramInsights), args.Error(1)
}

func (m *mockAnalyticsService) GetPlatformOverview(ctx context.Context) (*models.PlatformOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformOverview), args.Error(1)
}

func (m *mockAnalyticsService) AutoBalanceMentors(ctx context.Context) (*models.AutoBalanceResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AutoBalanceResult), args.Error(1)
}

func (m *mockAnalyticsService) InvalidateReports(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newAnalyticsRouter(svc *mockAnalyticsService) *gin.Engine {
	router := gin.New()
	NewAnalyticsHandler(svc).RegisterRoutes(router.Group("/api/v1/admin"))
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
	return w
}

func TestAnalyticsHandler_Reports(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("GetPlatformOverview", mock.Anything).Return(&models.PlatformOverview{TotalUsers: 5, ActiveUsers: 4}, nil)
	svc.On("GetContinuityMetrics", mock.Anything).Return(&models.ContinuityMetrics{CompletionRate: 12.5}, nil)
	svc.On("GetEffectivenessMetrics", mock.Anything).Return(&models.EffectivenessMetrics{SuccessRate: 75}, nil)
	svc.On("GetRiskAnalysis", mock.Anything).Return(&models.RiskReport{AtRiskMentorships: []models.AtRiskMentorship{}}, nil)
	svc.On("GetMentorLoadBalancing", mock.Anything).Return(&models.MentorLoadReport{MentorLoads: []models.MentorLoad{}}, nil)
	svc.On("GetProgramInsights", mock.Anything).Return(&models.ProgramInsights{ProgramHealth: models.ProgramHealthHealthy}, nil)

	router := newAnalyticsRouter(svc)

	tests := []struct {
		path     string
		contains string
	}{
		{"/api/v1/admin/analytics", `"totalUsers":5`},
		{"/api/v1/admin/analytics/mentorship-continuity", `"completionRate":12.5`},
		{"/api/v1/admin/analytics/effectiveness", `"successRate":75`},
		{"/api/v1/admin/analytics/risk-assessment", `"atRiskMentorships":[]`},
		{"/api/v1/admin/analytics/mentor-load-balancing", `"mentorLoads":[]`},
		{"/api/v1/admin/analytics/program-insights", `"programHealth":"HEALTHY"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestAnalyticsHandler_AutoBalance(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("AutoBalanceMentors", mock.Anything).Return(&models.AutoBalanceResult{
		BalancingActions: []string{"Suggested assignment: Ben to Ada"},
		Assignments:      []models.SuggestedAssignment{},
		RebalancedCount:  1,
		PendingRequests:  2,
		Message:          "Load balancing analysis completed",
	}, nil)

	w := serve(newAnalyticsRouter(svc), http.MethodPost, "/api/v1/admin/auto-balance-mentors")

	require.Equal(t, http.StatusOK, w.Code)
	var body models.AutoBalanceResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.RebalancedCount)
	assert.Equal(t, 2, body.PendingRequests)
	assert.Equal(t, []string{"Suggested assignment: Ben to Ada"}, body.BalancingActions)
}

func TestAnalyticsHandler_GetMentorLoad(t *testing.T) {
	svc := new(mockAnalyticsService)
	known, unknown := uuid.New(), uuid.New()
	svc.On("GetMentorLoad", mock.Anything, known).Return(&models.MentorLoad{MentorID: known, CurrentLoad: 2, LoadStatus: models.LoadStatusOptimal}, nil)
	svc.On("GetMentorLoad", mock.Anything, unknown).Return(nil, apperrors.NotFoundError("mentor "+unknown.String()))

	router := newAnalyticsRouter(svc)

	w := serve(router, http.MethodGet, "/api/v1/admin/analytics/mentor-load-balancing/"+known.String())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loadStatus":"OPTIMAL"`)

	w = serve(router, http.MethodGet, "/api/v1/admin/analytics/mentor-load-balancing/"+unknown.String())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodGet, "/api/v1/admin/analytics/mentor-load-balancing/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be a valid UUID")
}

func TestAnalyticsHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing reference",
			err:          fmt.Errorf("mentorship 1: %w", apperrors.MissingReferenceError("mentor", "42")),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Inconsistent mentorship data"}`,
		},
		{
			name:         "storage failure",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAnalyticsService)
			svc.On("GetRiskAnalysis", mock.Anything).Return(nil, tt.err)

			w := serve(newAnalyticsRouter(svc), http.MethodGet, "/api/v1/admin/analytics/risk-assessment")

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAnalyticsHandler_InvalidateReports(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("InvalidateReports", mock.Anything).Return(nil).Once()

	w := serve(newAnalyticsRouter(svc), http.MethodPost, "/api/v1/admin/analytics/cache/invalidate")

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_ExposesNoUserLifecycleWrites(t *testing.T) {
	router := newAnalyticsRouter(new(mockAnalyticsService))
	id := uuid.New().String()

	for _, action := range []string{"verify", "activate", "deactivate"} {
		w := serve(router, http.MethodPut, "/api/v1/admin/users/"+id+"/"+action)
		assert.Equal(t, http.StatusNotFound, w.Code, action)
	}

	for _, route := range router.Routes() {
		assert.NotEqual(t, http.MethodPut, route.Method, route.Path)
	}
}
