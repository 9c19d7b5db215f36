package handlers

import (
	"net/http"

	"github.com/alumniconnect/portal-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyticsHandler serves the admin reporting endpoints
type AnalyticsHandler struct {
	service services.AdminAnalyticsServiceInterface
}

func NewAnalyticsHandler(service services.AdminAnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// RegisterRoutes mounts the reporting endpoints on an already-authenticated admin group
func (h *AnalyticsHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/analytics", h.GetPlatformOverview)
	admin.GET("/analytics/mentorship-continuity", h.GetMentorshipContinuity)
	admin.GET("/analytics/effectiveness", h.GetEffectiveness)
	admin.GET("/analytics/risk-assessment", h.GetRiskAssessment)
	admin.GET("/analytics/mentor-load-balancing", h.GetMentorLoadBalancing)
	admin.GET("/analytics/mentor-load-balancing/:id", h.GetMentorLoad)
	admin.GET("/analytics/program-insights", h.GetProgramInsights)
	admin.POST("/analytics/cache/invalidate", h.InvalidateReports)
	admin.POST("/auto-balance-mentors", h.AutoBalanceMentors)
}

type mentorLoadParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func (h *AnalyticsHandler) GetPlatformOverview(c *gin.Context) {
	overview, err := h.service.GetPlatformOverview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *AnalyticsHandler) GetMentorshipContinuity(c *gin.Context) {
	report, err := h.service.GetContinuityMetrics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetEffectiveness(c *gin.Context) {
	report, err := h.service.GetEffectivenessMetrics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetRiskAssessment(c *gin.Context) {
	report, err := h.service.GetRiskAnalysis(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetMentorLoadBalancing(c *gin.Context) {
	report, err := h.service.GetMentorLoadBalancing(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetMentorLoad(c *gin.Context) {
	var params mentorLoadParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid mentor ID", ParseValidationErrors(err), err)
		return
	}

	load, err := h.service.GetMentorLoad(c.Request.Context(), uuid.MustParse(params.ID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, load)
}

func (h *AnalyticsHandler) GetProgramInsights(c *gin.Context) {
	report, err := h.service.GetProgramInsights(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) AutoBalanceMentors(c *gin.Context) {
	result, err := h.service.AutoBalanceMentors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) InvalidateReports(c *gin.Context) {
	if err := h.service.InvalidateReports(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
