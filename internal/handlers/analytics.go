package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// AnalyticsHandler exposes the reporting endpoints.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler constructs an analytics handler.
func NewAnalyticsHandler(service *services.AnalyticsService) (*AnalyticsHandler, error) {
	if service == nil {
		return nil, errors.New("analytics handler: service is required")
	}
	return &AnalyticsHandler{service: service}, nil
}

// Candidate returns a candidate's application statistics.
func (h *AnalyticsHandler) Candidate(c *gin.Context) {
	stats, recent, err := h.service.CandidateAnalytics(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"statistics":          stats,
		"recent_applications": recent,
	})
}

// Company returns a company's hiring statistics.
func (h *AnalyticsHandler) Company(c *gin.Context) {
	stats, recent, err := h.service.CompanyAnalytics(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"statistics":          stats,
		"recent_applications": recent,
	})
}

// Activities returns the user's merged activity feed.
func (h *AnalyticsHandler) Activities(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 10)

	activities, err := h.service.Activities(c.Request.Context(), c.Param("email"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"activities": activities})
}
