package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/internal/store"
	appErrors "github.com/hirewire/hirewire/pkg/errors"
	"github.com/hirewire/hirewire/pkg/response"
)

// SystemHandler exposes the service banner, health, stats, and reset endpoints.
type SystemHandler struct {
	store     *store.Store
	analytics *services.AnalyticsService
}

// NewSystemHandler constructs a system handler.
func NewSystemHandler(st *store.Store, analytics *services.AnalyticsService) (*SystemHandler, error) {
	if st == nil || analytics == nil {
		return nil, errors.New("system handler: store and analytics service are required")
	}
	return &SystemHandler{store: st, analytics: analytics}, nil
}

// Root returns the service banner.
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"message": "AI Interview Platform API",
		"version": "1.0",
	})
}

// Health reports liveness.
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Stats returns per-collection record counts.
func (h *SystemHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.analytics.PlatformTotals(c.Request.Context()))
}

// Reset truncates one collection, or all of them. Test support only.
func (h *SystemHandler) Reset(c *gin.Context) {
	target := c.Param("type")

	if target == "all" {
		for _, collection := range store.AllCollections {
			if err := h.store.Reset(collection); err != nil {
				response.Error(c, err)
				return
			}
		}
		response.Success(c, http.StatusOK, gin.H{"message": "All data reset successfully"})
		return
	}

	if !lo.Contains(store.AllCollections, target) {
		response.Error(c, appErrors.NewBadRequest("Invalid data type"))
		return
	}

	if err := h.store.Reset(target); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": fmt.Sprintf("%s data reset successfully", target)})
}
