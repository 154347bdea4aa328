package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// MatchHandler exposes the job matching endpoint.
type MatchHandler struct {
	service *services.MatchService
}

// NewMatchHandler constructs a match handler.
func NewMatchHandler(service *services.MatchService) (*MatchHandler, error) {
	if service == nil {
		return nil, errors.New("match handler: service is required")
	}
	return &MatchHandler{service: service}, nil
}

// MatchedJobs returns the open jobs ranked against the candidate's skills.
func (h *MatchHandler) MatchedJobs(c *gin.Context) {
	matched, err := h.service.MatchedJobs(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"matched_jobs": matched})
}
