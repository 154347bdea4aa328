package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// ApplicationHandler exposes HTTP endpoints for job applications.
type ApplicationHandler struct {
	service *services.ApplicationService
}

// NewApplicationHandler constructs an application handler.
func NewApplicationHandler(service *services.ApplicationService) (*ApplicationHandler, error) {
	if service == nil {
		return nil, errors.New("application handler: service is required")
	}
	return &ApplicationHandler{service: service}, nil
}

type applyRequest struct {
	JobID          string `json:"job_id" validate:"required"`
	CandidateEmail string `json:"candidate_email" validate:"required,email"`
	CoverLetter    string `json:"cover_letter"`
}

type statusUpdateRequest struct {
	Status    string `json:"status" validate:"required"`
	Message   string `json:"message"`
	UpdatedBy string `json:"updated_by" validate:"required"`
}

// Apply submits a candidate's application for a job.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req applyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if _, err := h.service.Apply(c.Request.Context(), services.ApplyInput{
		JobID:          req.JobID,
		CandidateEmail: req.CandidateEmail,
		CoverLetter:    req.CoverLetter,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Application submitted successfully"})
}

// ListByCandidate returns a candidate's applications with job details.
func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	applications, err := h.service.ListByCandidate(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// ListByJob returns a job's applications with candidate profiles.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	applications, err := h.service.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// UpdateStatus transitions an application and notifies the candidate.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req statusUpdateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	application, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), services.StatusUpdateInput{
		Status:    req.Status,
		Message:   req.Message,
		UpdatedBy: req.UpdatedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":     "Application status updated",
		"application": application,
	})
}
