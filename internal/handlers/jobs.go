package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// JobHandler exposes HTTP endpoints for job postings.
type JobHandler struct {
	service *services.JobService
}

// NewJobHandler constructs a job handler.
func NewJobHandler(service *services.JobService) (*JobHandler, error) {
	if service == nil {
		return nil, errors.New("job handler: service is required")
	}
	return &JobHandler{service: service}, nil
}

type createJobRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Requirements    []string `json:"requirements"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"`
	Tags            []string `json:"tags"`
	CompanyEmail    string   `json:"company_email" validate:"required,email"`
	ExperienceLevel string   `json:"experience_level"`
}

// Create stores a new job posting and fans out match notifications.
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if !bindAndValidate(c, &req) {
		return
	}

	job, err := h.service.Create(c.Request.Context(), services.CreateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		Salary:          req.Salary,
		Tags:            req.Tags,
		CompanyEmail:    req.CompanyEmail,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":            "Job created successfully",
		"job":                job,
		"notifications_sent": true,
	})
}

// List returns every job posting.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

// Get returns a single job by id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// ListByCompany returns the jobs posted by one company.
func (h *JobHandler) ListByCompany(c *gin.Context) {
	jobs, err := h.service.ListByCompany(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

// Delete removes a job posting.
func (h *JobHandler) Delete(c *gin.Context) {
	job, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Job deleted successfully",
		"job":     job,
	})
}
