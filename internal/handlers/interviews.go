package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// InterviewHandler exposes HTTP endpoints for the AI interview flow.
type InterviewHandler struct {
	service *services.InterviewService
}

// NewInterviewHandler constructs an interview handler.
func NewInterviewHandler(service *services.InterviewService) (*InterviewHandler, error) {
	if service == nil {
		return nil, errors.New("interview handler: service is required")
	}
	return &InterviewHandler{service: service}, nil
}

type questionRequest struct {
	JobRole string `json:"job_role"`
	Answer  string `json:"answer"`
}

type saveInterviewRequest struct {
	CandidateEmail string           `json:"candidate_email" validate:"required,email"`
	JobID          string           `json:"job_id" validate:"required"`
	ApplicationID  string           `json:"application_id" validate:"required"`
	Score          float64          `json:"score"`
	MaxScore       float64          `json:"max_score"`
	Percentage     float64          `json:"percentage"`
	Performance    string           `json:"performance"`
	Answers        []map[string]any `json:"answers"`
	TimeTaken      int              `json:"time_taken"`
}

// NextQuestion returns the next interview question for a role.
func (h *InterviewHandler) NextQuestion(c *gin.Context) {
	var req questionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	question, err := h.service.NextQuestion(c.Request.Context(), req.JobRole, req.Answer)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// SaveResults records a completed interview and updates the application.
func (h *InterviewHandler) SaveResults(c *gin.Context) {
	var req saveInterviewRequest
	if !bindAndValidate(c, &req) {
		return
	}

	interview, err := h.service.SaveResults(c.Request.Context(), services.SaveInterviewInput{
		CandidateEmail: req.CandidateEmail,
		JobID:          req.JobID,
		ApplicationID:  req.ApplicationID,
		Score:          req.Score,
		MaxScore:       req.MaxScore,
		Percentage:     req.Percentage,
		Performance:    req.Performance,
		Answers:        req.Answers,
		TimeTaken:      req.TimeTaken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":   true,
		"message":   "Interview results saved successfully",
		"interview": interview,
	})
}

// ListByApplication returns every interview recorded for an application.
func (h *InterviewHandler) ListByApplication(c *gin.Context) {
	interviews, err := h.service.ListByApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interviews": interviews})
}

// ListByCandidate returns a candidate's interview history with job context.
func (h *InterviewHandler) ListByCandidate(c *gin.Context) {
	interviews, err := h.service.ListByCandidate(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interviews": interviews})
}

// ListByJob returns a job's interviews ranked by score.
func (h *InterviewHandler) ListByJob(c *gin.Context) {
	interviews, err := h.service.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interviews": interviews})
}
