package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/services"
	appErrors "github.com/hirewire/hirewire/pkg/errors"
	"github.com/hirewire/hirewire/pkg/response"
)

// ProfileHandler exposes HTTP endpoints for candidate profiles.
type ProfileHandler struct {
	service *services.ProfileService
}

// NewProfileHandler constructs a profile handler.
func NewProfileHandler(service *services.ProfileService) (*ProfileHandler, error) {
	if service == nil {
		return nil, errors.New("profile handler: service is required")
	}
	return &ProfileHandler{service: service}, nil
}

type profileRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Bio        string   `json:"bio"`
	ResumeURL  string   `json:"resume_url"`
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
}

// Save upserts the candidate's profile.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req profileRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.service.Save(c.Request.Context(), models.Profile{
		Email:      req.Email,
		Name:       req.Name,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		Bio:        req.Bio,
		ResumeURL:  req.ResumeURL,
		Phone:      req.Phone,
		Location:   req.Location,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Profile saved successfully"})
}

// Get returns a candidate's profile, synthesizing defaults when none saved.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// CompanyView returns the recruiter-facing view of a candidate.
func (h *ProfileHandler) CompanyView(c *gin.Context) {
	companyEmail := c.Query("company_email")
	if companyEmail == "" {
		response.Error(c, appErrors.NewBadRequest("company_email query parameter is required"))
		return
	}

	view, err := h.service.CompanyView(c.Request.Context(), c.Param("candidate_email"), companyEmail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}
