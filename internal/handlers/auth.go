package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// AuthHandler exposes HTTP endpoints for account registration and login.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service *services.AuthService) (*AuthHandler, error) {
	if service == nil {
		return nil, errors.New("auth handler: service is required")
	}
	return &AuthHandler{service: service}, nil
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Name     string `json:"name"`
}

// Signup registers a new account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Type:     req.Type,
		Name:     req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login checks credentials against the stored account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password, req.Type)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}
