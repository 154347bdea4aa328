package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/pkg/response"
)

// NotificationHandler exposes HTTP endpoints for notifications.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler constructs a notification handler.
func NewNotificationHandler(service *services.NotificationService) (*NotificationHandler, error) {
	if service == nil {
		return nil, errors.New("notification handler: service is required")
	}
	return &NotificationHandler{service: service}, nil
}

type createNotificationRequest struct {
	UserEmail string         `json:"user_email" validate:"required,email"`
	UserType  string         `json:"user_type" validate:"required"`
	Message   string         `json:"message" validate:"required"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
}

// Create persists a notification and pushes it to a live connection.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	notification, err := h.service.Dispatch(c.Request.Context(), services.DispatchInput{
		UserEmail: req.UserEmail,
		UserType:  req.UserType,
		Message:   req.Message,
		Type:      req.Type,
		Data:      req.Data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":      "Notification created",
		"notification": notification,
	})
}

// List returns a user's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := parseBoolQuery(c, "unread_only")

	notifications, err := h.service.ListForUser(c.Request.Context(), c.Param("email"), unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead marks a single notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead marks every notification for a user as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// UnreadCount returns the user's unread notification count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread_count": count})
}
