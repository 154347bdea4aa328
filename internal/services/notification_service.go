package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/realtime"
	"github.com/hirewire/hirewire/internal/store"
	apperrors "github.com/hirewire/hirewire/pkg/errors"
	"github.com/hirewire/hirewire/pkg/logger"
	"github.com/hirewire/hirewire/pkg/metrics"
)

// DispatchInput defines attributes required to create a notification.
type DispatchInput struct {
	UserEmail string
	UserType  string
	Message   string
	Type      string
	Data      map[string]any
}

// NotificationService owns the notification log and orchestrates
// persist-then-push delivery through the live connection registry.
type NotificationService struct {
	store *store.Store
	hub   *realtime.Hub
	log   *zap.Logger
}

// NewNotificationService constructs a NotificationService. The hub may be nil,
// in which case notifications are persisted without live delivery.
func NewNotificationService(st *store.Store, hub *realtime.Hub) (*NotificationService, error) {
	if st == nil {
		return nil, errors.New("notification service: store is required")
	}
	return &NotificationService{
		store: st,
		hub:   hub,
		log:   logger.WithModule("notifications"),
	}, nil
}

// Dispatch appends a notification to the log and then attempts a best-effort
// live push. Persistence is the only success criterion: a disconnected or
// failing recipient channel never causes the dispatch to fail.
func (s *NotificationService) Dispatch(ctx context.Context, input DispatchInput) (*models.Notification, error) {
	email := strings.TrimSpace(input.UserEmail)
	if email == "" {
		return nil, apperrors.NewBadRequest("user_email is required")
	}
	role := strings.ToLower(strings.TrimSpace(input.UserType))
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequest("Invalid user type")
	}

	category := strings.TrimSpace(input.Type)
	if category == "" {
		category = "info"
	}

	var notifications []models.Notification
	if err := s.store.Load(store.Notifications, &notifications); err != nil {
		return nil, fmt.Errorf("notification service: load log: %w", err)
	}

	notification := models.Notification{
		ID:        s.store.NextID(store.Notifications),
		UserEmail: email,
		UserType:  role,
		Message:   input.Message,
		Type:      category,
		Read:      false,
		Data:      input.Data,
		CreatedAt: time.Now().UTC(),
	}

	notifications = append(notifications, notification)
	if err := s.store.Save(store.Notifications, notifications); err != nil {
		return nil, fmt.Errorf("notification service: append: %w", err)
	}
	metrics.NotificationsDispatched.WithLabelValues(category).Inc()

	s.push(notification)
	return &notification, nil
}

// ListForUser returns the recipient's notifications newest first, optionally
// restricted to unread entries.
func (s *NotificationService) ListForUser(ctx context.Context, email string, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.store.Load(store.Notifications, &notifications); err != nil {
		return nil, fmt.Errorf("notification service: load log: %w", err)
	}

	matched := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.UserEmail != email {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		matched = append(matched, n)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// MarkRead flips the read flag and stamps the read timestamp on the first
// notification with the given id. An unknown id is a no-op, and repeated
// calls leave the record unchanged.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	var notifications []models.Notification
	if err := s.store.Load(store.Notifications, &notifications); err != nil {
		return fmt.Errorf("notification service: load log: %w", err)
	}

	for i := range notifications {
		if notifications[i].ID == notificationID {
			if !notifications[i].Read {
				now := time.Now().UTC()
				notifications[i].Read = true
				notifications[i].ReadAt = &now
			}
			break
		}
	}

	if err := s.store.Save(store.Notifications, notifications); err != nil {
		return fmt.Errorf("notification service: mark read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification for the recipient as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, email string) error {
	var notifications []models.Notification
	if err := s.store.Load(store.Notifications, &notifications); err != nil {
		return fmt.Errorf("notification service: load log: %w", err)
	}

	now := time.Now().UTC()
	for i := range notifications {
		if notifications[i].UserEmail == email {
			notifications[i].Read = true
			readAt := now
			notifications[i].ReadAt = &readAt
		}
	}

	if err := s.store.Save(store.Notifications, notifications); err != nil {
		return fmt.Errorf("notification service: mark all read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications for the recipient.
func (s *NotificationService) UnreadCount(ctx context.Context, email string) (int, error) {
	var notifications []models.Notification
	if err := s.store.Load(store.Notifications, &notifications); err != nil {
		return 0, fmt.Errorf("notification service: load log: %w", err)
	}

	count := 0
	for _, n := range notifications {
		if n.UserEmail == email && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *NotificationService) push(notification models.Notification) {
	if s.hub == nil {
		return
	}

	envelope := realtime.Envelope{Type: "notification", Data: notification}
	if s.hub.Send(notification.UserEmail, envelope) {
		metrics.NotificationPushes.WithLabelValues("delivered").Inc()
		return
	}

	metrics.NotificationPushes.WithLabelValues("offline").Inc()
	s.log.Debug("recipient offline, notification retrievable via polling",
		zap.String("user_email", notification.UserEmail),
		zap.String("id", notification.ID))
}
