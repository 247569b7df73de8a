package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	Notify(ctx context.Context, userID string, notificationType models.NotificationType, title, message string) error
	GetNotifications(ctx context.Context, userID string) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo repositories.INotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.INotificationRepository, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify creates a notification for a user. Notification delivery is
// best-effort from the caller's point of view; callers that must not
// fail on a delivery error should log and continue.
func (s *notificationServiceImpl) Notify(ctx context.Context, userID string, notificationType models.NotificationType, title, message string) error {
	notification := &models.Notification{
		ID:      uuid.New().String(),
		Type:    notificationType,
		Title:   title,
		Message: message,
		UserID:  userID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error().Err(err).
			Str("userId", userID).
			Str("type", string(notificationType)).
			Msg("Failed to create notification")
		return err
	}
	return nil
}

// GetNotifications retrieves a user's notifications with unread count
func (s *notificationServiceImpl) GetNotifications(ctx context.Context, userID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return &dto.NotificationListResponse{
		Count:         len(notifications),
		UnreadCount:   unread,
		Notifications: notifications,
	}, nil
}

// MarkRead marks one notification as read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead marks all of a user's notifications as read
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// DeleteNotification removes one of the user's notifications
func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.Delete(ctx, notificationID, userID)
}
