package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) GetByUserID(_ context.Context, userID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("Notification not found")
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id, userID string) error {
	for i, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("Notification not found")
}

func TestNotifyAndList(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo, zerolog.Nop())

	require.NoError(t, service.Notify(context.Background(), "u-1", models.NotificationBadgeAwarded, "Badge earned", "You earned a badge"))
	require.NoError(t, service.Notify(context.Background(), "u-2", models.NotificationGymApproved, "Gym approved", "Your gym is live"))

	resp, err := service.GetNotifications(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 1, resp.UnreadCount)
	assert.Equal(t, models.NotificationBadgeAwarded, resp.Notifications[0].Type)
}

func TestMarkReadIsOwnerScoped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo, zerolog.Nop())

	require.NoError(t, service.Notify(context.Background(), "u-1", models.NotificationChallengeCompleted, "Done", "Challenge completed"))
	id := repo.notifications[0].ID

	// Another user cannot touch someone else's notification.
	err := service.MarkRead(context.Background(), "u-2", id)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	require.NoError(t, service.MarkRead(context.Background(), "u-1", id))

	resp, err := service.GetNotifications(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Zero(t, resp.UnreadCount)
}

func TestDeleteNotificationIsOwnerScoped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo, zerolog.Nop())

	require.NoError(t, service.Notify(context.Background(), "u-1", models.NotificationChallengeInvite, "Invite", "Join this challenge"))
	id := repo.notifications[0].ID

	err := service.DeleteNotification(context.Background(), "u-2", id)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	require.NoError(t, service.DeleteNotification(context.Background(), "u-1", id))
	assert.Empty(t, repo.notifications)
}
