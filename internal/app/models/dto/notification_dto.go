package dto

import "github.com/oguzk/fitpulse/internal/app/models"

// NotificationListResponse wraps a notification listing with counts
type NotificationListResponse struct {
	Count         int                    `json:"count"`
	UnreadCount   int                    `json:"unreadCount"`
	Notifications []*models.Notification `json:"notifications"`
}

// BadgeListResponse wraps the badge catalog
type BadgeListResponse struct {
	Count  int             `json:"count"`
	Badges []*models.Badge `json:"badges"`
}

// UserBadgeListResponse wraps the badges a user has earned
type UserBadgeListResponse struct {
	Count  int                 `json:"count"`
	Badges []*models.UserBadge `json:"badges"`
}
