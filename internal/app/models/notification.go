package models

import "time"

// Notification defines a message delivered to a single user
type Notification struct {
	ID        string           `json:"id" db:"id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	UserID    string           `json:"userId" db:"user_id"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
