package model

import "time"

const (
	NotificationReminder = "reminder"
	NotificationAlert    = "alert"
	NotificationInfo     = "info"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationReminder, NotificationAlert, NotificationInfo:
		return true
	}
	return false
}

// Notification is a message queued for a recipient, usually keyed by the
// recipient's email address.
type Notification struct {
	ID           string    `json:"id"`
	RecipientKey string    `json:"recipientKey"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"createdAt"`
	Read         bool      `json:"read"`
}
