package domain

import "time"

// UserNotification records one SMS sent to a participant.
type UserNotification struct {
	UserID  string
	SentAt  time.Time
	Type    NotificationType
	Message string
}

func NewUserNotification(userID string, sentAt time.Time, t NotificationType, message string) *UserNotification {
	return &UserNotification{
		UserID:  userID,
		SentAt:  sentAt,
		Type:    t,
		Message: message,
	}
}

type WorkerLog struct {
	WorkerID   string
	FinishedAt time.Time
	Tag        string
}
