package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_log_repository.go -destination=notification_log_repository_mock.go -package=domain

// NotificationLogRepository is the append-only history of notifications sent
// to each user. Only the most recent record is ever read back.
type NotificationLogRepository interface {
	// GetLastNotification returns ErrNotificationNotFound when the user has
	// never been notified.
	GetLastNotification(ctx context.Context, userID string) (*UserNotification, error)
	AppendNotification(ctx context.Context, notification *UserNotification) error
}

// WorkerLogRepository stores completion markers for batch runs.
type WorkerLogRepository interface {
	WriteWorkerLog(ctx context.Context, tag string, finishedAt time.Time) error
	GetLatestWorkerLog(ctx context.Context) (*WorkerLog, error)
}
