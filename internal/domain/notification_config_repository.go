package domain

import "context"

//go:generate mockgen -source=notification_config_repository.go -destination=notification_config_repository_mock.go -package=domain

type NotificationConfigRepository interface {
	GetNotificationConfig(ctx context.Context, studyID string) (*StudyNotificationConfig, error)
	SaveNotificationConfig(ctx context.Context, cfg *StudyNotificationConfig) error
}
