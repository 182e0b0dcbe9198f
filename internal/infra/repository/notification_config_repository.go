package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

const notificationConfigKeyPrefix = "notification:config:"

type notificationConfigRepository struct {
	client redis.Cmdable
}

func NewNotificationConfigRepository(client redis.Cmdable) domain.NotificationConfigRepository {
	return &notificationConfigRepository{
		client: client,
	}
}

func (r *notificationConfigRepository) GetNotificationConfig(ctx context.Context, studyID string) (*domain.StudyNotificationConfig, error) {
	key := notificationConfigKeyPrefix + studyID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrStudyConfigNotFound
		}
		return nil, err
	}

	var cfg domain.StudyNotificationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, ErrInvalidConfigData
	}
	if cfg.StudyID == "" {
		cfg.StudyID = studyID
	}
	cfg.Normalize()

	return &cfg, nil
}

func (r *notificationConfigRepository) SaveNotificationConfig(ctx context.Context, cfg *domain.StudyNotificationConfig) error {
	if cfg == nil || cfg.StudyID == "" {
		return ErrInvalidConfigData
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return ErrInvalidConfigData
	}

	return r.client.Set(ctx, notificationConfigKeyPrefix+cfg.StudyID, data, 0).Err()
}
