package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

const (
	notificationLogKeyPrefix = "notification:log:"
	workerLogKeyPrefix       = "notification:worker_log:"

	// WorkerID names this worker in the worker log.
	WorkerID = "ActivityNotificationWorker"
)

// Each user's log is a sorted set scored by send time in milliseconds, so the
// newest record is the highest score.
type notificationRecord struct {
	UserID           string `json:"userId"`
	NotificationTime int64  `json:"notificationTime"`
	NotificationType string `json:"notificationType,omitempty"`
	Message          string `json:"message"`
}

type workerLogRecord struct {
	WorkerID   string `json:"workerId"`
	FinishTime int64  `json:"finishTime"`
	Tag        string `json:"tag,omitempty"`
}

type notificationLogRepository struct {
	client redis.Cmdable
}

func NewNotificationLogRepository(client redis.Cmdable) domain.NotificationLogRepository {
	return &notificationLogRepository{
		client: client,
	}
}

func (r *notificationLogRepository) GetLastNotification(ctx context.Context, userID string) (*domain.UserNotification, error) {
	key := notificationLogKeyPrefix + userID

	members, err := r.client.ZRevRange(ctx, key, 0, 0).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.ErrNotificationNotFound
	}

	var record notificationRecord
	if err := json.Unmarshal([]byte(members[0]), &record); err != nil {
		return nil, ErrInvalidNotificationData
	}

	return &domain.UserNotification{
		UserID:  record.UserID,
		SentAt:  time.UnixMilli(record.NotificationTime),
		Type:    domain.ParseNotificationType(record.NotificationType),
		Message: record.Message,
	}, nil
}

func (r *notificationLogRepository) AppendNotification(ctx context.Context, notification *domain.UserNotification) error {
	if notification == nil || notification.UserID == "" {
		return ErrInvalidNotificationData
	}

	millis := notification.SentAt.UnixMilli()
	record := notificationRecord{
		UserID:           notification.UserID,
		NotificationTime: millis,
		NotificationType: notification.Type.String(),
		Message:          notification.Message,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidNotificationData
	}

	return r.client.ZAdd(ctx, notificationLogKeyPrefix+notification.UserID, redis.Z{
		Score:  float64(millis),
		Member: string(data),
	}).Err()
}

type workerLogRepository struct {
	client redis.Cmdable
}

func NewWorkerLogRepository(client redis.Cmdable) domain.WorkerLogRepository {
	return &workerLogRepository{
		client: client,
	}
}

func (r *workerLogRepository) WriteWorkerLog(ctx context.Context, tag string, finishedAt time.Time) error {
	millis := finishedAt.UnixMilli()
	data, err := json.Marshal(workerLogRecord{
		WorkerID:   WorkerID,
		FinishTime: millis,
		Tag:        tag,
	})
	if err != nil {
		return ErrInvalidWorkerLogData
	}

	return r.client.ZAdd(ctx, workerLogKeyPrefix+WorkerID, redis.Z{
		Score:  float64(millis),
		Member: string(data),
	}).Err()
}

func (r *workerLogRepository) GetLatestWorkerLog(ctx context.Context) (*domain.WorkerLog, error) {
	members, err := r.client.ZRevRange(ctx, workerLogKeyPrefix+WorkerID, 0, 0).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.ErrWorkerLogNotFound
	}

	var record workerLogRecord
	if err := json.Unmarshal([]byte(members[0]), &record); err != nil {
		return nil, ErrInvalidWorkerLogData
	}

	return &domain.WorkerLog{
		WorkerID:   record.WorkerID,
		FinishedAt: time.UnixMilli(record.FinishTime),
		Tag:        record.Tag,
	}, nil
}
