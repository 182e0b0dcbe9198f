// Package app builds the notification service from configuration. It is
// shared by the HTTP server and the CLI.
package app

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/batchrecorder"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/repository"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/sms"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/studyplatform"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/metrics"
	"github.com/KasumiMercury/primind-burst-notification/internal/service/notification"
	"github.com/KasumiMercury/primind-burst-notification/internal/service/template"
)

func redisOptions(cfg *config.RedisConfig) *redis.Options {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}

// NewRedisClient connects, instruments and pings Redis.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(redisOptions(cfg))

	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
	}

	if err := redisotel.InstrumentMetrics(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	slog.InfoContext(ctx, "redis connected", slog.String("addr", cfg.Addr))

	return client, nil
}

// Components is everything a batch run needs.
type Components struct {
	ConfigRepo domain.NotificationConfigRepository
	Service    *notification.Service
	Recorder   domain.BatchResultRecorder
}

func (c *Components) Close() error {
	if c.Recorder == nil {
		return nil
	}
	return c.Recorder.Close()
}

// Build wires the repositories, study platform client, SMS sender and batch
// recorder into a notification service.
func Build(ctx context.Context, cfg *config.Config, rdb redis.Cmdable) (*Components, error) {
	configRepo := repository.NewCachedNotificationConfigRepository(
		repository.NewNotificationConfigRepository(rdb),
		cfg.Worker.ConfigCacheTTL,
	)
	logRepo := repository.NewNotificationLogRepository(rdb)
	workerLogRepo := repository.NewWorkerLogRepository(rdb)

	platform := studyplatform.NewClient(cfg.StudyPlatform.URL, cfg.StudyPlatform.APIKey, cfg.StudyPlatform.Timeout)

	sender, err := sms.NewSender(cfg.SMS, platform)
	if err != nil {
		return nil, err
	}

	notificationMetrics, err := metrics.NewNotificationMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notification metrics: %w", err)
	}

	recorder, err := batchrecorder.NewRecorder(ctx, batchrecorder.LoadConfig())
	if err != nil {
		return nil, errors.Join(errors.New("failed to initialize batch result recorder"), err)
	}

	svc := notification.NewService(
		configRepo,
		platform,
		platform,
		logRepo,
		workerLogRepo,
		sender,
		template.NewResolver(platform),
		notification.WithPerUserRate(cfg.Worker.PerUserRate),
		notification.WithReportingInterval(cfg.Worker.ReportingInterval),
		notification.WithMaxConsecutiveIteratorFailures(cfg.Worker.MaxConsecutiveIteratorFailures),
		notification.WithMetrics(notificationMetrics),
		notification.WithResultRecorder(recorder),
	)

	slog.InfoContext(ctx, "notification service initialized",
		slog.String("study_platform_url", cfg.StudyPlatform.URL),
		slog.String("sms_provider", string(cfg.SMS.Provider)),
		slog.Float64("per_user_rate", cfg.Worker.PerUserRate),
	)

	return &Components{
		ConfigRepo: configRepo,
		Service:    svc,
		Recorder:   recorder,
	}, nil
}
