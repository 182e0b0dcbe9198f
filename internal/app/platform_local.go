//go:build !gcloud

package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/logging"
)

// NewBatchQueue returns nil when PRIMIND_TASKS_URL is unset.
func NewBatchQueue(ctx context.Context, cfg *config.Config) (taskqueue.BatchQueue, func() error, error) {
	if cfg.TaskQueue.PrimindTasksURL == "" {
		slog.WarnContext(ctx, "PRIMIND_TASKS_URL not set, batch enqueue disabled")

		return nil, nil, nil
	}

	tq := taskqueue.NewPrimindTasksClient(
		cfg.TaskQueue.PrimindTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.BatchTargetURL,
		cfg.TaskQueue.MaxRetries,
	)

	slog.InfoContext(ctx, "task queue initialized",
		slog.String("type", "primind_tasks"),
		slog.String("url", cfg.TaskQueue.PrimindTasksURL),
		slog.String("queue", cfg.TaskQueue.QueueName),
	)

	return tq, nil, nil
}

func InitObservability(ctx context.Context, module logging.Module, version string, level slog.Leveler) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "burst-notification"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: module,
		LogLevel:      level,
	})
}
