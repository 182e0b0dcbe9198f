package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	portEnv     = "PORT"
	logLevelEnv = "LOG_LEVEL"
	dotenvEnv   = "DOTENV_PATH"

	defaultPort       = "8080"
	defaultDotenvPath = ".env"
)

type Config struct {
	Port          string
	LogLevel      slog.Level
	StudyPlatform *StudyPlatformConfig
	TaskQueue     TaskQueueConfig
	Redis         *RedisConfig
	Worker        *WorkerConfig
	SMS           *SMSConfig
}

type TaskQueueConfig struct {
	PrimindTasksURL string
	QueueName       string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string

	// BatchTargetURL is where enqueued batch requests are delivered.
	BatchTargetURL string

	MaxRetries int
}

func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	queueName := os.Getenv("TASK_QUEUE_NAME")
	if queueName == "" {
		queueName = "default"
	}

	maxRetries := 3
	if v := os.Getenv("TASK_QUEUE_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	workerConfig, err := LoadWorkerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		LogLevel:      parseLogLevel(os.Getenv(logLevelEnv)),
		StudyPlatform: LoadStudyPlatformConfig(),
		TaskQueue: TaskQueueConfig{
			PrimindTasksURL: os.Getenv("PRIMIND_TASKS_URL"),
			QueueName:       queueName,

			GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),

			BatchTargetURL: os.Getenv("BATCH_TARGET_URL"),

			MaxRetries: maxRetries,
		},
		Redis:  redisConfig,
		Worker: workerConfig,
		SMS:    LoadSMSConfig(),
	}, nil
}

// loadDotenv reads a .env file when present. Variables already set in the
// environment win.
func loadDotenv() error {
	path := os.Getenv(dotenvEnv)
	if path == "" {
		path = defaultDotenvPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(ErrDotenvLoad, err)
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
