package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	workerPerUserRateEnv           = "WORKER_PER_USER_RATE"
	workerReportingIntervalEnv     = "WORKER_REPORTING_INTERVAL"
	workerMaxIteratorFailuresEnv   = "WORKER_MAX_CONSECUTIVE_ITERATOR_FAILURES"
	workerConfigCacheTTLSecondsEnv = "WORKER_CONFIG_CACHE_TTL_SECONDS"

	defaultPerUserRate         = 1.0
	defaultReportingInterval   = 250
	defaultMaxIteratorFailures = 5
	defaultConfigCacheTTL      = 5 * time.Minute
)

type WorkerConfig struct {
	// PerUserRate is participants per second. Zero disables the limiter.
	PerUserRate                    float64
	ReportingInterval              int
	MaxConsecutiveIteratorFailures int
	ConfigCacheTTL                 time.Duration
}

func LoadWorkerConfig() (*WorkerConfig, error) {
	cfg := &WorkerConfig{
		PerUserRate:                    defaultPerUserRate,
		ReportingInterval:              defaultReportingInterval,
		MaxConsecutiveIteratorFailures: defaultMaxIteratorFailures,
		ConfigCacheTTL:                 defaultConfigCacheTTL,
	}

	if v := os.Getenv(workerPerUserRateEnv); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidWorkerSetting, workerPerUserRateEnv, v)
		}
		cfg.PerUserRate = parsed
	}

	if v := os.Getenv(workerReportingIntervalEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.ReportingInterval = parsed
		}
	}

	if v := os.Getenv(workerMaxIteratorFailuresEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.MaxConsecutiveIteratorFailures = parsed
		}
	}

	if v := os.Getenv(workerConfigCacheTTLSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			cfg.ConfigCacheTTL = time.Duration(parsed) * time.Second
		}
	}

	return cfg, nil
}
