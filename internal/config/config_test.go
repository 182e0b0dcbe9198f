package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func noDotenv(t *testing.T) {
	t.Helper()
	t.Setenv(dotenvEnv, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	noDotenv(t)
	for _, key := range []string{
		portEnv, logLevelEnv, redisAddrEnv, redisDBEnv, smsProviderEnv,
		workerPerUserRateEnv, workerReportingIntervalEnv, workerMaxIteratorFailuresEnv, workerConfigCacheTTLSecondsEnv,
		studyPlatformTimeoutEnv, "TASK_QUEUE_NAME", "TASK_QUEUE_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != defaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Redis.Addr != defaultRedisAddr {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Worker.PerUserRate != defaultPerUserRate {
		t.Errorf("PerUserRate = %v", cfg.Worker.PerUserRate)
	}
	if cfg.Worker.ReportingInterval != defaultReportingInterval {
		t.Errorf("ReportingInterval = %d", cfg.Worker.ReportingInterval)
	}
	if cfg.Worker.MaxConsecutiveIteratorFailures != defaultMaxIteratorFailures {
		t.Errorf("MaxConsecutiveIteratorFailures = %d", cfg.Worker.MaxConsecutiveIteratorFailures)
	}
	if cfg.Worker.ConfigCacheTTL != defaultConfigCacheTTL {
		t.Errorf("ConfigCacheTTL = %v", cfg.Worker.ConfigCacheTTL)
	}
	if cfg.StudyPlatform.Timeout != defaultStudyPlatformTimeout {
		t.Errorf("StudyPlatform.Timeout = %v", cfg.StudyPlatform.Timeout)
	}
	if cfg.SMS.Provider != SMSProviderPlatform {
		t.Errorf("SMS.Provider = %q", cfg.SMS.Provider)
	}
	if cfg.TaskQueue.QueueName != "default" || cfg.TaskQueue.MaxRetries != 3 {
		t.Errorf("TaskQueue = %+v", cfg.TaskQueue)
	}
}

func TestLoadOverrides(t *testing.T) {
	noDotenv(t)
	t.Setenv(portEnv, "9090")
	t.Setenv(logLevelEnv, "DEBUG")
	t.Setenv(redisDBEnv, "3")
	t.Setenv(redisTLSEnv, "true")
	t.Setenv(workerPerUserRateEnv, "0")
	t.Setenv(workerReportingIntervalEnv, "10")
	t.Setenv(workerConfigCacheTTLSecondsEnv, "0")
	t.Setenv(studyPlatformTimeoutEnv, "5")
	t.Setenv(smsProviderEnv, "Twilio")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.Redis.DB != 3 || !cfg.Redis.TLS {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Worker.PerUserRate != 0 {
		t.Errorf("PerUserRate = %v, want 0", cfg.Worker.PerUserRate)
	}
	if cfg.Worker.ReportingInterval != 10 {
		t.Errorf("ReportingInterval = %d", cfg.Worker.ReportingInterval)
	}
	if cfg.Worker.ConfigCacheTTL != 0 {
		t.Errorf("ConfigCacheTTL = %v", cfg.Worker.ConfigCacheTTL)
	}
	if cfg.StudyPlatform.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.StudyPlatform.Timeout)
	}
	if cfg.SMS.Provider != SMSProviderTwilio {
		t.Errorf("Provider = %q", cfg.SMS.Provider)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "redis db", key: redisDBEnv, value: "abc", wantErr: ErrInvalidRedisDB},
		{name: "negative rate", key: workerPerUserRateEnv, value: "-1", wantErr: ErrInvalidWorkerSetting},
		{name: "rate not a number", key: workerPerUserRateEnv, value: "fast", wantErr: ErrInvalidWorkerSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noDotenv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STUDY_PLATFORM_URL=http://platform.test\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(dotenvEnv, path)
	t.Setenv(studyPlatformURLEnv, "")
	os.Unsetenv(studyPlatformURLEnv)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StudyPlatform.URL != "http://platform.test" {
		t.Errorf("URL = %q", cfg.StudyPlatform.URL)
	}
}

func TestValidateForRun(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr []error
	}{
		{
			name: "valid",
			cfg: &Config{
				StudyPlatform: &StudyPlatformConfig{URL: "http://platform"},
				Redis:         &RedisConfig{Addr: "localhost:6379"},
				SMS:           &SMSConfig{Provider: SMSProviderPlatform},
			},
		},
		{
			name: "everything missing",
			cfg: &Config{
				StudyPlatform: &StudyPlatformConfig{},
				Redis:         &RedisConfig{},
				SMS:           &SMSConfig{Provider: SMSProviderTwilio},
			},
			wantErr: []error{ErrStudyPlatformURLMissing, ErrRedisAddrMissing, ErrTwilioCredentialsMissing},
		},
		{
			name: "unknown sms provider",
			cfg: &Config{
				StudyPlatform: &StudyPlatformConfig{URL: "http://platform"},
				Redis:         &RedisConfig{Addr: "localhost:6379"},
				SMS:           &SMSConfig{Provider: "carrier-pigeon"},
			},
			wantErr: []error{ErrUnknownSMSProvider},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForRun(tt.cfg)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("error %v does not contain %v", err, want)
				}
			}
		})
	}
}
