package app

import (
	"context"
	"testing"

	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(&config.RedisConfig{Addr: "redis:6379", DB: 2, TLS: true})
	if opts.Addr != "redis:6379" || opts.DB != 2 {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.TLSConfig == nil {
		t.Error("expected TLS config")
	}

	if opts := redisOptions(&config.RedisConfig{Addr: "redis:6379"}); opts.TLSConfig != nil {
		t.Error("expected no TLS config")
	}
}

func TestBuild(t *testing.T) {
	t.Setenv("BATCH_RESULTS_DISABLED", "true")

	ctx := context.Background()
	rdb, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	cfg := &config.Config{
		StudyPlatform: &config.StudyPlatformConfig{URL: "http://localhost:9999"},
		Worker: &config.WorkerConfig{
			PerUserRate:                    0,
			ReportingInterval:              10,
			MaxConsecutiveIteratorFailures: 1,
		},
		SMS: &config.SMSConfig{Provider: config.SMSProviderPlatform},
	}

	components, err := Build(ctx, cfg, rdb)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer func() { _ = components.Close() }()

	cfgIn := testutil.StudyConfig()
	if err := components.ConfigRepo.SaveNotificationConfig(ctx, cfgIn); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := components.ConfigRepo.GetNotificationConfig(ctx, cfgIn.StudyID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BurstTaskID != cfgIn.BurstTaskID {
		t.Errorf("burst task id = %q, want %q", got.BurstTaskID, cfgIn.BurstTaskID)
	}
}
