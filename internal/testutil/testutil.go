package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

const defaultRedisImage = "redis:8-alpine"

// SetupRedisContainer starts a throwaway Redis and returns a client for it.
// The test is skipped in short mode or when no container runtime is available.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	image := os.Getenv("REDIS_TEST_IMAGE")
	if image == "" {
		image = defaultRedisImage
	}

	container, err := redismodule.Run(ctx, image)
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// StudyConfig returns the burst configuration used across tests: a 9 day
// burst with a 3 day head blackout and 1 day tail blackout.
func StudyConfig() *domain.StudyNotificationConfig {
	cfg := &domain.StudyNotificationConfig{
		StudyID:                           "test-study",
		AppURL:                            "https://example.org/app",
		BurstDurationDays:                 9,
		BurstStartEventIDs:                []string{"enrollment", "custom:activityBurst2Start"},
		BurstTaskID:                       "study-burst-task",
		EarlyLateCutoffDays:               5,
		ExcludedDataGroups:                []string{"excluded-group-1", "excluded-group-2"},
		MissedCumulativeMessages:          []string{"message-cumulative"},
		MissedEarlyMessages:               []string{"message-early-1", "message-early-2"},
		MissedLateMessages:                []string{"message-late"},
		NotificationBlackoutDaysFromStart: 3,
		NotificationBlackoutDaysFromEnd:   1,
		NumActivitiesToCompleteBurst:      6,
		NumMissedConsecutiveDaysToNotify:  2,
		NumMissedDaysToNotify:             3,
		PreburstMessagesByDataGroup: map[string][]string{
			"required-group-1": {"message-pre-burst"},
		},
		RequiredSubpopulationGUIDs: []string{"required-subpop-1"},
	}
	cfg.Normalize()
	return cfg
}

// Participant returns an eligible participant in a UTC-7 zone consented to
// required-subpop-1.
func Participant(userID string) *domain.Participant {
	verified := true
	return &domain.Participant{
		ID:            userID,
		Phone:         &domain.Phone{Number: "425-555-5555", RegionCode: "US"},
		PhoneVerified: &verified,
		TimeZone:      "-07:00",
		DataGroups:    []string{"required-group-1"},
		ConsentHistories: map[string][]domain.ConsentRecord{
			"required-subpop-1": {
				{SubpopulationGUID: "required-subpop-1", SignedOn: time.Date(2018, 4, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
}
