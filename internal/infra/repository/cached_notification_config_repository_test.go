package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

func TestCachedConfigServesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockNotificationConfigRepository(ctrl)
	cfg := testutil.StudyConfig()

	mockRepo.EXPECT().
		GetNotificationConfig(gomock.Any(), "test-study").
		Return(cfg, nil).
		Times(2)

	now := time.Date(2018, 4, 30, 12, 0, 0, 0, time.UTC)
	cache := NewCachedNotificationConfigRepository(mockRepo, 5*time.Minute)
	cache.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := cache.GetNotificationConfig(ctx, "test-study")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != cfg {
			t.Errorf("call %d: got a different config instance", i)
		}
	}

	now = now.Add(5*time.Minute + time.Second)
	if _, err := cache.GetNotificationConfig(ctx, "test-study"); err != nil {
		t.Fatalf("unexpected error after expiry: %v", err)
	}
}

func TestCachedConfigDoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockNotificationConfigRepository(ctrl)
	gomock.InOrder(
		mockRepo.EXPECT().
			GetNotificationConfig(gomock.Any(), "test-study").
			Return(nil, errors.New("redis down")),
		mockRepo.EXPECT().
			GetNotificationConfig(gomock.Any(), "test-study").
			Return(testutil.StudyConfig(), nil),
	)

	cache := NewCachedNotificationConfigRepository(mockRepo, time.Minute)
	ctx := context.Background()

	if _, err := cache.GetNotificationConfig(ctx, "test-study"); err == nil {
		t.Fatal("expected error on first call")
	}
	if _, err := cache.GetNotificationConfig(ctx, "test-study"); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
}

func TestCachedConfigSaveInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockNotificationConfigRepository(ctrl)
	cfg := testutil.StudyConfig()

	mockRepo.EXPECT().GetNotificationConfig(gomock.Any(), "test-study").Return(cfg, nil).Times(2)
	mockRepo.EXPECT().SaveNotificationConfig(gomock.Any(), cfg).Return(nil)

	cache := NewCachedNotificationConfigRepository(mockRepo, time.Hour)
	ctx := context.Background()

	if _, err := cache.GetNotificationConfig(ctx, "test-study"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.SaveNotificationConfig(ctx, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.GetNotificationConfig(ctx, "test-study"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
