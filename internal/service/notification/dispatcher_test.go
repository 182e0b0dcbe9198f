package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

func TestDispatcherSendsThenLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sms := domain.NewMockSMSSender(ctrl)
	logRepo := domain.NewMockNotificationLogRepository(ctrl)
	now := time.Date(2018, 5, 3, 18, 0, 0, 0, time.UTC)
	p := testutil.Participant("user-1")

	gomock.InOrder(
		sms.EXPECT().SendSMS(gomock.Any(), "test-study", p, "hello").Return(nil),
		logRepo.EXPECT().AppendNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *domain.UserNotification) error {
				if n.UserID != "user-1" || n.Type != domain.NotificationTypeLate || n.Message != "hello" || !n.SentAt.Equal(now) {
					t.Errorf("unexpected record %+v", n)
				}
				return nil
			}),
	)

	d := NewDispatcher(sms, logRepo, func() time.Time { return now })
	if err := d.Dispatch(context.Background(), "test-study", p, domain.NotificationTypeLate, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDispatcherDoesNotLogFailedSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sms := domain.NewMockSMSSender(ctrl)
	logRepo := domain.NewMockNotificationLogRepository(ctrl)
	sendErr := errors.New("carrier rejected")

	sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sendErr)
	logRepo.EXPECT().AppendNotification(gomock.Any(), gomock.Any()).Times(0)

	d := NewDispatcher(sms, logRepo, nil)
	err := d.Dispatch(context.Background(), "test-study", testutil.Participant("user-1"), domain.NotificationTypeEarly, "hello")
	if !errors.Is(err, sendErr) {
		t.Errorf("got %v, want %v", err, sendErr)
	}
}

func TestDispatcherReportsLogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sms := domain.NewMockSMSSender(ctrl)
	logRepo := domain.NewMockNotificationLogRepository(ctrl)
	logErr := errors.New("redis down")

	sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	logRepo.EXPECT().AppendNotification(gomock.Any(), gomock.Any()).Return(logErr)

	d := NewDispatcher(sms, logRepo, nil)
	err := d.Dispatch(context.Background(), "test-study", testutil.Participant("user-1"), domain.NotificationTypeEarly, "hello")
	if !errors.Is(err, logErr) {
		t.Errorf("got %v, want %v", err, logErr)
	}
}
