package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// Dispatcher sends a notification and then records it. The log is only
// written after a successful send.
type Dispatcher struct {
	sms     domain.SMSSender
	logRepo domain.NotificationLogRepository
	now     func() time.Time
}

func NewDispatcher(sms domain.SMSSender, logRepo domain.NotificationLogRepository, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{
		sms:     sms,
		logRepo: logRepo,
		now:     now,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, studyID string, p *domain.Participant, t domain.NotificationType, message string) error {
	slog.InfoContext(ctx, "sending notification",
		slog.String("study_id", studyID),
		slog.String("user_id", p.ID),
		slog.String("notification_type", t.String()),
	)

	if err := d.sms.SendSMS(ctx, studyID, p, message); err != nil {
		return fmt.Errorf("failed to send %s notification: %w", t, err)
	}

	record := domain.NewUserNotification(p.ID, d.now(), t, message)
	if err := d.logRepo.AppendNotification(ctx, record); err != nil {
		slog.ErrorContext(ctx, "notification sent but not logged",
			slog.String("study_id", studyID),
			slog.String("user_id", p.ID),
			slog.String("notification_type", t.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to log %s notification: %w", t, err)
	}

	return nil
}
