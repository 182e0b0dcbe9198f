package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// collectActivitiesByDate drains the task history, keyed by participant-local
// scheduled date. Later duplicates on the same date are logged and dropped.
func collectActivitiesByDate(ctx context.Context, it domain.ScheduledActivityIterator, loc *time.Location, userID, taskID string) (map[time.Time]domain.ScheduledActivity, error) {
	byDate := make(map[time.Time]domain.ScheduledActivity)
	for {
		a, err := it.Next(ctx)
		if errors.Is(err, domain.ErrIterationDone) {
			return byDate, nil
		}
		if err != nil {
			return nil, err
		}

		d := domain.LocalDate(a.ScheduledOn, loc)
		if _, ok := byDate[d]; ok {
			slog.WarnContext(ctx, "duplicate scheduled activity for date",
				slog.String("user_id", userID),
				slog.String("task_id", taskID),
				slog.String("date", d.Format(DateLayout)),
			)
			continue
		}
		byDate[d] = a
	}
}

// classifyMissedActivities walks each day from burstStart through today. An
// empty result type means no notification, with the reason explaining why.
func classifyMissedActivities(byDate map[time.Time]domain.ScheduledActivity, burstStart, today time.Time, cfg *domain.StudyNotificationConfig) (domain.NotificationType, SkipReason) {
	if len(byDate) == 0 {
		return "", SkipNotBootstrapped
	}
	if a, ok := byDate[today]; ok && a.Status.IsFinished() {
		return "", SkipCompletedToday
	}

	daysMissed := 0
	consecutiveDaysMissed := 0
	daysElapsed := 0
	activitiesCompleted := 0

	for d := burstStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		a, ok := byDate[d]
		if !ok || !a.Status.IsFinished() {
			daysMissed++
			consecutiveDaysMissed++

			// Cumulative is checked first so it wins a same-day tie.
			if daysMissed >= cfg.NumMissedDaysToNotify {
				return domain.NotificationTypeCumulative, ""
			}
			if consecutiveDaysMissed >= cfg.NumMissedConsecutiveDaysToNotify {
				if daysElapsed < cfg.EarlyLateCutoffDays {
					return domain.NotificationTypeEarly, ""
				}
				return domain.NotificationTypeLate, ""
			}
		} else {
			consecutiveDaysMissed = 0
			activitiesCompleted++
			if activitiesCompleted >= cfg.NumActivitiesToCompleteBurst {
				return "", SkipBurstCompleted
			}
		}

		daysElapsed++
	}

	return "", SkipBelowThreshold
}
