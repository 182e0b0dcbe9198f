// Package scheduler enqueues one batch request per study on a cron
// schedule. It never runs batches itself.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-burst-notification/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-burst-notification/internal/service/notification"
)

const triggerTimeout = time.Minute

type Scheduler struct {
	queue    taskqueue.BatchQueue
	studyIDs []string
	tag      string
	location *time.Location
	now      func() time.Time
	cron     *cron.Cron
}

func New(queue taskqueue.BatchQueue, studyIDs []string, tag string, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		queue:    queue,
		studyIDs: studyIDs,
		tag:      tag,
		location: loc,
		now:      time.Now,
		cron:     cron.New(cron.WithLocation(loc)),
	}
}

// Trigger enqueues a request for every study dated today in the scheduler's
// location. Failures for one study do not stop the others.
func (s *Scheduler) Trigger(ctx context.Context) error {
	date := s.now().In(s.location).Format(notification.DateLayout)

	var errs []error
	for _, studyID := range s.studyIDs {
		resp, err := s.queue.EnqueueBatch(ctx, &taskqueue.BatchTask{
			StudyID: studyID,
			Date:    date,
			Tag:     s.tag,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to enqueue scheduled batch",
				slog.String("study_id", studyID),
				slog.String("date", date),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("study %s: %w", studyID, err))
			continue
		}

		slog.InfoContext(ctx, "scheduled batch enqueued",
			slog.String("study_id", studyID),
			slog.String("date", date),
			slog.String("task_name", resp.Name),
		)
	}

	return errors.Join(errs...)
}

// Run registers spec and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), triggerTimeout)
		defer cancel()
		_ = s.Trigger(jobCtx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	slog.InfoContext(ctx, "scheduler started",
		slog.String("cron", spec),
		slog.String("location", s.location.String()),
		slog.Int("studies", len(s.studyIDs)),
	)

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()

	slog.InfoContext(ctx, "scheduler stopped")
	return nil
}
