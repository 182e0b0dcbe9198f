package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-burst-notification/internal/app"
	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-burst-notification/internal/scheduler"
	"github.com/KasumiMercury/primind-burst-notification/internal/service/notification"
)

var errQueueDisabled = errors.New("task queue is not configured")

func withBatchQueue(fn func(ctx context.Context, queue taskqueue.BatchQueue) error) error {
	return withRuntime(func(ctx context.Context, cfg *config.Config) error {
		if err := cfg.TaskQueue.Validate(); err != nil {
			return err
		}
		queue, cleanup, err := app.NewBatchQueue(ctx, cfg)
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer func() { _ = cleanup() }()
		}
		if queue == nil {
			return errQueueDisabled
		}
		return fn(ctx, queue)
	})
}

func enqueueCmd() *cobra.Command {
	var req notification.BatchRequest
	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Enqueue one batch request on the task queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}
			return withBatchQueue(func(ctx context.Context, queue taskqueue.BatchQueue) error {
				resp, err := queue.EnqueueBatch(ctx, &taskqueue.BatchTask{
					StudyID:  req.StudyID,
					Date:     req.Date,
					Tag:      req.Tag,
					UserList: req.UserList,
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Name)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&req.StudyID, "study", "", "Study id")
	cmd.Flags().StringVar(&req.Date, "date", "", "Local date to evaluate (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Tag, "tag", "", "Tag written to the worker log")
	cmd.Flags().StringSliceVar(&req.UserList, "user", nil, "Restrict the batch to these user ids (repeatable)")
	_ = cmd.MarkFlagRequired("study")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func scheduleCmd() *cobra.Command {
	var (
		spec     string
		studyIDs []string
		tag      string
		tz       string
		once     bool
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Enqueue a batch per study with today's date on a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("invalid --tz: %w", err)
			}
			return withBatchQueue(func(ctx context.Context, queue taskqueue.BatchQueue) error {
				s := scheduler.New(queue, studyIDs, tag, loc)
				if once {
					return s.Trigger(ctx)
				}
				slog.InfoContext(ctx, "waiting for cron ticks, press Ctrl+C to stop")
				return s.Run(ctx, spec)
			})
		},
	}
	cmd.Flags().StringVar(&spec, "cron", "0 18 * * *", "Cron expression (minute hour dom month dow)")
	cmd.Flags().StringSliceVar(&studyIDs, "study", nil, "Study ids to enqueue (repeatable)")
	cmd.Flags().StringVar(&tag, "tag", "", "Tag written to the worker log")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone used for the cron schedule and the batch date")
	cmd.Flags().BoolVar(&once, "once", false, "Enqueue immediately and exit")
	_ = cmd.MarkFlagRequired("study")
	return cmd
}
