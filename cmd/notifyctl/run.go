package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-burst-notification/internal/app"
	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/service/notification"
)

func runCmd() *cobra.Command {
	var (
		req     notification.BatchRequest
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one notification batch in-process",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(func(ctx context.Context, cfg *config.Config) error {
				if err := config.ValidateForRun(cfg); err != nil {
					return err
				}
				if err := req.Validate(); err != nil {
					return err
				}

				rdb, err := app.NewRedisClient(ctx, cfg.Redis)
				if err != nil {
					return err
				}
				defer func() {
					if err := rdb.Close(); err != nil {
						slog.Warn("failed to close redis client", slog.String("error", err.Error()))
					}
				}()

				components, err := app.Build(ctx, cfg, rdb)
				if err != nil {
					return err
				}
				defer func() { _ = components.Close() }()

				resp, runErr := components.Service.RunBatch(ctx, &req)
				if resp != nil {
					if !verbose {
						resp.Results = nil
					}
					if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
						return err
					}
				}
				return runErr
			})
		},
	}
	cmd.Flags().StringVar(&req.StudyID, "study", "", "Study id")
	cmd.Flags().StringVar(&req.Date, "date", "", "Local date to evaluate (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Tag, "tag", "", "Tag written to the worker log")
	cmd.Flags().StringSliceVar(&req.UserList, "user", nil, "Restrict the batch to these user ids (repeatable)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print per-participant results")
	_ = cmd.MarkFlagRequired("study")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
