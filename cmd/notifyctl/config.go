package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-burst-notification/internal/app"
	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/repository"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage per-study notification configs",
	}
	cmd.AddCommand(configPutCmd())
	cmd.AddCommand(configGetCmd())
	return cmd
}

func withConfigRepo(fn func(ctx context.Context, repo domain.NotificationConfigRepository) error) error {
	return withRuntime(func(ctx context.Context, cfg *config.Config) error {
		if err := cfg.Redis.Validate(); err != nil {
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
		return fn(ctx, repository.NewNotificationConfigRepository(rdb))
	})
}

// readStudyConfig decodes a config file. The --study flag overrides the
// studyId in the file.
func readStudyConfig(path, studyID string) (*domain.StudyNotificationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg domain.StudyNotificationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStudyConfig, err)
	}
	if studyID != "" {
		cfg.StudyID = studyID
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configPutCmd() *cobra.Command {
	var studyID, file string
	cmd := &cobra.Command{
		Use:   "put",
		Short: "Store a study's notification config from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			studyCfg, err := readStudyConfig(file, studyID)
			if err != nil {
				return err
			}
			return withConfigRepo(func(ctx context.Context, repo domain.NotificationConfigRepository) error {
				if err := repo.SaveNotificationConfig(ctx, studyCfg); err != nil {
					return err
				}
				slog.InfoContext(ctx, "notification config saved", slog.String("study_id", studyCfg.StudyID))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&studyID, "study", "", "Study id")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the config JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func configGetCmd() *cobra.Command {
	var studyID string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a study's notification config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfigRepo(func(ctx context.Context, repo domain.NotificationConfigRepository) error {
				studyCfg, err := repo.GetNotificationConfig(ctx, studyID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), studyCfg)
			})
		},
	}
	cmd.Flags().StringVar(&studyID, "study", "", "Study id")
	_ = cmd.MarkFlagRequired("study")
	return cmd
}
