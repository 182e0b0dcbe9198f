// Command notifyctl runs, enqueues and schedules burst notification batches
// and manages per-study notification configs.
//
// Usage:
//
//	notifyctl run --study my-study --date 2018-05-03
//	notifyctl config put --study my-study --file config.json
//	notifyctl config get --study my-study
//	notifyctl enqueue --study my-study --date 2018-05-03 --tag nightly
//	notifyctl schedule --cron "0 18 * * *" --study my-study --tz America/Los_Angeles
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-burst-notification/internal/app"
	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/logging"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Burst notification worker CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(configCmd())
	root.AddCommand(enqueueCmd())
	root.AddCommand(scheduleCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withRuntime loads configuration, sets up logging and tracing, and runs fn
// with a context cancelled on SIGINT or SIGTERM.
func withRuntime(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	obs, err := app.InitObservability(ctx, logging.Module("notifyctl"), Version, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()
	slog.SetDefault(obs.Logger())

	return fn(ctx, cfg)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
