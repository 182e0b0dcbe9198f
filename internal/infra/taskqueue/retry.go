package taskqueue

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

func backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

// withRetry calls fn up to maxRetries times with exponential backoff between
// attempts.
func withRetry(ctx context.Context, maxRetries int, task *BatchTask, fn func(context.Context) (*TaskResponse, error)) (*TaskResponse, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt)
			slog.DebugContext(ctx, "retrying batch enqueue",
				slog.String("study_id", task.StudyID),
				slog.String("date", task.Date),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", wait),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		resp, err := fn(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for batch enqueue",
		slog.String("study_id", task.StudyID),
		slog.String("date", task.Date),
		slog.Int("max_retries", maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to enqueue batch after %d retries: %w", maxRetries, lastErr)
}
