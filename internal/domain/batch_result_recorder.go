package domain

import (
	"context"
	"time"
)

// BatchResultRecord summarises one batch run for offline analysis.
type BatchResultRecord struct {
	RunID            string
	StudyID          string
	Date             string
	Tag              string
	ProcessedCount   int
	NotifiedCount    int
	SkippedCount     int
	FailedCount      int
	IteratorFailures int
	NotifiedByType   map[NotificationType]int
	SkippedByReason  map[string]int
	StartedAt        time.Time
	FinishedAt       time.Time
}

type BatchResultRecorder interface {
	RecordBatchResult(ctx context.Context, record BatchResultRecord) error
	Close() error
}
