//go:build gcloud

package batchrecorder

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type bigQueryCount struct {
	Key   string `bigquery:"key"`
	Count int64  `bigquery:"count"`
}

type bigQueryRecord struct {
	RecordedAt       time.Time       `bigquery:"recorded_at"`
	RunID            string          `bigquery:"run_id"`
	StudyID          string          `bigquery:"study_id"`
	Date             string          `bigquery:"date"`
	Tag              string          `bigquery:"tag"`
	ProcessedCount   int64           `bigquery:"processed_count"`
	NotifiedCount    int64           `bigquery:"notified_count"`
	SkippedCount     int64           `bigquery:"skipped_count"`
	FailedCount      int64           `bigquery:"failed_count"`
	IteratorFailures int64           `bigquery:"iterator_failures"`
	NotifiedByType   []bigQueryCount `bigquery:"notified_by_type"`
	SkippedByReason  []bigQueryCount `bigquery:"skipped_by_reason"`
	StartedAt        time.Time       `bigquery:"started_at"`
	FinishedAt       time.Time       `bigquery:"finished_at"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.BatchResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "batch result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, batch result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, batch result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "batch result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func toCounts[K ~string](m map[K]int) []bigQueryCount {
	counts := make([]bigQueryCount, 0, len(m))
	for k, v := range m {
		counts = append(counts, bigQueryCount{Key: string(k), Count: int64(v)})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Key < counts[j].Key })
	return counts
}

func (r *bigQueryRecorder) RecordBatchResult(ctx context.Context, record domain.BatchResultRecord) error {
	row := &bigQueryRecord{
		RecordedAt:       time.Now(),
		RunID:            record.RunID,
		StudyID:          record.StudyID,
		Date:             record.Date,
		Tag:              record.Tag,
		ProcessedCount:   int64(record.ProcessedCount),
		NotifiedCount:    int64(record.NotifiedCount),
		SkippedCount:     int64(record.SkippedCount),
		FailedCount:      int64(record.FailedCount),
		IteratorFailures: int64(record.IteratorFailures),
		NotifiedByType:   toCounts(record.NotifiedByType),
		SkippedByReason:  toCounts(record.SkippedByReason),
		StartedAt:        record.StartedAt,
		FinishedAt:       record.FinishedAt,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert batch result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
