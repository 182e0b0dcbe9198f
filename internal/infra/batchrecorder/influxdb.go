//go:build !gcloud

package batchrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.BatchResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "batch result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, batch result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "batch result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func batchPoints(record domain.BatchResultRecord) []*write.Point {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}
	tags := map[string]string{
		"run_id":   runID,
		"study_id": record.StudyID,
		"date":     record.Date,
		"tag":      record.Tag,
	}
	// Line protocol rejects empty tag values.
	for k, v := range tags {
		if v == "" {
			delete(tags, k)
		}
	}
	pointTime := record.FinishedAt
	if pointTime.IsZero() {
		pointTime = time.Now()
	}

	points := []*write.Point{
		influxdb2.NewPoint(
			"notification_batch",
			tags,
			map[string]any{
				"processed_count":   record.ProcessedCount,
				"notified_count":    record.NotifiedCount,
				"skipped_count":     record.SkippedCount,
				"failed_count":      record.FailedCount,
				"iterator_failures": record.IteratorFailures,
				"duration_seconds":  record.FinishedAt.Sub(record.StartedAt).Seconds(),
			},
			pointTime,
		),
	}

	for t, n := range record.NotifiedByType {
		points = append(points, influxdb2.NewPoint(
			"notification_batch_type",
			withTag(tags, "notification_type", t.String()),
			map[string]any{"count": n},
			pointTime,
		))
	}
	for reason, n := range record.SkippedByReason {
		points = append(points, influxdb2.NewPoint(
			"notification_batch_skip",
			withTag(tags, "reason", reason),
			map[string]any{"count": n},
			pointTime,
		))
	}

	return points
}

func withTag(tags map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(tags)+1)
	for k, v := range tags {
		out[k] = v
	}
	out[key] = value
	return out
}

func (r *influxDBRecorder) RecordBatchResult(ctx context.Context, record domain.BatchResultRecord) error {
	points := batchPoints(record)
	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write batch result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
			slog.String("study_id", record.StudyID),
		)
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
