package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	notificationMeterName = "notification.service"
)

type NotificationMetrics struct {
	participantsProcessed metric.Int64Counter
	notificationsSent     metric.Int64Counter
	participantsSkipped   metric.Int64Counter
	iteratorFailures      metric.Int64Counter
	participantDuration   metric.Float64Histogram
	batchDuration         metric.Float64Histogram
}

func NewNotificationMetrics() (*NotificationMetrics, error) {
	meter := otel.Meter(notificationMeterName)

	participantsProcessed, err := meter.Int64Counter(
		"notification_participants_total",
		metric.WithDescription("Total number of participants evaluated"),
		metric.WithUnit("{participant}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsSent, err := meter.Int64Counter(
		"notification_sent_total",
		metric.WithDescription("Total number of notifications sent"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	participantsSkipped, err := meter.Int64Counter(
		"notification_skipped_total",
		metric.WithDescription("Participants evaluated without sending"),
		metric.WithUnit("{participant}"),
	)
	if err != nil {
		return nil, err
	}

	iteratorFailures, err := meter.Int64Counter(
		"notification_iterator_failures_total",
		metric.WithDescription("Population page fetches that failed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	participantDuration, err := meter.Float64Histogram(
		"notification_participant_duration_seconds",
		metric.WithDescription("Time spent evaluating one participant"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	batchDuration, err := meter.Float64Histogram(
		"notification_batch_duration_seconds",
		metric.WithDescription("Batch run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			1, 5, 10, 30, 60, 300, 900, 1800, 3600,
		),
	)
	if err != nil {
		return nil, err
	}

	return &NotificationMetrics{
		participantsProcessed: participantsProcessed,
		notificationsSent:     notificationsSent,
		participantsSkipped:   participantsSkipped,
		iteratorFailures:      iteratorFailures,
		participantDuration:   participantDuration,
		batchDuration:         batchDuration,
	}, nil
}

func (m *NotificationMetrics) RecordParticipantProcessed(ctx context.Context, studyID, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("study_id", studyID),
		attribute.String("outcome", outcome),
	)
	m.participantsProcessed.Add(ctx, 1, attrs)
	m.participantDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *NotificationMetrics) RecordNotificationSent(ctx context.Context, studyID, notificationType string) {
	m.notificationsSent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("study_id", studyID),
		attribute.String("type", notificationType),
	))
}

func (m *NotificationMetrics) RecordSkipped(ctx context.Context, studyID, reason string) {
	m.participantsSkipped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("study_id", studyID),
		attribute.String("reason", reason),
	))
}

func (m *NotificationMetrics) RecordIteratorFailure(ctx context.Context, studyID string) {
	m.iteratorFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("study_id", studyID),
	))
}

func (m *NotificationMetrics) RecordBatchDuration(ctx context.Context, studyID string, duration time.Duration) {
	m.batchDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("study_id", studyID),
	))
}
