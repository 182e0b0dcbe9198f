package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const notificationTracerName = "github.com/KasumiMercury/primind-burst-notification/internal/service/notification"

func NotificationTracer() trace.Tracer {
	return otel.Tracer(notificationTracerName)
}

func StartBatchSpan(ctx context.Context, studyID, date, tag string) (context.Context, trace.Span) {
	return NotificationTracer().Start(ctx, "notification.batch",
		trace.WithAttributes(
			attribute.String("study_id", studyID),
			attribute.String("batch.date", date),
			attribute.String("batch.tag", tag),
		),
	)
}

func StartParticipantSpan(ctx context.Context, studyID, userID string) (context.Context, trace.Span) {
	return NotificationTracer().Start(ctx, "notification.participant",
		trace.WithAttributes(
			attribute.String("study_id", studyID),
			attribute.String("user_id", userID),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return NotificationTracer().Start(ctx, "notification.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordBatchResult(span trace.Span, processed, notified, skipped, failed, iteratorFailures int, err error) {
	span.SetAttributes(
		attribute.Int("batch.processed_count", processed),
		attribute.Int("batch.notified_count", notified),
		attribute.Int("batch.skipped_count", skipped),
		attribute.Int("batch.failed_count", failed),
		attribute.Int("batch.iterator_failures", iteratorFailures),
	)
	RecordError(span, err)
}

func RecordParticipantResult(span trace.Span, outcome, notificationType, skipReason string, err error) {
	span.SetAttributes(
		attribute.String("participant.outcome", outcome),
	)
	if notificationType != "" {
		span.SetAttributes(attribute.String("participant.notification_type", notificationType))
	}
	if skipReason != "" {
		span.SetAttributes(attribute.String("participant.skip_reason", skipReason))
	}
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
