package batchrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.BatchResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordBatchResult(_ context.Context, _ domain.BatchResultRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
