package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

// BatchQueue delivers batch requests to the batch endpoint asynchronously.
type BatchQueue interface {
	EnqueueBatch(ctx context.Context, task *BatchTask) (*TaskResponse, error)
}
