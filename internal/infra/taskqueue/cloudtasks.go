//go:build gcloud

package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-burst-notification/internal/observability/tracing"
)

// batchDispatchDeadline is the Cloud Tasks maximum for HTTP targets.
const batchDispatchDeadline = 30 * time.Minute

type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (c *CloudTasksClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.projectID, c.locationID, c.queueID)
}

func (c *CloudTasksClient) EnqueueBatch(ctx context.Context, task *BatchTask) (*TaskResponse, error) {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	tracing.InjectToMap(ctx, headers)

	cloudTask, err := c.buildTask(task, headers)
	if err != nil {
		return nil, err
	}

	req := &taskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task:   cloudTask,
	}

	return withRetry(ctx, c.maxRetries, task, func(ctx context.Context) (*TaskResponse, error) {
		return c.createTask(ctx, req, task)
	})
}

func (c *CloudTasksClient) buildTask(task *BatchTask, headers map[string]string) (*taskspb.Task, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch task: %w", err)
	}

	cloudTask := &taskspb.Task{
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers:    headers,
				Body:       payload,
			},
		},
		DispatchDeadline: durationpb.New(batchDispatchDeadline),
	}

	if id := task.TaskID(); id != "" {
		cloudTask.Name = fmt.Sprintf("%s/tasks/%s", c.queuePath(), id)
	}

	if !task.ScheduleAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(task.ScheduleAt)
	}

	return cloudTask, nil
}

func (c *CloudTasksClient) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, task *BatchTask) (*TaskResponse, error) {
	slog.DebugContext(ctx, "enqueueing batch to Cloud Tasks",
		slog.String("queue_path", req.Parent),
		slog.String("study_id", task.StudyID),
		slog.String("date", task.Date),
	)

	createdTask, err := c.client.CreateTask(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			slog.InfoContext(ctx, "batch already enqueued",
				slog.String("task_name", req.Task.Name),
				slog.String("study_id", task.StudyID),
			)
			return &TaskResponse{Name: req.Task.Name}, nil
		}

		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("study_id", task.StudyID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "batch task registered to Cloud Tasks",
		slog.String("task_name", createdTask.Name),
		slog.String("study_id", task.StudyID),
		slog.String("date", task.Date),
	)

	var scheduleTime, createTime time.Time
	if createdTask.ScheduleTime != nil {
		scheduleTime = createdTask.ScheduleTime.AsTime()
	}
	if createdTask.CreateTime != nil {
		createTime = createdTask.CreateTime.AsTime()
	}

	return &TaskResponse{
		Name:         createdTask.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
