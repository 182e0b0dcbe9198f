package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-burst-notification/internal/service/notification"
)

type BatchRunner interface {
	RunBatch(ctx context.Context, req *notification.BatchRequest) (*notification.BatchResponse, error)
	LatestWorkerLog(ctx context.Context) (*domain.WorkerLog, error)
}

type EnqueueResponse struct {
	TaskName string `json:"taskName"`
	StudyID  string `json:"studyId"`
	Date     string `json:"date"`
}

type NotificationHandler struct {
	runner BatchRunner
	queue  taskqueue.BatchQueue
}

// NewNotificationHandler wires the batch endpoints. queue may be nil, in
// which case enqueue requests are rejected with 503.
func NewNotificationHandler(runner BatchRunner, queue taskqueue.BatchQueue) *NotificationHandler {
	return &NotificationHandler{
		runner: runner,
		queue:  queue,
	}
}

func (h *NotificationHandler) bindBatchRequest(c *gin.Context) (*notification.BatchRequest, bool) {
	ctx := c.Request.Context()

	var req notification.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return nil, false
	}

	if err := req.Validate(); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return nil, false
	}

	return &req, true
}

func (h *NotificationHandler) HandleBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.bindBatchRequest(c)
	if !ok {
		return
	}

	slog.InfoContext(ctx, "handling notification batch",
		slog.String("study_id", req.StudyID),
		slog.String("date", req.Date),
		slog.String("tag", req.Tag),
		slog.Int("user_list_size", len(req.UserList)),
	)

	// The queue drops its connection at the dispatch deadline. The batch keeps
	// running so a redelivery never restarts it from the first participant.
	resp, err := h.runner.RunBatch(context.WithoutCancel(ctx), req)
	if err != nil {
		if resp != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			slog.WarnContext(ctx, "notification batch interrupted",
				slog.String("study_id", req.StudyID),
				slog.Int("processed", resp.ProcessedCount),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusOK, resp)
			return
		}

		status, code := statusFor(err)
		slog.ErrorContext(ctx, "notification batch failed",
			slog.String("study_id", req.StudyID),
			slog.String("error", err.Error()),
		)
		respondError(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) HandleEnqueue(c *gin.Context) {
	ctx := c.Request.Context()

	if h.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "queue_disabled", "task queue is not configured")
		return
	}

	req, ok := h.bindBatchRequest(c)
	if !ok {
		return
	}

	resp, err := h.queue.EnqueueBatch(ctx, &taskqueue.BatchTask{
		StudyID:  req.StudyID,
		Date:     req.Date,
		Tag:      req.Tag,
		UserList: req.UserList,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to enqueue notification batch",
			slog.String("study_id", req.StudyID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "enqueue_error", err.Error())
		return
	}

	c.JSON(http.StatusAccepted, EnqueueResponse{
		TaskName: resp.Name,
		StudyID:  req.StudyID,
		Date:     req.Date,
	})
}

func (h *NotificationHandler) HandleWorkerStatus(c *gin.Context) {
	ctx := c.Request.Context()

	wl, err := h.runner.LatestWorkerLog(ctx)
	if err != nil {
		status, code := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(ctx, "failed to read worker log", slog.String("error", err.Error()))
		}
		respondError(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, wl)
}
