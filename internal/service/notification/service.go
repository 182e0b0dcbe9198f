package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/metrics"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/tracing"
)

const (
	DefaultPerUserRate                    = 1.0
	DefaultReportingInterval              = 250
	DefaultMaxConsecutiveIteratorFailures = 5
)

// MessageResolver fills template variables in a selected message.
type MessageResolver interface {
	Resolve(ctx context.Context, studyID string, cfg *domain.StudyNotificationConfig, p *domain.Participant, message string) (string, error)
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand fixes the source used to pick among message variants.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithPerUserRate limits how many participants start processing per second.
// Zero removes the limit.
func WithPerUserRate(perSecond float64) Option {
	return func(s *Service) { s.perUserRate = perSecond }
}

func WithReportingInterval(n int) Option {
	return func(s *Service) { s.reportingInterval = n }
}

// WithMaxConsecutiveIteratorFailures stops the batch after n population
// fetches fail in a row. Zero never stops.
func WithMaxConsecutiveIteratorFailures(n int) Option {
	return func(s *Service) { s.maxIteratorFailures = n }
}

func WithMetrics(m *metrics.NotificationMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithResultRecorder(r domain.BatchResultRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

type Service struct {
	configRepo   domain.NotificationConfigRepository
	population   domain.PopulationSource
	participants domain.ParticipantSource
	logRepo      domain.NotificationLogRepository
	workerLog    domain.WorkerLogRepository
	resolver     MessageResolver
	dispatcher   *Dispatcher
	metrics      *metrics.NotificationMetrics
	recorder     domain.BatchResultRecorder

	now                 func() time.Time
	rng                 *rand.Rand
	perUserRate         float64
	reportingInterval   int
	maxIteratorFailures int
}

func NewService(
	configRepo domain.NotificationConfigRepository,
	population domain.PopulationSource,
	participants domain.ParticipantSource,
	logRepo domain.NotificationLogRepository,
	workerLog domain.WorkerLogRepository,
	sms domain.SMSSender,
	resolver MessageResolver,
	opts ...Option,
) *Service {
	s := &Service{
		configRepo:          configRepo,
		population:          population,
		participants:        participants,
		logRepo:             logRepo,
		workerLog:           workerLog,
		resolver:            resolver,
		now:                 time.Now,
		rng:                 rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		perUserRate:         DefaultPerUserRate,
		reportingInterval:   DefaultReportingInterval,
		maxIteratorFailures: DefaultMaxConsecutiveIteratorFailures,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dispatcher = NewDispatcher(sms, logRepo, s.now)
	return s
}

func (s *Service) newLimiter() *rate.Limiter {
	if s.perUserRate <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(s.perUserRate), 1)
}

// RunBatch evaluates every participant of the requested study for the
// requested date. Participant and iterator failures are counted, not
// returned. The worker log is written even when ctx is cancelled mid-run.
func (s *Service) RunBatch(ctx context.Context, req *BatchRequest) (*BatchResponse, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	today, err := req.ParsedDate()
	if err != nil {
		return nil, err
	}

	startedAt := s.now()
	resp := newBatchResponse(uuid.NewString(), req, startedAt)

	ctx, span := tracing.StartBatchSpan(ctx, req.StudyID, req.Date, req.Tag)
	defer span.End()

	slog.InfoContext(ctx, "starting notification batch",
		slog.String("run_id", resp.RunID),
		slog.String("study_id", req.StudyID),
		slog.String("date", req.Date),
		slog.String("tag", req.Tag),
		slog.Int("user_list_count", len(req.UserList)),
	)

	// An explicit list, even an empty one, replaces the study population.
	var it domain.AccountSummaryIterator
	if req.UserList != nil {
		it = newUserListIterator(req.UserList)
	} else {
		it = s.population.AllAccountSummaries(req.StudyID)
	}

	limiter := s.newLimiter()
	seen := 0
	consecutiveFailures := 0
	var runErr error

	for {
		if err := limiter.Wait(ctx); err != nil {
			runErr = fmt.Errorf("batch interrupted: %w", err)
			break
		}

		summary, err := it.Next(ctx)
		if errors.Is(err, domain.ErrIterationDone) {
			break
		}

		seen++
		if err != nil {
			resp.IteratorFailures++
			consecutiveFailures++
			slog.ErrorContext(ctx, "failed to get next participant",
				slog.String("study_id", req.StudyID),
				slog.Int("consecutive_failures", consecutiveFailures),
				slog.String("error", err.Error()),
			)
			if s.metrics != nil {
				s.metrics.RecordIteratorFailure(ctx, req.StudyID)
			}
			if s.maxIteratorFailures > 0 && consecutiveFailures >= s.maxIteratorFailures {
				slog.ErrorContext(ctx, "too many consecutive iterator failures, stopping batch",
					slog.String("study_id", req.StudyID),
					slog.Int("max_failures", s.maxIteratorFailures),
				)
				break
			}
		} else {
			consecutiveFailures = 0
			resp.add(s.processWithTelemetry(ctx, req.StudyID, today, summary.ID))
		}

		if s.reportingInterval > 0 && seen%s.reportingInterval == 0 {
			slog.InfoContext(ctx, "processing participants in progress",
				slog.String("study_id", req.StudyID),
				slog.Int("participants", seen),
				slog.Int64("elapsed_seconds", int64(s.now().Sub(startedAt).Seconds())),
			)
		}
	}

	resp.FinishedAt = s.now()
	s.finishBatch(context.WithoutCancel(ctx), req, resp)

	tracing.RecordBatchResult(span, resp.ProcessedCount, resp.NotifiedCount, resp.SkippedCount, resp.FailedCount, resp.IteratorFailures, runErr)

	return resp, runErr
}

func (s *Service) finishBatch(ctx context.Context, req *BatchRequest, resp *BatchResponse) {
	if err := s.workerLog.WriteWorkerLog(ctx, req.Tag, resp.FinishedAt); err != nil {
		slog.ErrorContext(ctx, "failed to write worker log",
			slog.String("study_id", req.StudyID),
			slog.String("tag", req.Tag),
			slog.String("error", err.Error()),
		)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordBatchResult(ctx, resp.Record()); err != nil {
			slog.WarnContext(ctx, "failed to record batch result",
				slog.String("run_id", resp.RunID),
				slog.String("error", err.Error()),
			)
		}
	}

	elapsed := resp.FinishedAt.Sub(resp.StartedAt)
	if s.metrics != nil {
		s.metrics.RecordBatchDuration(ctx, req.StudyID, elapsed)
	}

	slog.InfoContext(ctx, "finished notification batch",
		slog.String("run_id", resp.RunID),
		slog.String("study_id", req.StudyID),
		slog.String("date", req.Date),
		slog.Int("processed", resp.ProcessedCount),
		slog.Int("notified", resp.NotifiedCount),
		slog.Int("skipped", resp.SkippedCount),
		slog.Int("failed", resp.FailedCount),
		slog.Int("iterator_failures", resp.IteratorFailures),
		slog.Int64("elapsed_seconds", int64(elapsed.Seconds())),
	)
}

func (s *Service) processWithTelemetry(ctx context.Context, studyID string, today time.Time, userID string) ParticipantResult {
	ctx, span := tracing.StartParticipantSpan(ctx, studyID, userID)
	defer span.End()

	start := s.now()
	result := s.ProcessParticipant(ctx, studyID, today, userID)

	var err error
	if result.Outcome == OutcomeFailed {
		err = errors.New(result.Error)
		slog.ErrorContext(ctx, "failed to process participant",
			slog.String("study_id", studyID),
			slog.String("user_id", userID),
			slog.String("error", result.Error),
		)
	}
	tracing.RecordParticipantResult(span, string(result.Outcome), result.Type.String(), string(result.SkipReason), err)

	if s.metrics != nil {
		s.metrics.RecordParticipantProcessed(ctx, studyID, string(result.Outcome), s.now().Sub(start))
		switch result.Outcome {
		case OutcomeNotified:
			s.metrics.RecordNotificationSent(ctx, studyID, result.Type.String())
		case OutcomeSkipped:
			s.metrics.RecordSkipped(ctx, studyID, string(result.SkipReason))
		}
	}

	return result
}

// ProcessParticipant decides whether userID gets a notification on today
// and sends it. It never panics on collaborator errors; they come back as a
// failed result.
func (s *Service) ProcessParticipant(ctx context.Context, studyID string, today time.Time, userID string) ParticipantResult {
	cfg, err := s.configRepo.GetNotificationConfig(ctx, studyID)
	if err != nil {
		return failed(userID, "", fmt.Errorf("failed to get notification config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return failed(userID, "", err)
	}

	p, err := s.participants.GetParticipant(ctx, studyID, userID)
	if err != nil {
		return failed(userID, "", fmt.Errorf("failed to get participant: %w", err))
	}

	reason, loc, err := checkEligibility(p, cfg, s.now())
	if err != nil {
		return failed(userID, "", err)
	}
	if reason != "" {
		slog.DebugContext(ctx, "participant not eligible",
			slog.String("user_id", userID),
			slog.String("reason", string(reason)),
		)
		return skipped(userID, reason)
	}

	events, err := s.participants.GetActivityEvents(ctx, studyID, userID)
	if err != nil {
		return failed(userID, "", fmt.Errorf("failed to get activity events: %w", err))
	}

	window := locateBurst(today, loc, cfg, filterBurstStartEvents(events, cfg))
	switch window.Kind {
	case BurstUpcoming:
		return s.notify(ctx, studyID, cfg, p, domain.NotificationTypePreBurst)
	case BurstNone:
		if window.Blackout {
			return skipped(userID, SkipBlackout)
		}
		return skipped(userID, SkipNoBurst)
	}

	last, err := s.logRepo.GetLastNotification(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotificationNotFound) {
		return failed(userID, "", fmt.Errorf("failed to get last notification: %w", err))
	}
	if isSuppressedBy(last, s.now(), cfg.BurstDurationDays) {
		return skipped(userID, SkipRecentlyNotified)
	}

	rangeStart := domain.StartOfDay(window.Start, loc)
	rangeEnd := domain.StartOfDay(today.AddDate(0, 0, 1), loc)
	history := s.participants.GetTaskHistory(ctx, studyID, userID, cfg.BurstTaskID, rangeStart, rangeEnd)
	byDate, err := collectActivitiesByDate(ctx, history, loc, userID, cfg.BurstTaskID)
	if err != nil {
		return failed(userID, "", fmt.Errorf("failed to get task history: %w", err))
	}

	t, reason := classifyMissedActivities(byDate, window.Start, today, cfg)
	if t == "" {
		return skipped(userID, reason)
	}

	return s.notify(ctx, studyID, cfg, p, t)
}

func (s *Service) notify(ctx context.Context, studyID string, cfg *domain.StudyNotificationConfig, p *domain.Participant, t domain.NotificationType) ParticipantResult {
	raw, err := selectMessage(s.rng, cfg, p, t)
	if err != nil {
		return failed(p.ID, t, err)
	}

	message, err := s.resolver.Resolve(ctx, studyID, cfg, p, raw)
	if err != nil {
		return failed(p.ID, t, fmt.Errorf("failed to resolve message: %w", err))
	}

	if err := s.dispatcher.Dispatch(ctx, studyID, p, t, message); err != nil {
		return failed(p.ID, t, err)
	}

	return notified(p.ID, t)
}

// LatestWorkerLog reports when the worker last finished a batch.
func (s *Service) LatestWorkerLog(ctx context.Context) (*domain.WorkerLog, error) {
	return s.workerLog.GetLatestWorkerLog(ctx)
}
