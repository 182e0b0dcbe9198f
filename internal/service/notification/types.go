package notification

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

const DateLayout = "2006-01-02"

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

type Outcome string

const (
	OutcomeNotified Outcome = "notified"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

type SkipReason string

const (
	SkipPhoneNotVerified   SkipReason = "phone_not_verified"
	SkipNoTimeZone         SkipReason = "no_time_zone"
	SkipTimeZoneOutOfRange SkipReason = "time_zone_out_of_range"
	SkipNotConsented       SkipReason = "not_consented"
	SkipExcludedDataGroup  SkipReason = "excluded_data_group"
	SkipNoBurst            SkipReason = "no_burst"
	SkipBlackout           SkipReason = "blackout"
	SkipRecentlyNotified   SkipReason = "recently_notified"
	SkipNotBootstrapped    SkipReason = "not_bootstrapped"
	SkipCompletedToday     SkipReason = "completed_today"
	SkipBurstCompleted     SkipReason = "burst_completed"
	SkipBelowThreshold     SkipReason = "below_threshold"
)

// ParticipantResult is the outcome of evaluating one participant. Type is set
// when a notification was chosen, SkipReason when nothing was sent on
// purpose, and Error when processing failed.
type ParticipantResult struct {
	UserID     string                  `json:"userId"`
	Outcome    Outcome                 `json:"outcome"`
	Type       domain.NotificationType `json:"notificationType,omitempty"`
	SkipReason SkipReason              `json:"skipReason,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

func notified(userID string, t domain.NotificationType) ParticipantResult {
	return ParticipantResult{UserID: userID, Outcome: OutcomeNotified, Type: t}
}

func skipped(userID string, reason SkipReason) ParticipantResult {
	return ParticipantResult{UserID: userID, Outcome: OutcomeSkipped, SkipReason: reason}
}

func failed(userID string, t domain.NotificationType, err error) ParticipantResult {
	return ParticipantResult{UserID: userID, Outcome: OutcomeFailed, Type: t, Error: err.Error()}
}

type BatchRequest struct {
	StudyID  string   `json:"studyId" validate:"required"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Tag      string   `json:"tag,omitempty"`
	UserList []string `json:"userList" validate:"omitempty,dive,required"`
}

func (r *BatchRequest) Validate() error {
	if err := requestValidator.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
	}
	return nil
}

// ParsedDate returns the request date as midnight UTC.
func (r *BatchRequest) ParsedDate() (time.Time, error) {
	d, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
	}
	return d, nil
}

type BatchResponse struct {
	RunID            string                          `json:"runId"`
	StudyID          string                          `json:"studyId"`
	Date             string                          `json:"date"`
	Tag              string                          `json:"tag,omitempty"`
	ProcessedCount   int                             `json:"processedCount"`
	NotifiedCount    int                             `json:"notifiedCount"`
	SkippedCount     int                             `json:"skippedCount"`
	FailedCount      int                             `json:"failedCount"`
	IteratorFailures int                             `json:"iteratorFailures"`
	NotifiedByType   map[domain.NotificationType]int `json:"notifiedByType"`
	SkippedByReason  map[SkipReason]int              `json:"skippedByReason"`
	Results          []ParticipantResult             `json:"results"`
	StartedAt        time.Time                       `json:"startedAt"`
	FinishedAt       time.Time                       `json:"finishedAt"`
}

func newBatchResponse(runID string, req *BatchRequest, startedAt time.Time) *BatchResponse {
	return &BatchResponse{
		RunID:           runID,
		StudyID:         req.StudyID,
		Date:            req.Date,
		Tag:             req.Tag,
		NotifiedByType:  make(map[domain.NotificationType]int),
		SkippedByReason: make(map[SkipReason]int),
		Results:         make([]ParticipantResult, 0),
		StartedAt:       startedAt,
	}
}

func (r *BatchResponse) add(result ParticipantResult) {
	r.ProcessedCount++
	switch result.Outcome {
	case OutcomeNotified:
		r.NotifiedCount++
		r.NotifiedByType[result.Type]++
	case OutcomeSkipped:
		r.SkippedCount++
		r.SkippedByReason[result.SkipReason]++
	case OutcomeFailed:
		r.FailedCount++
	}
	r.Results = append(r.Results, result)
}

// Record converts the response into the row persisted by the batch recorder.
func (r *BatchResponse) Record() domain.BatchResultRecord {
	skipped := make(map[string]int, len(r.SkippedByReason))
	for k, v := range r.SkippedByReason {
		skipped[string(k)] = v
	}
	return domain.BatchResultRecord{
		RunID:            r.RunID,
		StudyID:          r.StudyID,
		Date:             r.Date,
		Tag:              r.Tag,
		ProcessedCount:   r.ProcessedCount,
		NotifiedCount:    r.NotifiedCount,
		SkippedCount:     r.SkippedCount,
		FailedCount:      r.FailedCount,
		IteratorFailures: r.IteratorFailures,
		NotifiedByType:   r.NotifiedByType,
		SkippedByReason:  skipped,
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
	}
}
