package stub

import (
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// ParticipantSeed is everything the stub serves for one participant.
type ParticipantSeed struct {
	Participant domain.Participant         `json:"participant"`
	Events      []domain.ActivityEvent     `json:"activityEvents"`
	Activities  []domain.ScheduledActivity `json:"activities"`
	// Reports is keyed by report id.
	Reports map[string][]domain.ReportData `json:"reports,omitempty"`
}

type SeedRequest struct {
	Participants []ParticipantSeed `json:"participants"`
}

type SentSMS struct {
	StudyID string    `json:"studyId"`
	UserID  string    `json:"userId"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

type accountSummaryPage struct {
	Items []domain.AccountSummary `json:"items"`
	Total int                     `json:"total"`
}

type itemList[T any] struct {
	Items []T `json:"items"`
}

type scheduledActivityPage struct {
	Items             []domain.ScheduledActivity `json:"items"`
	HasNext           bool                       `json:"hasNext"`
	NextPageOffsetKey string                     `json:"nextPageOffsetKey,omitempty"`
}

type smsRequest struct {
	Message string `json:"message"`
}
