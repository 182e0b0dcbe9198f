package studyplatform

import (
	"fmt"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// PageSize is how many accounts are requested per population page.
const PageSize = 10

type accountSummaryPage struct {
	Items []domain.AccountSummary `json:"items"`
	Total int                     `json:"total"`
}

type activityEventList struct {
	Items []domain.ActivityEvent `json:"items"`
}

type scheduledActivityPage struct {
	Items             []domain.ScheduledActivity `json:"items"`
	HasNext           bool                       `json:"hasNext"`
	NextPageOffsetKey string                     `json:"nextPageOffsetKey,omitempty"`
}

type reportList struct {
	Items []domain.ReportData `json:"items"`
}

type smsRequest struct {
	Message string `json:"message"`
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("study platform %s %s: unexpected status code: %d", e.Method, e.Path, e.StatusCode)
}
