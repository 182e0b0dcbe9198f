package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=study_platform.go -destination=study_platform_mock.go -package=domain

// AccountSummaryIterator walks a study's population page by page. Next
// returns ErrIterationDone once exhausted. A failed page fetch returns the
// error without advancing, so the next call retries the same page.
type AccountSummaryIterator interface {
	Next(ctx context.Context) (AccountSummary, error)
}

// ScheduledActivityIterator walks a participant's task history. It follows
// the same contract as AccountSummaryIterator.
type ScheduledActivityIterator interface {
	Next(ctx context.Context) (ScheduledActivity, error)
}

type PopulationSource interface {
	AllAccountSummaries(studyID string) AccountSummaryIterator
}

type ParticipantSource interface {
	GetParticipant(ctx context.Context, studyID, userID string) (*Participant, error)
	GetActivityEvents(ctx context.Context, studyID, userID string) ([]ActivityEvent, error)
	GetTaskHistory(ctx context.Context, studyID, userID, taskID string, start, end time.Time) ScheduledActivityIterator
}

type ReportSource interface {
	GetParticipantReports(ctx context.Context, studyID, userID, reportID string, startDate, endDate time.Time) ([]ReportData, error)
}

type SMSSender interface {
	SendSMS(ctx context.Context, studyID string, participant *Participant, message string) error
}
