package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

const (
	// EngagementReportID is the participant report holding survey answers.
	EngagementReportID = "Engagement"

	VarStudyCommitment = "${studyCommitment}"
	VarURL             = "${url}"

	benefitsKey = "benefits"
)

// GlobalReportDate is the fixed report date used for per-participant data
// that does not belong to any particular day.
var GlobalReportDate = time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)

type Resolver struct {
	reports domain.ReportSource
}

func NewResolver(reports domain.ReportSource) *Resolver {
	return &Resolver{
		reports: reports,
	}
}

// Resolve substitutes ${studyCommitment} and ${url} in message. The report
// source is only consulted when the message uses ${studyCommitment}.
func (r *Resolver) Resolve(ctx context.Context, studyID string, cfg *domain.StudyNotificationConfig, participant *domain.Participant, message string) (string, error) {
	if strings.Contains(message, VarStudyCommitment) {
		commitment, err := r.studyCommitment(ctx, studyID, participant.ID)
		if err != nil {
			return "", err
		}
		message = strings.ReplaceAll(message, VarStudyCommitment, commitment)
	}

	if strings.Contains(message, VarURL) {
		message = strings.ReplaceAll(message, VarURL, cfg.AppURL)
	}

	return message, nil
}

func (r *Resolver) studyCommitment(ctx context.Context, studyID, userID string) (string, error) {
	reports, err := r.reports.GetParticipantReports(ctx, studyID, userID, EngagementReportID, GlobalReportDate, GlobalReportDate)
	if err != nil {
		return "", fmt.Errorf("failed to get engagement report for %s: %w", userID, err)
	}
	if len(reports) == 0 {
		return "", fmt.Errorf("%w: user %s has no engagement report", domain.ErrEngagementReport, userID)
	}
	if len(reports) > 1 {
		slog.WarnContext(ctx, "multiple engagement reports found, using the first",
			slog.String("user_id", userID),
			slog.Int("count", len(reports)),
		)
	}

	data := reports[0].Data
	if len(data) == 0 {
		return "", fmt.Errorf("%w: user %s has no engagement report data", domain.ErrEngagementReport, userID)
	}
	v, ok := data[benefitsKey]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: user %s engagement report has no value for %s", domain.ErrEngagementReport, userID, benefitsKey)
	}

	return fmt.Sprint(v), nil
}
