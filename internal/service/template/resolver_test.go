package template

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		reports    []domain.ReportData
		reportErr  error
		wantFetch  bool
		want       string
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:    "no variables",
			message: "plain message",
			want:    "plain message",
		},
		{
			name:    "url only does not fetch reports",
			message: "open ${url} now",
			want:    "open https://example.com/app now",
		},
		{
			name:      "study commitment and url",
			message:   "Remember ${studyCommitment}. ${url}",
			wantFetch: true,
			reports: []domain.ReportData{
				{Date: "2000-12-31", Data: map[string]any{"benefits": "my health"}},
			},
			want: "Remember my health. https://example.com/app",
		},
		{
			name:      "multiple reports uses first",
			message:   "${studyCommitment}",
			wantFetch: true,
			reports: []domain.ReportData{
				{Data: map[string]any{"benefits": "first"}},
				{Data: map[string]any{"benefits": "second"}},
			},
			want: "first",
		},
		{
			name:      "no report",
			message:   "${studyCommitment}",
			wantFetch: true,
			reports:   []domain.ReportData{},
			wantErr:   domain.ErrEngagementReport,
		},
		{
			name:      "empty data",
			message:   "${studyCommitment}",
			wantFetch: true,
			reports:   []domain.ReportData{{Data: map[string]any{}}},
			wantErr:   domain.ErrEngagementReport,
		},
		{
			name:      "missing key",
			message:   "${studyCommitment}",
			wantFetch: true,
			reports:   []domain.ReportData{{Data: map[string]any{"other": "x"}}},
			wantErr:   domain.ErrEngagementReport,
		},
		{
			name:       "report source failure",
			message:    "${studyCommitment}",
			wantFetch:  true,
			reportErr:  errors.New("platform down"),
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reports := domain.NewMockReportSource(ctrl)
			if tt.wantFetch {
				reports.EXPECT().
					GetParticipantReports(gomock.Any(), "test-study", "user-1", EngagementReportID, GlobalReportDate, GlobalReportDate).
					Return(tt.reports, tt.reportErr)
			}

			cfg := testutil.StudyConfig()
			cfg.AppURL = "https://example.com/app"

			got, err := NewResolver(reports).Resolve(context.Background(), "test-study", cfg, testutil.Participant("user-1"), tt.message)

			if tt.wantErr != nil || tt.wantAnyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
