package stub

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/infra/studyplatform"
)

func newStubServer(t *testing.T) (*Storage, *studyplatform.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := NewStorage()
	r := gin.New()
	NewHandler(storage).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return storage, studyplatform.NewClient(srv.URL, "", 5*time.Second)
}

func TestStub_AccountPaging(t *testing.T) {
	storage, client := newStubServer(t)

	seeds := make([]ParticipantSeed, 0, 25)
	for i := range 25 {
		seeds = append(seeds, ParticipantSeed{Participant: domain.Participant{ID: fmt.Sprintf("user-%02d", i)}})
	}
	storage.Seed("study-1", seeds)

	ctx := context.Background()
	it := client.AllAccountSummaries("study-1")

	var ids []string
	for {
		s, err := it.Next(ctx)
		if errors.Is(err, domain.ErrIterationDone) {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		ids = append(ids, s.ID)
	}

	if len(ids) != 25 {
		t.Fatalf("got %d accounts, want 25", len(ids))
	}
	if ids[0] != "user-00" || ids[24] != "user-24" {
		t.Errorf("unexpected order: first %s last %s", ids[0], ids[24])
	}
}

func TestStub_TaskHistoryCursor(t *testing.T) {
	storage, client := newStubServer(t)

	start := time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC)
	activities := make([]domain.ScheduledActivity, 0, 14)
	for i := range 14 {
		activities = append(activities, domain.ScheduledActivity{
			GUID:        fmt.Sprintf("a-%02d", i),
			ScheduledOn: start.Add(time.Duration(i) * 12 * time.Hour),
			Status:      domain.ScheduleStatusFinished,
		})
	}
	storage.Seed("study-1", []ParticipantSeed{{
		Participant: domain.Participant{ID: "user-1"},
		Activities:  activities,
	}})

	ctx := context.Background()
	it := client.GetTaskHistory(ctx, "study-1", "user-1", "task", start, start.AddDate(0, 0, 6))

	count := 0
	for {
		_, err := it.Next(ctx)
		if errors.Is(err, domain.ErrIterationDone) {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		count++
	}

	// 12 activities fall inside six days; two pages of 10 and 2.
	if count != 12 {
		t.Errorf("got %d activities, want 12", count)
	}
}

func TestStub_ParticipantAndSMS(t *testing.T) {
	storage, client := newStubServer(t)
	ctx := context.Background()

	verified := true
	storage.Seed("study-1", []ParticipantSeed{{
		Participant: domain.Participant{ID: "user-1", PhoneVerified: &verified, TimeZone: "-07:00"},
		Events:      []domain.ActivityEvent{{EventID: "enrollment", Timestamp: time.Date(2018, 4, 30, 15, 0, 0, 0, time.UTC)}},
		Reports: map[string][]domain.ReportData{
			"Engagement": {{Date: "2000-12-31", Data: map[string]any{"benefits": "my health"}}},
		},
	}})

	p, err := client.GetParticipant(ctx, "study-1", "user-1")
	if err != nil {
		t.Fatalf("GetParticipant() error = %v", err)
	}
	if p.TimeZone != "-07:00" || p.PhoneVerified == nil || !*p.PhoneVerified {
		t.Errorf("unexpected participant %+v", p)
	}

	if _, err := client.GetParticipant(ctx, "study-1", "missing"); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("expected ErrParticipantNotFound, got %v", err)
	}

	events, err := client.GetActivityEvents(ctx, "study-1", "user-1")
	if err != nil || len(events) != 1 {
		t.Fatalf("GetActivityEvents() = %v, %v", events, err)
	}

	day := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)
	reports, err := client.GetParticipantReports(ctx, "study-1", "user-1", "Engagement", day, day)
	if err != nil || len(reports) != 1 {
		t.Fatalf("GetParticipantReports() = %v, %v", reports, err)
	}

	if err := client.SendSMSToParticipant(ctx, "study-1", "user-1", "hello"); err != nil {
		t.Fatalf("SendSMSToParticipant() error = %v", err)
	}
	sent := storage.Sent("study-1")
	if len(sent) != 1 || sent[0].Message != "hello" {
		t.Errorf("unexpected sent messages %+v", sent)
	}

	storage.Reset("study-1")
	if len(storage.Sent("study-1")) != 0 {
		t.Error("expected reset to clear messages")
	}
}
