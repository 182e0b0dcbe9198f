package notification

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

var pacific = time.FixedZone("-07:00", -7*3600)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLocateBurstWindowDays(t *testing.T) {
	cfg := testutil.StudyConfig()
	// 08:00 local on 2018-04-30.
	events := []domain.ActivityEvent{{EventID: "enrollment", Timestamp: time.Date(2018, 4, 30, 15, 0, 0, 0, time.UTC)}}

	tests := []struct {
		today        time.Time
		wantKind     BurstKind
		wantBlackout bool
	}{
		{today: date(2018, 4, 28), wantKind: BurstNone},
		{today: date(2018, 4, 29), wantKind: BurstUpcoming},
		{today: date(2018, 4, 30), wantKind: BurstNone, wantBlackout: true},
		{today: date(2018, 5, 1), wantKind: BurstNone, wantBlackout: true},
		{today: date(2018, 5, 2), wantKind: BurstNone, wantBlackout: true},
		{today: date(2018, 5, 3), wantKind: BurstCurrent},
		{today: date(2018, 5, 4), wantKind: BurstCurrent},
		{today: date(2018, 5, 5), wantKind: BurstCurrent},
		{today: date(2018, 5, 6), wantKind: BurstCurrent},
		{today: date(2018, 5, 7), wantKind: BurstCurrent},
		{today: date(2018, 5, 8), wantKind: BurstNone, wantBlackout: true},
		{today: date(2018, 5, 9), wantKind: BurstNone},
	}

	for _, tt := range tests {
		t.Run(tt.today.Format(DateLayout), func(t *testing.T) {
			got := locateBurst(tt.today, pacific, cfg, events)
			if got.Kind != tt.wantKind {
				t.Errorf("got kind %s, want %s", got.Kind, tt.wantKind)
			}
			if got.Blackout != tt.wantBlackout {
				t.Errorf("got blackout %v, want %v", got.Blackout, tt.wantBlackout)
			}
			if got.Kind == BurstCurrent && !got.Start.Equal(date(2018, 4, 30)) {
				t.Errorf("got start %v, want 2018-04-30", got.Start)
			}
		})
	}
}

func TestLocateBurstUsesParticipantLocalDate(t *testing.T) {
	cfg := testutil.StudyConfig()
	// 2018-05-01 03:00 UTC is still 2018-04-30 locally.
	events := []domain.ActivityEvent{{EventID: "enrollment", Timestamp: time.Date(2018, 5, 1, 3, 0, 0, 0, time.UTC)}}

	got := locateBurst(date(2018, 4, 29), pacific, cfg, events)
	if got.Kind != BurstUpcoming {
		t.Errorf("got kind %s, want upcoming", got.Kind)
	}
}

func TestLocateBurstUpcomingPreemptsCurrent(t *testing.T) {
	cfg := testutil.StudyConfig()
	events := []domain.ActivityEvent{
		// Current burst 2018-04-25..2018-05-03, notifiable on 2018-04-29.
		{EventID: "enrollment", Timestamp: time.Date(2018, 4, 25, 15, 0, 0, 0, time.UTC)},
		// Starts tomorrow.
		{EventID: "custom:activityBurst2Start", Timestamp: time.Date(2018, 4, 30, 15, 0, 0, 0, time.UTC)},
	}

	got := locateBurst(date(2018, 4, 29), pacific, cfg, events)
	if got.Kind != BurstUpcoming {
		t.Fatalf("got kind %s, want upcoming", got.Kind)
	}
	if got.Event.EventID != "custom:activityBurst2Start" {
		t.Errorf("got event %s, want custom:activityBurst2Start", got.Event.EventID)
	}
}

func TestLocateBurstBlackoutStopsSearch(t *testing.T) {
	cfg := testutil.StudyConfig()
	cfg.BurstDurationDays = 20
	events := []domain.ActivityEvent{
		// Today is in this window's head blackout.
		{EventID: "enrollment", Timestamp: time.Date(2018, 5, 2, 15, 0, 0, 0, time.UTC)},
		// Overlapping window that would otherwise be notifiable.
		{EventID: "custom:activityBurst2Start", Timestamp: time.Date(2018, 4, 25, 15, 0, 0, 0, time.UTC)},
	}

	got := locateBurst(date(2018, 5, 3), pacific, cfg, events)
	if got.Kind != BurstNone || !got.Blackout {
		t.Errorf("got kind %s blackout %v, want none in blackout", got.Kind, got.Blackout)
	}
}

// Overlapping windows are not rejected. When both hold a notifiable today the
// first event in iteration order is used.
func TestLocateBurstOverlappingCurrentWindowsFirstEventWins(t *testing.T) {
	cfg := testutil.StudyConfig()
	// Notifiable 2018-05-03..2018-05-07.
	first := domain.ActivityEvent{EventID: "enrollment", Timestamp: time.Date(2018, 4, 30, 15, 0, 0, 0, time.UTC)}
	// Notifiable 2018-05-05..2018-05-09.
	second := domain.ActivityEvent{EventID: "custom:activityBurst2Start", Timestamp: time.Date(2018, 5, 2, 15, 0, 0, 0, time.UTC)}

	tests := []struct {
		name      string
		events    []domain.ActivityEvent
		wantEvent string
		wantStart time.Time
	}{
		{name: "enrollment first", events: []domain.ActivityEvent{first, second}, wantEvent: "enrollment", wantStart: date(2018, 4, 30)},
		{name: "second burst first", events: []domain.ActivityEvent{second, first}, wantEvent: "custom:activityBurst2Start", wantStart: date(2018, 5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := locateBurst(date(2018, 5, 5), pacific, cfg, tt.events)
			if got.Kind != BurstCurrent {
				t.Fatalf("got kind %s, want current", got.Kind)
			}
			if got.Event.EventID != tt.wantEvent {
				t.Errorf("got event %s, want %s", got.Event.EventID, tt.wantEvent)
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("got start %v, want %v", got.Start, tt.wantStart)
			}
		})
	}
}

func TestLocateBurstNoEvents(t *testing.T) {
	got := locateBurst(date(2018, 5, 3), pacific, testutil.StudyConfig(), nil)
	if got.Kind != BurstNone || got.Blackout {
		t.Errorf("got %+v, want plain none", got)
	}
}
