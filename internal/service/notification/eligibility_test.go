package notification

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2018, 5, 3, 18, 0, 0, 0, time.UTC)
	withdrawn := time.Date(2018, 4, 10, 0, 0, 0, 0, time.UTC)
	signed := time.Date(2018, 4, 1, 0, 0, 0, 0, time.UTC)
	unverified := false

	tests := []struct {
		name       string
		mutate     func(p *domain.Participant)
		wantReason SkipReason
		wantErr    bool
	}{
		{
			name:   "eligible",
			mutate: func(p *domain.Participant) {},
		},
		{
			name:   "phone verification unknown is eligible",
			mutate: func(p *domain.Participant) { p.PhoneVerified = nil },
		},
		{
			name:       "phone not verified",
			mutate:     func(p *domain.Participant) { p.PhoneVerified = &unverified },
			wantReason: SkipPhoneNotVerified,
		},
		{
			name:       "no time zone",
			mutate:     func(p *domain.Participant) { p.TimeZone = "" },
			wantReason: SkipNoTimeZone,
		},
		{
			name:    "unparseable time zone",
			mutate:  func(p *domain.Participant) { p.TimeZone = "Not/AZone" },
			wantErr: true,
		},
		{
			name:   "lower offset bound",
			mutate: func(p *domain.Participant) { p.TimeZone = "-11:00" },
		},
		{
			name:   "upper offset bound",
			mutate: func(p *domain.Participant) { p.TimeZone = "-01:00" },
		},
		{
			name:       "offset below range",
			mutate:     func(p *domain.Participant) { p.TimeZone = "-12:00" },
			wantReason: SkipTimeZoneOutOfRange,
		},
		{
			name:       "utc is out of range",
			mutate:     func(p *domain.Participant) { p.TimeZone = "+00:00" },
			wantReason: SkipTimeZoneOutOfRange,
		},
		{
			name:       "offset above range",
			mutate:     func(p *domain.Participant) { p.TimeZone = "+09:00" },
			wantReason: SkipTimeZoneOutOfRange,
		},
		{
			name:   "iana zone in range",
			mutate: func(p *domain.Participant) { p.TimeZone = "America/Los_Angeles" },
		},
		{
			name:       "missing required consent",
			mutate:     func(p *domain.Participant) { p.ConsentHistories = map[string][]domain.ConsentRecord{} },
			wantReason: SkipNotConsented,
		},
		{
			name: "empty consent history",
			mutate: func(p *domain.Participant) {
				p.ConsentHistories["required-subpop-1"] = []domain.ConsentRecord{}
			},
			wantReason: SkipNotConsented,
		},
		{
			name: "latest consent withdrawn",
			mutate: func(p *domain.Participant) {
				p.ConsentHistories["required-subpop-1"] = []domain.ConsentRecord{
					{SubpopulationGUID: "required-subpop-1", SignedOn: signed, WithdrewOn: &withdrawn},
				}
			},
			wantReason: SkipNotConsented,
		},
		{
			name: "withdrawn then re-signed",
			mutate: func(p *domain.Participant) {
				p.ConsentHistories["required-subpop-1"] = []domain.ConsentRecord{
					{SubpopulationGUID: "required-subpop-1", SignedOn: signed, WithdrewOn: &withdrawn},
					{SubpopulationGUID: "required-subpop-1", SignedOn: withdrawn.AddDate(0, 0, 1)},
				}
			},
		},
		{
			name:       "excluded data group",
			mutate:     func(p *domain.Participant) { p.DataGroups = []string{"required-group-1", "excluded-group-2"} },
			wantReason: SkipExcludedDataGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.Participant("user-1")
			tt.mutate(p)

			reason, _, err := checkEligibility(p, testutil.StudyConfig(), now)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reason != tt.wantReason {
				t.Errorf("got reason %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestFilterBurstStartEvents(t *testing.T) {
	cfg := testutil.StudyConfig()
	events := []domain.ActivityEvent{
		{EventID: "enrollment"},
		{EventID: "activities_retrieved"},
		{EventID: "custom:activityBurst2Start"},
	}

	got := filterBurstStartEvents(events, cfg)
	if len(got) != 2 || got[0].EventID != "enrollment" || got[1].EventID != "custom:activityBurst2Start" {
		t.Errorf("unexpected filtered events %+v", got)
	}
	if len(events) != 3 {
		t.Errorf("input slice was modified: %+v", events)
	}
}
