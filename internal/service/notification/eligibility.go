package notification

import (
	"slices"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// Participants are only texted when their zone offset falls in this range,
// so messages arrive at reasonable local hours.
const (
	minTimeZoneOffset = -11 * time.Hour
	maxTimeZoneOffset = -1 * time.Hour
)

// checkEligibility returns a skip reason when the participant must not be
// evaluated. An unparseable time zone is an error rather than a skip.
func checkEligibility(p *domain.Participant, cfg *domain.StudyNotificationConfig, now time.Time) (SkipReason, *time.Location, error) {
	if p.PhoneVerified != nil && !*p.PhoneVerified {
		return SkipPhoneNotVerified, nil, nil
	}

	if p.TimeZone == "" {
		return SkipNoTimeZone, nil, nil
	}
	loc, err := p.Location()
	if err != nil {
		return "", nil, err
	}
	_, offsetSeconds := now.In(loc).Zone()
	offset := time.Duration(offsetSeconds) * time.Second
	if offset < minTimeZoneOffset || offset > maxTimeZoneOffset {
		return SkipTimeZoneOutOfRange, loc, nil
	}

	if !isConsented(p, cfg.RequiredSubpopulationGUIDs) {
		return SkipNotConsented, loc, nil
	}

	for _, g := range p.DataGroups {
		if cfg.IsExcludedDataGroup(g) {
			return SkipExcludedDataGroup, loc, nil
		}
	}

	return "", loc, nil
}

// isConsented requires, for every subpopulation, a non-empty history whose
// newest (last) record is not withdrawn.
func isConsented(p *domain.Participant, required []string) bool {
	for _, guid := range required {
		history := p.ConsentHistories[guid]
		if len(history) == 0 {
			return false
		}
		if history[len(history)-1].IsWithdrawn() {
			return false
		}
	}
	return true
}

func filterBurstStartEvents(events []domain.ActivityEvent, cfg *domain.StudyNotificationConfig) []domain.ActivityEvent {
	return slices.DeleteFunc(slices.Clone(events), func(e domain.ActivityEvent) bool {
		return !cfg.IsBurstStartEvent(e.EventID)
	})
}
