package notification

import (
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type BurstKind int

const (
	BurstNone BurstKind = iota
	BurstUpcoming
	BurstCurrent
)

func (k BurstKind) String() string {
	switch k {
	case BurstUpcoming:
		return "upcoming"
	case BurstCurrent:
		return "current"
	default:
		return "none"
	}
}

// BurstWindow is the locator's answer for one participant and day. Dates are
// participant-local calendar dates represented as midnight UTC.
type BurstWindow struct {
	Kind BurstKind
	// Blackout is set when today is inside a burst but in a blackout period.
	Blackout    bool
	Event       domain.ActivityEvent
	Start       time.Time
	End         time.Time
	NotifyStart time.Time
	NotifyEnd   time.Time
}

// locateBurst finds the burst relevant to today. A burst starting tomorrow
// wins over any current burst. Otherwise the first event whose window holds
// today is used, and no later event is considered even when today falls in
// its blackout.
func locateBurst(today time.Time, loc *time.Location, cfg *domain.StudyNotificationConfig, events []domain.ActivityEvent) BurstWindow {
	for _, e := range events {
		start := domain.LocalDate(e.Timestamp, loc)
		if start.AddDate(0, 0, -1).Equal(today) {
			return BurstWindow{Kind: BurstUpcoming, Event: e, Start: start}
		}
	}

	for _, e := range events {
		start := domain.LocalDate(e.Timestamp, loc)
		end := start.AddDate(0, 0, cfg.BurstDurationDays-1)
		if today.Before(start) || today.After(end) {
			continue
		}

		w := BurstWindow{
			Event:       e,
			Start:       start,
			End:         end,
			NotifyStart: start.AddDate(0, 0, cfg.NotificationBlackoutDaysFromStart),
			NotifyEnd:   end.AddDate(0, 0, -cfg.NotificationBlackoutDaysFromEnd),
		}
		if today.Before(w.NotifyStart) || today.After(w.NotifyEnd) {
			w.Kind = BurstNone
			w.Blackout = true
			return w
		}
		w.Kind = BurstCurrent
		return w
	}

	return BurstWindow{Kind: BurstNone}
}
