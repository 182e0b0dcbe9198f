package notification

import (
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// isSuppressedBy reports whether last blocks a new missed-activity
// notification at now. PRE_BURST records never block, and the window is
// measured in wall-clock days rather than participant-local dates.
func isSuppressedBy(last *domain.UserNotification, now time.Time, burstDurationDays int) bool {
	if last == nil || last.Type.IsPreBurst() {
		return false
	}
	windowStart := now.Add(-time.Duration(burstDurationDays) * 24 * time.Hour)
	return last.SentAt.After(windowStart)
}
