package domain

// NotificationType identifies which reminder condition a notification was sent for.
type NotificationType string

const (
	NotificationTypeCumulative NotificationType = "CUMULATIVE"
	NotificationTypeEarly      NotificationType = "EARLY"
	NotificationTypeLate       NotificationType = "LATE"
	NotificationTypePreBurst   NotificationType = "PRE_BURST"

	// NotificationTypeUnknown is only produced when reading log records written
	// before the type was stored.
	NotificationTypeUnknown NotificationType = "UNKNOWN"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsPreBurst() bool {
	return t == NotificationTypePreBurst
}

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeCumulative, NotificationTypeEarly, NotificationTypeLate, NotificationTypePreBurst:
		return true
	default:
		return false
	}
}

// ParseNotificationType maps a stored value to a NotificationType. Empty or
// unrecognised values map to NotificationTypeUnknown.
func ParseNotificationType(s string) NotificationType {
	t := NotificationType(s)
	if t.IsValid() {
		return t
	}
	return NotificationTypeUnknown
}
