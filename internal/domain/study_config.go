package domain

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// StudyNotificationConfig holds the per-study parameters that control burst
// geometry, thresholds, exclusions and message text.
type StudyNotificationConfig struct {
	StudyID                           string              `json:"studyId" validate:"required"`
	AppURL                            string              `json:"appUrl,omitempty"`
	BurstDurationDays                 int                 `json:"burstDurationDays" validate:"gt=0"`
	BurstStartEventIDs                []string            `json:"burstStartEventIdSet"`
	BurstTaskID                       string              `json:"burstTaskId" validate:"required"`
	DefaultPreburstMessage            string              `json:"defaultPreburstMessage,omitempty"`
	EarlyLateCutoffDays               int                 `json:"earlyLateCutoffDays" validate:"gte=0"`
	EngagementSurveyGUID              string              `json:"engagementSurveyGuid,omitempty"`
	ExcludedDataGroups                []string            `json:"excludedDataGroupSet"`
	MissedCumulativeMessages          []string            `json:"missedCumulativeActivitiesMessagesList"`
	MissedEarlyMessages               []string            `json:"missedEarlyActivitiesMessagesList"`
	MissedLateMessages                []string            `json:"missedLaterActivitiesMessagesList"`
	NotificationBlackoutDaysFromStart int                 `json:"notificationBlackoutDaysFromStart" validate:"gte=0"`
	NotificationBlackoutDaysFromEnd   int                 `json:"notificationBlackoutDaysFromEnd" validate:"gte=0"`
	NumActivitiesToCompleteBurst      int                 `json:"numActivitiesToCompleteBurst" validate:"gt=0"`
	NumMissedConsecutiveDaysToNotify  int                 `json:"numMissedConsecutiveDaysToNotify" validate:"gt=0"`
	NumMissedDaysToNotify             int                 `json:"numMissedDaysToNotify" validate:"gt=0"`
	PreburstMessagesByDataGroup       map[string][]string `json:"preburstMessagesByDataGroup"`
	RequiredDataGroupsOneOf           []string            `json:"requiredDataGroupsOneOfSet"`
	RequiredSubpopulationGUIDs        []string            `json:"requiredSubpopulationGuidSet"`
}

// Normalize replaces nil collections with empty ones.
func (c *StudyNotificationConfig) Normalize() {
	if c.BurstStartEventIDs == nil {
		c.BurstStartEventIDs = []string{}
	}
	if c.ExcludedDataGroups == nil {
		c.ExcludedDataGroups = []string{}
	}
	if c.MissedCumulativeMessages == nil {
		c.MissedCumulativeMessages = []string{}
	}
	if c.MissedEarlyMessages == nil {
		c.MissedEarlyMessages = []string{}
	}
	if c.MissedLateMessages == nil {
		c.MissedLateMessages = []string{}
	}
	if c.PreburstMessagesByDataGroup == nil {
		c.PreburstMessagesByDataGroup = map[string][]string{}
	}
	if c.RequiredDataGroupsOneOf == nil {
		c.RequiredDataGroupsOneOf = []string{}
	}
	if c.RequiredSubpopulationGUIDs == nil {
		c.RequiredSubpopulationGUIDs = []string{}
	}
}

// Validate checks field ranges. Overlapping blackout periods are not rejected.
func (c *StudyNotificationConfig) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStudyConfig, err)
	}
	return nil
}

func (c *StudyNotificationConfig) IsBurstStartEvent(eventID string) bool {
	return slices.Contains(c.BurstStartEventIDs, eventID)
}

func (c *StudyNotificationConfig) IsExcludedDataGroup(dataGroup string) bool {
	return slices.Contains(c.ExcludedDataGroups, dataGroup)
}

// MessagesFor returns the message list for a missed-activity notification
// type. PRE_BURST messages are keyed by data group and are not returned here.
func (c *StudyNotificationConfig) MessagesFor(t NotificationType) []string {
	switch t {
	case NotificationTypeCumulative:
		return c.MissedCumulativeMessages
	case NotificationTypeEarly:
		return c.MissedEarlyMessages
	case NotificationTypeLate:
		return c.MissedLateMessages
	default:
		return nil
	}
}
