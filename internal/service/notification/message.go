package notification

import (
	"fmt"
	"math/rand/v2"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// selectMessage picks the raw message text for t. Missed-activity types draw
// uniformly from their list; PRE_BURST uses the list of the participant's
// first data group that has one.
func selectMessage(rng *rand.Rand, cfg *domain.StudyNotificationConfig, p *domain.Participant, t domain.NotificationType) (string, error) {
	var messages []string

	if t.IsPreBurst() {
		found := false
		for _, g := range p.DataGroups {
			if list, ok := cfg.PreburstMessagesByDataGroup[g]; ok {
				messages = list
				found = true
				break
			}
		}
		if !found && cfg.DefaultPreburstMessage != "" {
			return cfg.DefaultPreburstMessage, nil
		}
	} else {
		messages = cfg.MessagesFor(t)
	}

	if len(messages) == 0 {
		return "", fmt.Errorf("%w: type %s for user %s", domain.ErrNoMessages, t, p.ID)
	}

	return messages[rng.IntN(len(messages))], nil
}
