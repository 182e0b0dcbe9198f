package sms

import (
	"context"
	"fmt"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type participantTexter interface {
	SendSMSToParticipant(ctx context.Context, studyID, userID, message string) error
}

// PlatformSender delegates delivery to the study platform, which owns the
// participant's phone number.
type PlatformSender struct {
	platform participantTexter
}

func NewPlatformSender(platform participantTexter) *PlatformSender {
	return &PlatformSender{platform: platform}
}

func (s *PlatformSender) SendSMS(ctx context.Context, studyID string, participant *domain.Participant, message string) error {
	if err := s.platform.SendSMSToParticipant(ctx, studyID, participant.ID, message); err != nil {
		return fmt.Errorf("failed to send sms to %s: %w", participant.ID, err)
	}
	return nil
}
