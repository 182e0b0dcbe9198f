package sms

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSender texts participants directly through Twilio.
type TwilioSender struct {
	api  messageCreator
	from string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(
		twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		},
	)

	return &TwilioSender{
		api:  client.Api,
		from: from,
	}
}

func (s *TwilioSender) SendSMS(ctx context.Context, studyID string, participant *domain.Participant, message string) error {
	if participant == nil || participant.Phone == nil || participant.Phone.Number == "" {
		return domain.ErrMissingPhoneNumber
	}

	to := participant.Phone.E164()

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		slog.ErrorContext(ctx, "twilio send failed",
			slog.String("study_id", studyID),
			slog.String("user_id", participant.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send sms to %s: %w", participant.ID, err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	slog.DebugContext(ctx, "twilio message sent",
		slog.String("study_id", studyID),
		slog.String("user_id", participant.ID),
		slog.String("message_sid", sid),
	)

	return nil
}
