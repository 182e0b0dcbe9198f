package sms

import (
	"context"
	"errors"
	"testing"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type fakeCreator struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

type participantTexterFunc func(ctx context.Context, studyID, userID, message string) error

func (f participantTexterFunc) SendSMSToParticipant(ctx context.Context, studyID, userID, message string) error {
	return f(ctx, studyID, userID, message)
}

func TestTwilioSenderFormatsNumber(t *testing.T) {
	tests := []struct {
		name   string
		phone  domain.Phone
		wantTo string
	}{
		{name: "us national", phone: domain.Phone{Number: "425-555-5555", RegionCode: "US"}, wantTo: "+14255555555"},
		{name: "already e164", phone: domain.Phone{Number: "+44 20 7946 0958", RegionCode: "GB"}, wantTo: "+442079460958"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			sender := &TwilioSender{api: creator, from: "+15550001111"}
			phone := tt.phone

			err := sender.SendSMS(context.Background(), "study", &domain.Participant{ID: "u1", Phone: &phone}, "hi")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if creator.params.To == nil || *creator.params.To != tt.wantTo {
				t.Errorf("expected to %s, got %v", tt.wantTo, creator.params.To)
			}
			if creator.params.From == nil || *creator.params.From != "+15550001111" {
				t.Errorf("unexpected from %v", creator.params.From)
			}
			if creator.params.Body == nil || *creator.params.Body != "hi" {
				t.Errorf("unexpected body %v", creator.params.Body)
			}
		})
	}
}

func TestTwilioSenderErrors(t *testing.T) {
	sender := &TwilioSender{api: &fakeCreator{}, from: "+1"}
	err := sender.SendSMS(context.Background(), "study", &domain.Participant{ID: "u1"}, "hi")
	if !errors.Is(err, domain.ErrMissingPhoneNumber) {
		t.Errorf("expected ErrMissingPhoneNumber, got %v", err)
	}

	failing := &TwilioSender{api: &fakeCreator{err: errors.New("rejected")}, from: "+1"}
	err = failing.SendSMS(context.Background(), "study", &domain.Participant{ID: "u1", Phone: &domain.Phone{Number: "4255555555"}}, "hi")
	if err == nil {
		t.Error("expected error from twilio failure")
	}
}

func TestPlatformSenderDelegates(t *testing.T) {
	var gotUser, gotMsg string
	sender := NewPlatformSender(participantTexterFunc(func(_ context.Context, _, userID, message string) error {
		gotUser, gotMsg = userID, message
		return nil
	}))

	if err := sender.SendSMS(context.Background(), "study", &domain.Participant{ID: "u1"}, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "u1" || gotMsg != "hello" {
		t.Errorf("got user %q message %q", gotUser, gotMsg)
	}
}

func TestNewSenderSelectsProvider(t *testing.T) {
	platform := participantTexterFunc(func(context.Context, string, string, string) error { return nil })

	s, err := NewSender(&config.SMSConfig{Provider: config.SMSProviderPlatform}, platform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*PlatformSender); !ok {
		t.Errorf("expected *PlatformSender, got %T", s)
	}

	s, err = NewSender(&config.SMSConfig{
		Provider:         config.SMSProviderTwilio,
		TwilioAccountSID: "AC1",
		TwilioAuthToken:  "token",
		TwilioFromNumber: "+15550001111",
	}, platform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*TwilioSender); !ok {
		t.Errorf("expected *TwilioSender, got %T", s)
	}

	if _, err := NewSender(&config.SMSConfig{Provider: config.SMSProviderTwilio}, platform); !errors.Is(err, config.ErrTwilioCredentialsMissing) {
		t.Errorf("expected ErrTwilioCredentialsMissing, got %v", err)
	}
}
