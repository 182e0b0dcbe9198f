package sms

import (
	"github.com/KasumiMercury/primind-burst-notification/internal/config"
	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

// NewSender picks the SMS transport configured for this deployment.
func NewSender(cfg *config.SMSConfig, platform participantTexter) (domain.SMSSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case config.SMSProviderTwilio:
		return NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber), nil
	default:
		return NewPlatformSender(platform), nil
	}
}

var (
	_ domain.SMSSender = (*TwilioSender)(nil)
	_ domain.SMSSender = (*PlatformSender)(nil)
)
