package config

import (
	"os"
	"strings"
)

const (
	smsProviderEnv      = "SMS_PROVIDER"
	twilioAccountSIDEnv = "TWILIO_ACCOUNT_SID"
	twilioAuthTokenEnv  = "TWILIO_AUTH_TOKEN"
	twilioFromNumberEnv = "TWILIO_FROM_NUMBER"
)

type SMSProvider string

const (
	SMSProviderPlatform SMSProvider = "platform"
	SMSProviderTwilio   SMSProvider = "twilio"
)

type SMSConfig struct {
	Provider         SMSProvider
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func LoadSMSConfig() *SMSConfig {
	provider := SMSProvider(strings.ToLower(os.Getenv(smsProviderEnv)))
	if provider == "" {
		provider = SMSProviderPlatform
	}

	return &SMSConfig{
		Provider:         provider,
		TwilioAccountSID: os.Getenv(twilioAccountSIDEnv),
		TwilioAuthToken:  os.Getenv(twilioAuthTokenEnv),
		TwilioFromNumber: os.Getenv(twilioFromNumberEnv),
	}
}

func (c *SMSConfig) Validate() error {
	switch c.Provider {
	case SMSProviderPlatform:
		return nil
	case SMSProviderTwilio:
		if c.TwilioAccountSID == "" || c.TwilioAuthToken == "" || c.TwilioFromNumber == "" {
			return ErrTwilioCredentialsMissing
		}
		return nil
	default:
		return ErrUnknownSMSProvider
	}
}
