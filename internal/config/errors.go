package config

import "errors"

var (
	ErrRedisAddrMissing         = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB           = errors.New("REDIS_DB must be a valid integer")
	ErrStudyPlatformURLMissing  = errors.New("STUDY_PLATFORM_URL is required")
	ErrInvalidWorkerSetting     = errors.New("invalid worker setting")
	ErrTwilioCredentialsMissing = errors.New("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER are required for the twilio SMS provider")
	ErrUnknownSMSProvider       = errors.New("SMS_PROVIDER must be one of platform, twilio")
	ErrDotenvLoad               = errors.New("failed to load dotenv file")
)
