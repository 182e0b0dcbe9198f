package domain

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrStudyConfigNotFound  = errors.New("study notification config not found")
	ErrInvalidStudyConfig   = errors.New("invalid study notification config")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrNoMessages           = errors.New("no messages configured for notification")
	ErrInvalidTimeZone      = errors.New("invalid participant time zone")
	ErrIterationDone        = errors.New("no more items")
	ErrWorkerLogNotFound    = errors.New("worker log not found")
	ErrNotificationNotFound = errors.New("user notification not found")
	ErrMissingPhoneNumber   = errors.New("participant has no phone number")
	ErrEngagementReport     = errors.New("engagement report unavailable")
)
