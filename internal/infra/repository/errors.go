package repository

import "errors"

var (
	ErrInvalidConfigData       = errors.New("invalid notification config data")
	ErrInvalidNotificationData = errors.New("invalid user notification data")
	ErrInvalidWorkerLogData    = errors.New("invalid worker log data")
)
