package config

import (
	"os"
	"strconv"
	"time"
)

const (
	studyPlatformURLEnv     = "STUDY_PLATFORM_URL"
	studyPlatformAPIKeyEnv  = "STUDY_PLATFORM_API_KEY"
	studyPlatformTimeoutEnv = "STUDY_PLATFORM_TIMEOUT_SECONDS"

	defaultStudyPlatformTimeout = 30 * time.Second
)

type StudyPlatformConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

func LoadStudyPlatformConfig() *StudyPlatformConfig {
	timeout := defaultStudyPlatformTimeout
	if v := os.Getenv(studyPlatformTimeoutEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	return &StudyPlatformConfig{
		URL:     os.Getenv(studyPlatformURLEnv),
		APIKey:  os.Getenv(studyPlatformAPIKeyEnv),
		Timeout: timeout,
	}
}

func (c *StudyPlatformConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrStudyPlatformURLMissing
	}
	return nil
}
