package config

import "errors"

// ValidateForRun checks the settings needed to process batches.
func ValidateForRun(cfg *Config) error {
	var errs []error

	if err := cfg.StudyPlatform.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Redis.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.SMS.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
