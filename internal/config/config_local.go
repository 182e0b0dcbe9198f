//go:build !gcloud

package config

import "errors"

func (c *TaskQueueConfig) Validate() error {
	if c.PrimindTasksURL != "" && c.BatchTargetURL == "" {
		return errors.New("BATCH_TARGET_URL is required when PRIMIND_TASKS_URL is set")
	}
	return nil
}
