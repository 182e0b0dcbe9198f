//go:build !gcloud

package studyplatform

import (
	"net/http"
	"time"
)

// newHTTPClient creates a plain HTTP client for local development.
func newHTTPClient(_ string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
