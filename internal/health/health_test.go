package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "ping")
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func TestReadyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
		wantHealth Status
	}{
		{name: "redis up", pinger: stubPinger{}, wantStatus: http.StatusOK, wantHealth: StatusHealthy},
		{name: "redis down", pinger: stubPinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantHealth: StatusUnhealthy},
		{name: "no redis", pinger: nil, wantStatus: http.StatusOK, wantHealth: StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health/ready", NewChecker(tt.pinger, "test").ReadyHandler())

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body HealthStatus
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantHealth {
				t.Errorf("health = %s, want %s", body.Status, tt.wantHealth)
			}
		})
	}
}
