package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSame bool
	}{
		{name: "valid id kept", input: "req-123_abc.1", wantSame: true},
		{name: "empty replaced", input: "", wantSame: false},
		{name: "unsafe characters replaced", input: "abc\ndef", wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAndExtractRequestID(tt.input)
			if tt.wantSame && got != tt.input {
				t.Errorf("expected %q, got %q", tt.input, got)
			}
			if !tt.wantSame && (got == tt.input || got == "") {
				t.Errorf("expected a generated id, got %q", got)
			}
		})
	}
}

func TestHandlerAddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(HandlerConfig{
		Service:       ServiceInfo{Name: "burst-notification", Version: "v1"},
		Environment:   EnvProd,
		DefaultModule: Module("default"),
		Level:         slog.LevelInfo,
		Output:        &buf,
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithModule(ctx, Module("notification"))
	logger.InfoContext(ctx, "hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}

	want := map[string]string{
		"service":    "burst-notification",
		"version":    "v1",
		"request_id": "req-1",
		"module":     "notification",
		"msg":        "hello",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("expected %s=%q, got %v", k, v, entry[k])
		}
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(HandlerConfig{
		Environment: EnvDev,
		Level:       slog.LevelWarn,
		Output:      &buf,
	}))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
}
