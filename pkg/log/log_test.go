package log_test

import (
	"context"
	"testing"

	"todo-web/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "production", Encoding: "json"},
	}
	for _, cfg := range cases {
		t.Run(cfg.Level+"/"+cfg.Encoding, func(t *testing.T) {
			l := log.Init(cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			l.Infof(log.WithRequestID(context.Background(), "req-2"), "hello %s", "world")
		})
	}
}
