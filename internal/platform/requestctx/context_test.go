package requestctx

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestLoggerDefaultsToNoop(t *testing.T) {
	if Logger(context.Background()) != noopLogger {
		t.Fatalf("expected noop logger for bare context")
	}
	if Logger(nil) != noopLogger {
		t.Fatalf("expected noop logger for nil context")
	}

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	if Logger(ctx) != logger {
		t.Fatalf("expected stored logger")
	}
}

func TestTraceAndTenant(t *testing.T) {
	ctx := WithTrace(context.Background(), TraceInfo{TraceID: "abc", SpanID: "def"})
	if got := TraceID(ctx); got != "abc" {
		t.Fatalf("expected trace id abc got %q", got)
	}
	if TraceID(context.Background()) != "" {
		t.Fatalf("expected empty trace id")
	}

	if _, ok := Tenant(ctx); ok {
		t.Fatalf("expected no tenant")
	}
	ctx = WithTenant(ctx, "tenant-a")
	if got, ok := Tenant(ctx); !ok || got != "tenant-a" {
		t.Fatalf("expected tenant-a got %q (%v)", got, ok)
	}
	if _, ok := Tenant(WithTenant(context.Background(), "")); ok {
		t.Fatalf("expected empty tenant to be absent")
	}
}
