package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
)

func TestParseCloudTraceContext(t *testing.T) {
	info, spanCtx, ok := parseCloudTraceContext("105445aa7843bc8bf206b12000100000/1;o=1")
	if !ok {
		t.Fatalf("expected header to parse")
	}
	if info.TraceID != "105445aa7843bc8bf206b12000100000" {
		t.Fatalf("unexpected trace id %s", info.TraceID)
	}
	if info.SpanID != "0000000000000001" {
		t.Fatalf("unexpected span id %s", info.SpanID)
	}
	if !info.Sampled || !spanCtx.IsSampled() || !spanCtx.IsRemote() {
		t.Fatalf("expected sampled remote span context")
	}

	for _, header := range []string{"", "abc/1", "105445aa7843bc8bf206b12000100000", "105445aa7843bc8bf206b12000100000/zz"} {
		if _, _, ok := parseCloudTraceContext(header); ok {
			t.Fatalf("expected %q to be rejected", header)
		}
	}
}

func TestParseSpanIDDecimal(t *testing.T) {
	spanID, ok := parseSpanID("12345678901234567890")
	if !ok {
		t.Fatalf("expected decimal span id to parse")
	}
	if !spanID.IsValid() {
		t.Fatalf("expected valid span id")
	}
}

func TestParseSpanIDHex(t *testing.T) {
	spanID, ok := parseSpanID("00f067aa0ba902b7")
	if !ok {
		t.Fatalf("expected hex span id to parse")
	}
	if spanID.String() != "00f067aa0ba902b7" {
		t.Fatalf("unexpected span id %s", spanID)
	}

	if _, ok := parseSpanID("f067aa0ba902b7zz"); ok {
		t.Fatalf("expected malformed span id to be rejected")
	}
}

func TestTraceMiddlewareStoresTraceInfo(t *testing.T) {
	var got requestctx.TraceInfo
	handler := TraceMiddleware("project-1")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = requestctx.Trace(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages", nil)
	req.Header.Set(cloudTraceHeader, "105445aa7843bc8bf206b12000100000/1;o=1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got.ProjectID != "project-1" {
		t.Fatalf("expected project id, got %+v", got)
	}
	if got.TraceID != "105445aa7843bc8bf206b12000100000" {
		t.Fatalf("expected remote trace id to be continued, got %s", got.TraceID)
	}
	if header := rec.Header().Get(cloudTraceHeader); !strings.HasPrefix(header, got.TraceID+"/") {
		t.Fatalf("expected trace header echoed, got %q", header)
	}
}

func TestRequestLoggerMiddlewareLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	handler := InjectLoggerMiddleware(logger)(RequestLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pages/resolve?tenant=tenant-a", nil))

	completed := logs.FilterMessage("request completed").All()
	if len(completed) != 1 {
		t.Fatalf("expected one completion log, got %d", len(completed))
	}
	entry := completed[0]
	if entry.Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level for 404, got %s", entry.Level)
	}
	fields := entry.ContextMap()
	if fields["status"] != int64(http.StatusNotFound) {
		t.Fatalf("unexpected status field %#v", fields["status"])
	}
	if fields["tenant"] != "tenant-a" {
		t.Fatalf("expected tenant field, got %#v", fields["tenant"])
	}
}

func TestRecoveryMiddlewareWritesJSONError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := RecoveryMiddleware(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal_server_error") {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Fatalf("expected panic to be logged via fallback logger")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := sanitizeString("a\x00b\nc", 0); got != "abc" {
		t.Fatalf("expected control characters removed, got %q", got)
	}
	if got := SanitizeTenant(strings.Repeat("x", 100)); len(got) != 64 {
		t.Fatalf("expected tenant truncated to 64, got %d", len(got))
	}
	if SanitizeRoute("") != "/" {
		t.Fatalf("expected empty route to become /")
	}
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := newLogger("not-a-level", "stderr")
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled at default level")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info enabled")
	}
}
