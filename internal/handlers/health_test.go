package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealthHandlersHealthz(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(30 * time.Second)
	handlers := NewHealthHandlers(
		WithHealthBuildInfo(BuildInfo{
			Version:     "1.0.0",
			CommitSHA:   "abc123",
			Environment: "prod",
			StartedAt:   start,
		}),
		WithHealthClock(func() time.Time { return now }),
	)

	rr := httptest.NewRecorder()
	handlers.Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	decodeBody(t, rr, &body)
	require.Equal(t, healthStatusOK, body["status"])
	require.Equal(t, "30s", body["uptime"])
	require.Equal(t, "1.0.0", body["version"])
	require.Equal(t, "abc123", body["commitSha"])
	require.Equal(t, "prod", body["environment"])
}

func TestHealthHandlersReadyz(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("all checks pass", func(t *testing.T) {
		handlers := NewHealthHandlers(
			WithHealthClock(clock),
			WithReadinessCheck("registry", func(context.Context) error { return nil }),
		)
		rr := httptest.NewRecorder()
		handlers.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var body readinessPayload
		decodeBody(t, rr, &body)
		require.Equal(t, healthStatusOK, body.Status)
		require.Empty(t, body.Details)
		require.Equal(t, healthStatusOK, body.Checks["registry"].Status)
	})

	t.Run("failing check degrades", func(t *testing.T) {
		handlers := NewHealthHandlers(
			WithHealthClock(clock),
			WithReadinessCheck("registry", func(context.Context) error { return nil }),
			WithReadinessCheck("remote", func(context.Context) error { return errors.New("unreachable") }),
		)
		rr := httptest.NewRecorder()
		handlers.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rr.Code)

		var body readinessPayload
		decodeBody(t, rr, &body)
		require.Equal(t, healthStatusDegraded, body.Status)
		require.Equal(t, []string{"remote: unreachable"}, body.Details)
		require.Equal(t, "unreachable", body.Checks["remote"].Error)
	})
}
