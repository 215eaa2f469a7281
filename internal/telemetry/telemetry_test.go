package telemetry_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Kwehdev/discord-game-bot/internal/telemetry"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	provider := telemetry.NewProvider(nil)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.Tracer)
	assert.NotNil(t, provider.Metrics)
	assert.NotNil(t, provider.Registry())
}

func TestNewProvider_IndependentRegistries(t *testing.T) {
	t.Parallel()

	// Registering twice on separate registries must not panic.
	first := telemetry.NewProvider(prometheus.NewRegistry())
	second := telemetry.NewProvider(prometheus.NewRegistry())

	first.RecordCommand("steam")
	assert.InDelta(t, 1, testutil.ToFloat64(first.Metrics.CommandsTotal.WithLabelValues("steam")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(second.Metrics.CommandsTotal.WithLabelValues("steam")), 0)
}

func TestRecordSearchAndDetail(t *testing.T) {
	t.Parallel()

	provider := telemetry.NewProvider(nil)
	ctx := context.Background()

	provider.RecordSearch(ctx, telemetry.ResultFound, 120*time.Millisecond)
	provider.RecordSearch(ctx, telemetry.ResultEmpty, 80*time.Millisecond)
	provider.RecordSearch(ctx, telemetry.ResultFound, 90*time.Millisecond)
	provider.RecordDetail(ctx, telemetry.ResultNotFound, 30*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(provider.Metrics.SearchesTotal.WithLabelValues(telemetry.ResultFound)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(provider.Metrics.SearchesTotal.WithLabelValues(telemetry.ResultEmpty)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(provider.Metrics.DetailsTotal.WithLabelValues(telemetry.ResultNotFound)), 0)
}

func TestSessionGauge(t *testing.T) {
	t.Parallel()

	provider := telemetry.NewProvider(nil)

	provider.SessionStarted()
	provider.SessionStarted()
	assert.InDelta(t, 2, testutil.ToFloat64(provider.Metrics.ActiveSessions), 0)

	provider.SessionFinished("cancelled", time.Second)
	assert.InDelta(t, 1, testutil.ToFloat64(provider.Metrics.ActiveSessions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(provider.Metrics.SessionsTotal.WithLabelValues("cancelled")), 0)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	t.Parallel()

	provider := telemetry.NewProvider(nil)
	provider.RecordCommand("help")

	rec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `discord_game_bot_commands_total{command="help"} 1`)
}

func TestStartSpan(t *testing.T) {
	t.Parallel()

	provider := telemetry.NewProvider(nil)

	ctx, span := provider.StartSpan(context.Background(), "test", attribute.String("query", "portal"))
	defer span.End()

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}
