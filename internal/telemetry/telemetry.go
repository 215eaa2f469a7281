// Package telemetry provides Prometheus metrics and tracing for the bot.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "discord-game-bot"
	namespace   = "discord_game_bot"
)

// Result labels shared by the lookup counters.
const (
	ResultFound    = "found"
	ResultEmpty    = "empty"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds all bot Prometheus metrics
type Metrics struct {
	// Command metrics
	CommandsTotal *prometheus.CounterVec

	// Storefront metrics
	SearchesTotal  *prometheus.CounterVec
	SearchDuration prometheus.Histogram
	DetailsTotal   *prometheus.CounterVec
	DetailDuration prometheus.Histogram

	// Selection metrics
	SessionsTotal   *prometheus.CounterVec
	ActiveSessions  prometheus.Gauge
	SessionDuration prometheus.Histogram
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider registers all metrics on reg. A nil reg gets a fresh registry.
func NewProvider(reg *prometheus.Registry) *Provider {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  initMetrics(promauto.With(reg)),
		registry: reg,
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry returns the registry the metrics live on.
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

func initMetrics(f promauto.Factory) *Metrics {
	m := &Metrics{}
	initCommandMetrics(f, m)
	initStorefrontMetrics(f, m)
	initSelectionMetrics(f, m)
	return m
}

func initCommandMetrics(f promauto.Factory, m *Metrics) {
	m.CommandsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total chat commands dispatched, by command name",
	}, []string{"command"})
}

func initStorefrontMetrics(f promauto.Factory, m *Metrics) {
	m.SearchesTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total store searches, by result (found, empty, error)",
	}, []string{"result"})

	m.SearchDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Time to fetch and extract one search page",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	})

	m.DetailsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "details_total",
		Help:      "Total detail lookups, by result (found, not_found, error)",
	}, []string{"result"})

	m.DetailDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "detail_duration_seconds",
		Help:      "Time to resolve one detail record",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	})
}

func initSelectionMetrics(f promauto.Factory, m *Metrics) {
	m.SessionsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selection_sessions_total",
		Help:      "Total selection sessions, by outcome",
	}, []string{"outcome"})

	m.ActiveSessions = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "selection_sessions_active",
		Help:      "Selection sessions currently waiting for input",
	})

	m.SessionDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "selection_session_duration_seconds",
		Help:      "Time from list render to outcome",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45},
	})
}

// RecordCommand counts one dispatched command.
func (p *Provider) RecordCommand(command string) {
	p.Metrics.CommandsTotal.WithLabelValues(command).Inc()
}

// RecordSearch records metrics for a single search
func (p *Provider) RecordSearch(_ context.Context, result string, duration time.Duration) {
	p.Metrics.SearchesTotal.WithLabelValues(result).Inc()
	p.Metrics.SearchDuration.Observe(duration.Seconds())
}

// RecordDetail records metrics for a single detail lookup
func (p *Provider) RecordDetail(_ context.Context, result string, duration time.Duration) {
	p.Metrics.DetailsTotal.WithLabelValues(result).Inc()
	p.Metrics.DetailDuration.Observe(duration.Seconds())
}

// SessionStarted marks a session as waiting.
func (p *Provider) SessionStarted() {
	p.Metrics.ActiveSessions.Inc()
}

// SessionFinished records the outcome label of a finished session.
func (p *Provider) SessionFinished(outcome string, duration time.Duration) {
	p.Metrics.ActiveSessions.Dec()
	p.Metrics.SessionsTotal.WithLabelValues(outcome).Inc()
	p.Metrics.SessionDuration.Observe(duration.Seconds())
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
