package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Agent metrics
	AgentRuns     *prometheus.CounterVec
	AgentDuration *prometheus.HistogramVec

	// Generation metrics
	GenerationsTotal    *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	GenerationsInFlight prometheus.Gauge

	// Normalizer metrics
	Normalizations *prometheus.CounterVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "forge_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		AgentRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_agent_runs_total",
				Help: "Total number of agent runs",
			},
			[]string{"agent", "status"},
		),
		AgentDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "forge_agent_run_duration_seconds",
				Help:    "Agent run duration in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"agent"},
		),

		GenerationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_generations_total",
				Help: "Total number of generation runs",
			},
			[]string{"status"},
		),
		GenerationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forge_generation_duration_seconds",
				Help:    "End-to-end generation run duration in seconds",
				Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
		),
		GenerationsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forge_generations_in_flight",
				Help: "Number of generation runs in progress",
			},
		),

		Normalizations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_blueprint_normalizations_total",
				Help: "Total number of blueprint normalizations by outcome",
			},
			[]string{"outcome"},
		),

		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forge_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forge_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forge_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAgentRun records one agent run outcome
func (m *Metrics) RecordAgentRun(agent string, success bool, duration time.Duration) {
	m.AgentRuns.WithLabelValues(agent, statusLabel(success)).Inc()
	m.AgentDuration.WithLabelValues(agent).Observe(duration.Seconds())
}

// RecordGeneration records one end-to-end generation run
func (m *Metrics) RecordGeneration(success bool, duration time.Duration) {
	m.GenerationsTotal.WithLabelValues(statusLabel(success)).Inc()
	m.GenerationDuration.Observe(duration.Seconds())
}

// RecordNormalization records a blueprint normalization outcome
// ("strict", "repaired", or "fallback")
func (m *Metrics) RecordNormalization(outcome string) {
	m.Normalizations.WithLabelValues(outcome).Inc()
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
}

// IncGenerationsInFlight increments in-progress generation runs
func (m *Metrics) IncGenerationsInFlight() {
	m.GenerationsInFlight.Inc()
}

// DecGenerationsInFlight decrements in-progress generation runs
func (m *Metrics) DecGenerationsInFlight() {
	m.GenerationsInFlight.Dec()
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
