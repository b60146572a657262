// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "transmission_rpc"

// Call outcomes used as the "outcome" label.
const (
	outcomeOK          = "ok"
	outcomeFailed      = "failed"
	outcomeTransport   = "transport_error"
	outcomeDecode      = "decode_error"
	outcomeNoSessionID = "no_session_id"
	outcomeExhausted   = "max_retries"
)

// Metrics is a prometheus.Collector that records calls made by a client.
// Register it with a registry and pass it to WithMetrics.
type Metrics struct {
	calls     *prometheus.CounterVec
	attempts  *prometheus.CounterVec
	conflicts prometheus.Counter
	duration  *prometheus.HistogramVec
}

// NewMetrics returns a new Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "calls_total",
				Help:      "The number of RPC calls by method and outcome.",
			}, []string{"method", "outcome"},
		),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "attempts_total",
				Help:      "The number of HTTP requests sent, by method.",
			}, []string{"method"},
		),
		conflicts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "session_conflicts_total",
				Help:      "The number of 409 responses that renewed the session id.",
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "call_duration_seconds",
				Help:      "The time taken by an RPC call including retries.",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			}, []string{"method"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.calls.Describe(ch)
	m.attempts.Describe(ch)
	m.conflicts.Describe(ch)
	m.duration.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.calls.Collect(ch)
	m.attempts.Collect(ch)
	m.conflicts.Collect(ch)
	m.duration.Collect(ch)
}

// The methods below accept a nil receiver so the engine can call them
// unconditionally.

func (m *Metrics) attempt(method Method) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(string(method)).Inc()
}

func (m *Metrics) conflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

func (m *Metrics) done(method Method, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(string(method), outcome).Inc()
	m.duration.WithLabelValues(string(method)).Observe(time.Since(start).Seconds())
}
