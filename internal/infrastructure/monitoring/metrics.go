// Package monitoring exposes pipeline counters over Prometheus.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements the pipeline's metrics sink with Prometheus counters.
type Metrics struct {
	registry       *prometheus.Registry
	turns          *prometheus.CounterVec
	oracleFailures prometheus.Counter
	fallbacks      prometheus.Counter
	conflicts      *prometheus.CounterVec
}

// NewMetrics registers the counters on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "souschef",
			Name:      "turns_total",
			Help:      "Conversation turns processed, by classified intent.",
		}, []string{"intent"}),
		oracleFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "souschef",
			Name:      "oracle_failures_total",
			Help:      "Failed recipe generation calls.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "souschef",
			Name:      "fallback_responses_total",
			Help:      "Turns served from the fixed fallback recipe set.",
		}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "souschef",
			Name:      "profile_conflicts_total",
			Help:      "Profile conflicts detected during validation, by type.",
		}, []string{"type"}),
	}

	registry.MustRegister(m.turns, m.oracleFailures, m.fallbacks, m.conflicts)
	return m
}

func (m *Metrics) TurnProcessed(intent string) {
	m.turns.WithLabelValues(intent).Inc()
}

func (m *Metrics) OracleFailure() {
	m.oracleFailures.Inc()
}

func (m *Metrics) FallbackServed() {
	m.fallbacks.Inc()
}

func (m *Metrics) ConflictDetected(conflictType string) {
	m.conflicts.WithLabelValues(conflictType).Inc()
}

// Handler serves the scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
