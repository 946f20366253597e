// Package metrics holds the service's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DiscoveryRequests counts discovery requests by candidate kind and outcome.
	DiscoveryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_requests_total",
			Help: "Total number of discovery requests",
		},
		[]string{"kind", "outcome"},
	)

	DiscoveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_duration_seconds",
			Help:    "Duration of discovery requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"kind"},
	)

	// DroppedCandidates counts candidates dropped because a signal lookup failed.
	DroppedCandidates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_dropped_candidates_total",
			Help: "Total number of candidates dropped during scoring",
		},
		[]string{"kind"},
	)

	// DroppedActions counts actions discarded because the recorder queue was full.
	DroppedActions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_dropped_actions_total",
			Help: "Total number of discovery actions dropped before being recorded",
		},
	)

	DependencyRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dependency_retries_total",
			Help: "Total number of retried calls to external dependencies",
		},
		[]string{"backend"},
	)

	// CircuitBreakerState is 0 when closed, 1 when half-open and 2 when open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"backend"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"backend", "from", "to"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
