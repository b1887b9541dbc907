// Package metrics provides Prometheus metrics for directory round trips.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Endpoint labels.
const (
	EndpointProfileByName = "profile_by_name"
	EndpointProfileByID   = "profile_by_id"
)

// Outcome labels, one per error code plus success.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidUsername = "invalid_username"
	OutcomeTransport       = "transport"
	OutcomeUnknown         = "unknown"
)

// Metrics holds the directory client collectors.
type Metrics struct {
	RequestsTotal          *prometheus.CounterVec   // by endpoint and outcome
	RequestDurationSeconds *prometheus.HistogramVec // by endpoint
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// binaries and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "playerid_directory_requests_total",
			Help: "Total number of directory lookups by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),

		RequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "playerid_directory_request_duration_seconds",
			Help:    "Duration of directory round trips by endpoint",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"endpoint"}),
	}
}

// ObserveRequest records one completed lookup.
func (m *Metrics) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.RequestDurationSeconds.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
