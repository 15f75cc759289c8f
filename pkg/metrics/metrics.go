package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Backend REST call latency, labelled by operation and outcome.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todoapi_request_duration_seconds",
			Help:    "Backend REST API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"operation", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	// Confirmation outcomes per action kind: confirmed, cancelled, stale.
	ConfirmationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confirmation_total",
			Help: "Total number of confirmation gate outcomes",
		},
		[]string{"kind", "outcome"},
	)
)

// RecordBackendRequest records one backend call.
func RecordBackendRequest(operation, status string, duration time.Duration) {
	BackendRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementConfirmation counts a confirmation gate outcome.
func IncrementConfirmation(kind, outcome string) {
	ConfirmationCount.WithLabelValues(kind, outcome).Inc()
}
