// Package metrics defines the Prometheus metrics exported by the campus API.
//
// All metrics are registered with the default registry and served on
// /metrics. Naming follows Prometheus conventions:
//   - campus_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// OperationsTotal counts executed GraphQL operations by name and status.
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_graphql_operations_total",
			Help: "Total GraphQL operations by operation name and status.",
		},
		[]string{"operation", "status"},
	)

	// OperationDurationSeconds is a histogram of GraphQL execution time.
	OperationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campus_graphql_operation_duration_seconds",
			Help:    "Duration of GraphQL operations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// AuthRejectionsTotal counts requests turned away by the auth gate.
	AuthRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_auth_rejections_total",
			Help: "Total requests rejected by the auth gate, by reason.",
		},
		[]string{"reason"},
	)

	// LoginsTotal counts login attempts by result.
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_logins_total",
			Help: "Total login attempts by result.",
		},
		[]string{"result"},
	)

	// ActiveSessions is the number of sessions held in the session store.
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "campus_active_sessions",
			Help: "Number of live sessions.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		OperationsTotal,
		OperationDurationSeconds,
		AuthRejectionsTotal,
		LoginsTotal,
		ActiveSessions,
	)
}

// RecordOperation records a finished GraphQL operation.
func RecordOperation(operation, status string, duration time.Duration) {
	if operation == "" {
		operation = "anonymous"
	}
	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDurationSeconds.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordAuthRejection(reason string) {
	AuthRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordLogin(ok bool) {
	if ok {
		LoginsTotal.WithLabelValues(StatusOK).Inc()
		return
	}
	LoginsTotal.WithLabelValues(StatusError).Inc()
}

func SessionOpened() { ActiveSessions.Inc() }

func SessionClosed() { ActiveSessions.Dec() }
