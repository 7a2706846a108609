package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track news use case activity
var (
	// NewsOperationsTotal counts news use case invocations by operation and result
	NewsOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_operations_total",
			Help: "Total number of news operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// NewsOperationDuration measures news use case latency
	NewsOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_operation_duration_seconds",
			Help:    "News operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	// NewsRuleViolationsTotal counts rejected writes by business rule
	NewsRuleViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_rule_violations_total",
			Help: "Total number of news writes rejected by a business rule",
		},
		[]string{"rule"},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)
