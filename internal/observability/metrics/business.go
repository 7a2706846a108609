package metrics

import (
	"database/sql"
	"time"
)

// Operation results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// RecordNewsOperation records the outcome and latency of a news use case.
func RecordNewsOperation(operation string, err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	NewsOperationsTotal.WithLabelValues(operation, result).Inc()
	NewsOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRuleViolation records a write rejected by the named business rule.
func RecordRuleViolation(rule string) {
	NewsRuleViolationsTotal.WithLabelValues(rule).Inc()
}

// RecordDBQuery records the duration of a database query.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBPoolStats copies connection pool statistics into the pool gauges.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}
