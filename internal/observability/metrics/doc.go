// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the business and database metrics of the news
// service:
//   - News operations (count and duration by operation and result)
//   - Business rule violations (by rule)
//   - Database query duration and connection pool gauges
//
// HTTP request metrics live next to the middleware in internal/handler/http.
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	import "newsdesk/internal/observability/metrics"
//
//	func create(ctx context.Context) error {
//	    start := time.Now()
//	    err := doCreate(ctx)
//	    metrics.RecordNewsOperation("create", err, time.Since(start))
//	    return err
//	}
package metrics
