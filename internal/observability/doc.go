// Package observability groups the service's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus business and database metrics
//   - tracing: OpenTelemetry provider setup, HTTP middleware and tracer access
package observability
