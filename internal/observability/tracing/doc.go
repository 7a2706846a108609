// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware opens a server span per HTTP request and propagates W3C trace
// context; GetTracer hands out the tracer used by the use cases for their
// own child spans. Setup installs the SDK provider and propagator; without
// it spans are no-ops.
package tracing
