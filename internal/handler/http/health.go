// Package http holds the HTTP plumbing shared by every route: middleware,
// metrics, rate limiting and the health endpoints.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/metrics"
)

// healthMessage is the body of GET /health.
const healthMessage = "I'm ok!"

// Health answers GET /health with a fixed plain text body.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "I'm ok!"
// @Router       /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	respond.Text(w, http.StatusOK, healthMessage)
}

// DBPinger is the part of *sql.DB the readiness check uses.
type DBPinger interface {
	PingContext(ctx context.Context) error
	Stats() sql.DBStats
}

// Breaker reports whether the database circuit breaker is rejecting calls.
type Breaker interface {
	IsOpen() bool
}

// ReadyResponse represents the JSON response of the readiness endpoint.
type ReadyResponse struct {
	Status    string                 `json:"status"`    // "ready" or "unavailable"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version,omitempty"`
}

// CheckStatus represents the status of a single readiness check.
type CheckStatus struct {
	Status  string         `json:"status"` // "healthy", "degraded" or "unhealthy"
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ReadyHandler handles readiness probe requests.
// It pings the database and inspects the pool and the circuit breaker.
type ReadyHandler struct {
	DB      DBPinger
	Breaker Breaker
	Version string
	Timeout time.Duration
}

// ServeHTTP returns 200 when every check passes and 503 otherwise.
//
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200 {object} ReadyResponse
// @Failure      503 {object} ReadyResponse
// @Router       /ready [get]
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	checks := map[string]CheckStatus{
		"database": h.checkDatabase(ctx),
	}
	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}

	status, code := "ready", http.StatusOK
	for name, c := range checks {
		if c.Status == "unhealthy" {
			status, code = "unavailable", http.StatusServiceUnavailable
			slog.Default().Warn("readiness check failed",
				slog.String("check", name),
				slog.String("message", c.Message))
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, ReadyResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *ReadyHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}

	stats := h.DB.Stats()
	metrics.UpdateDBPoolStats(stats)
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	if stats.MaxOpenConnections > 0 {
		utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
		details["utilization_percent"] = utilization
		if utilization >= 80.0 {
			return CheckStatus{
				Status:  "degraded",
				Message: "connection pool utilization above 80%",
				Details: details,
			}
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

func (h *ReadyHandler) checkBreaker() CheckStatus {
	if h.Breaker.IsOpen() {
		return CheckStatus{Status: "unhealthy", Message: "database circuit breaker is open"}
	}
	return CheckStatus{Status: "healthy"}
}
