// Package respond writes HTTP responses and maps domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/requestid"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response of the form {"error": "<message>"}.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Text writes msg as a text/plain body.
func Text(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

// StatusFor returns the HTTP status for err based on its domain kind.
func StatusFor(err error) int {
	switch entity.KindOf(err) {
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindConflict:
		return http.StatusConflict
	case entity.KindBadRequest:
		return http.StatusBadRequest
	case entity.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case entity.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// DomainError logs err and writes its message as plain text with the status
// derived from its kind. Errors without a domain kind answer 500 with their
// message, credentials masked.
func DomainError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	code := StatusFor(err)
	logger := slog.Default().With(
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
	)

	var domainErr *entity.Error
	if !errors.As(err, &domainErr) {
		msg := SanitizeError(err)
		logger.Error("internal server error", slog.String("error", msg))
		Text(w, code, msg)
		return
	}

	logger.Warn("request rejected",
		slog.String("kind", domainErr.Kind.String()),
		slog.String("error", SanitizeError(err)))
	Text(w, code, domainErr.Message)
}
