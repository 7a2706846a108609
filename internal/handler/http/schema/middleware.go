package schema

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
)

type ctxKey struct{}

// Middleware decodes and validates the request body as T before calling next.
// Invalid bodies are answered with 422 and every violation in one message.
func Middleware[T any]() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					respond.Text(w, http.StatusRequestEntityTooLarge, "Request body too large.")
					return
				}
				respond.Error(w, http.StatusBadRequest, errors.New("could not read request body"))
				return
			}
			_ = r.Body.Close()

			payload := new(T)
			if err := Decode(body, payload); err != nil {
				var violations Violations
				if errors.As(err, &violations) {
					slog.Default().Warn("request body rejected",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Int("violations", len(violations)))
					respond.Error(w, http.StatusUnprocessableEntity, violations)
					return
				}
				respond.DomainError(w, r, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			ctx := context.WithValue(r.Context(), ctxKey{}, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the payload stored by Middleware[T].
func FromContext[T any](ctx context.Context) (*T, bool) {
	v, ok := ctx.Value(ctxKey{}).(*T)
	return v, ok
}
