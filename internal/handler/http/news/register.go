package news

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/schema"
	newsUC "newsdesk/internal/usecase/news"
)

// Register registers all news-related HTTP handlers with the given mux.
// Create and update bodies are validated by the schema middleware before
// the handler runs.
func Register(mux *http.ServeMux, svc *newsUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	validated := schema.Middleware[schema.NewsPayload]()

	mux.Handle("GET    /news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /news/{id}", GetHandler{svc})

	mux.Handle("POST   /news", validated(CreateHandler{svc}))
	mux.Handle("PUT    /news/{id}", validated(UpdateHandler{svc}))
	mux.Handle("DELETE /news/{id}", DeleteHandler{svc})
}
