package news

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	newsUC "newsdesk/internal/usecase/news"
)

type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists news.
// @Summary      List news
// @Description  Returns one page of news ordered by publication date. Malformed page or order values fall back to their defaults.
// @Tags         news
// @Produce      json
// @Param        page   query  int     false  "Page number (1-based)" default(1) minimum(1)
// @Param        order  query  string  false  "Publication date order" Enums(asc, desc) default(desc)
// @Param        title  query  string  false  "Case-insensitive title substring"
// @Success      200 {array} DTO "News page"
// @Header       200 {integer} X-Total-Count "Number of news matching the filter"
// @Header       200 {integer} X-Total-Pages "Number of pages"
// @Header       200 {integer} X-Page "Current page"
// @Header       200 {integer} X-Per-Page "Page size"
// @Failure      429 {string} string "Too many requests"
// @Failure      500 {string} string "Internal server error"
// @Router       /news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logging.WithRequestID(ctx, logger).Debug("list news",
		slog.Int("page", params.Page),
		slog.String("order", string(params.Order)),
		slog.String("title", params.Title))

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(result.Data))
	for _, n := range result.Data {
		out = append(out, toDTO(n))
	}

	result.Pagination.WriteHeaders(w.Header())
	respond.JSON(w, http.StatusOK, out)
}
