package news

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type DeleteHandler struct{ Svc *newsUC.Service }

// ServeHTTP deletes a news.
// @Summary      Delete news
// @Tags         news
// @Param        id path int true "News id"
// @Success      204 "No Content"
// @Failure      400 {string} string "Id is not valid."
// @Failure      404 {string} string "News with id <id> not found."
// @Failure      500 {string} string "Internal server error"
// @Router       /news/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
