package news

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP fetches a news by id.
// @Summary      Get news
// @Description  Returns the news with the given id.
// @Tags         news
// @Produce      json
// @Param        id path int true "News id"
// @Success      200 {object} DTO "News"
// @Failure      400 {string} string "Id is not valid."
// @Failure      404 {string} string "News with id <id> not found."
// @Failure      500 {string} string "Internal server error"
// @Router       /news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(n))
}
