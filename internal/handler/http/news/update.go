package news

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type UpdateHandler struct{ Svc *newsUC.Service }

// ServeHTTP replaces the writable fields of a news.
// @Summary      Update news
// @Description  Validates the body and overwrites the news with the given id. The title is only checked for uniqueness when it changes.
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        id   path int     true "News id"
// @Param        news body Request true "News"
// @Success      200 {object} DTO "Updated news"
// @Failure      400 {string} string "Invalid id, text too short or publication date in the past"
// @Failure      404 {string} string "News with id <id> not found."
// @Failure      409 {string} string "Title already used"
// @Failure      422 {object} map[string]string "Schema violations"
// @Failure      500 {string} string "Internal server error"
// @Router       /news/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, ok := payload(w, r)
	if !ok {
		return
	}

	n, err := h.Svc.Update(r.Context(), id, toInput(p))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(n))
}
