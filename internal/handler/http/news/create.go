package news

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type CreateHandler struct{ Svc *newsUC.Service }

// ServeHTTP creates a news.
// @Summary      Create news
// @Description  Validates the body, applies the business rules and stores a new news.
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        news body Request true "News"
// @Success      201 {object} DTO "Created news"
// @Failure      400 {string} string "Text too short or publication date in the past"
// @Failure      409 {string} string "Title already used"
// @Failure      413 {string} string "Request body too large"
// @Failure      422 {object} map[string]string "Schema violations"
// @Failure      500 {string} string "Internal server error"
// @Router       /news [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}

	n, err := h.Svc.Create(r.Context(), toInput(p))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(n))
}
