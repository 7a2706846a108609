package schema

// NewsPayload is the body accepted by create and update.
type NewsPayload struct {
	Title           string `json:"title" validate:"required"`
	Text            string `json:"text" validate:"required"`
	Author          string `json:"author" validate:"required"`
	FirstHand       bool   `json:"firstHand"`
	PublicationDate *Date  `json:"publicationDate" validate:"required"`
}
