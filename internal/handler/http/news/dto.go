// Package news provides the HTTP handlers for the /news resource.
package news

import (
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/schema"
	newsUC "newsdesk/internal/usecase/news"
)

// DTO represents the JSON structure of a news record.
type DTO struct {
	ID              int64     `json:"id" example:"1"`
	Title           string    `json:"title" example:"City council approves new park"`
	Text            string    `json:"text" example:"The city council voted on Monday..."`
	Author          string    `json:"author" example:"Jane Doe"`
	FirstHand       bool      `json:"firstHand" example:"false"`
	PublicationDate time.Time `json:"publicationDate" example:"2030-01-02T10:00:00Z"`
	CreatedAt       time.Time `json:"createdAt" example:"2030-01-01T08:30:00Z"`
}

// Request documents the body accepted by create and update.
type Request struct {
	Title           string `json:"title" example:"City council approves new park"`
	Text            string `json:"text" example:"The city council voted on Monday..."`
	Author          string `json:"author" example:"Jane Doe"`
	FirstHand       bool   `json:"firstHand" example:"false"`
	PublicationDate string `json:"publicationDate" example:"2030-01-02T10:00:00Z"`
}

func toDTO(n *entity.News) DTO {
	return DTO{
		ID:              n.ID,
		Title:           n.Title,
		Text:            n.Text,
		Author:          n.Author,
		FirstHand:       n.FirstHand,
		PublicationDate: n.PublicationDate.UTC(),
		CreatedAt:       n.CreatedAt.UTC(),
	}
}

func toInput(p *schema.NewsPayload) newsUC.Input {
	in := newsUC.Input{
		Title:     p.Title,
		Text:      p.Text,
		Author:    p.Author,
		FirstHand: p.FirstHand,
	}
	if p.PublicationDate != nil {
		in.PublicationDate = p.PublicationDate.Time
	}
	return in
}
