// Package news implements the news use cases: listing, fetching, creating,
// updating and deleting news while enforcing the business rules on titles,
// text length and publication dates.
package news

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// Business rule names used as metric labels.
const (
	ruleTitleUnique     = "title_unique"
	ruleTextMinLength   = "text_min_length"
	rulePublicationDate = "publication_date"
)

// ErrNotFound builds the error returned when no news has the given id.
func ErrNotFound(id int64) *entity.Error {
	return entity.NotFound("News with id %d not found.", id)
}

// ErrTitleConflict builds the error returned when another news already uses title.
func ErrTitleConflict(title string) *entity.Error {
	return entity.Conflict("News with title \"%s\" already exists.", title)
}

// ErrTextTooShort builds the error returned when the text is shorter than minLength characters.
func ErrTextTooShort(minLength int) *entity.Error {
	return entity.BadRequest("The news text must have at least %d characters.", minLength)
}

// ErrPublicationInPast is returned when the publication date lies before the current day.
var ErrPublicationInPast = entity.BadRequest("The publication date cannot be in the past.")

// startOfDay returns midnight UTC of t's day.
func startOfDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
