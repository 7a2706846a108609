// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"newsdesk/internal/repository"
)

// likeEscaper escapes LIKE/ILIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NewsQueryBuilder builds the WHERE and ORDER BY fragments shared by the
// list and count queries.
type NewsQueryBuilder struct{}

// NewNewsQueryBuilder creates a new query builder instance.
func NewNewsQueryBuilder() *NewsQueryBuilder {
	return &NewsQueryBuilder{}
}

// BuildWhereClause returns a WHERE clause filtering by case-insensitive title
// substring, or an empty clause when title is empty. Placeholders start at $1.
func (qb *NewsQueryBuilder) BuildWhereClause(title string) (clause string, args []interface{}) {
	if title == "" {
		return "", nil
	}
	return "WHERE title ILIKE $1", []interface{}{"%" + likeEscaper.Replace(title) + "%"}
}

// BuildOrderBy returns the ORDER BY clause for the requested direction.
// Anything other than ascending falls back to descending. id breaks ties so
// pages stay stable across requests.
func (qb *NewsQueryBuilder) BuildOrderBy(order repository.SortOrder) string {
	dir := "DESC"
	if order == repository.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY publication_date %s, id %s", dir, dir)
}
