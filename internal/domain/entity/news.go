// Package entity defines the core domain entities of the news service
// and the closed set of error kinds the domain can raise.
package entity

import "time"

// News represents a single news record.
// ID and CreatedAt are assigned by the store and never change afterwards.
type News struct {
	ID              int64
	Title           string
	Text            string
	Author          string
	FirstHand       bool
	PublicationDate time.Time
	CreatedAt       time.Time
}
