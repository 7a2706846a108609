package repository

import (
	"context"
	"errors"

	"newsdesk/internal/domain/entity"
)

// SortOrder is the direction news are ordered by publication date.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// NewsListQuery describes one page of a news listing.
type NewsListQuery struct {
	Offset int
	Limit  int
	Order  SortOrder
	// Title filters by case-insensitive substring; empty means no filter.
	Title string
}

// NewsRepository is the record store the news use cases depend on.
type NewsRepository interface {
	// List returns news ordered by publication date in the requested order.
	List(ctx context.Context, q NewsListQuery) ([]*entity.News, error)
	// Count returns how many news match the title filter.
	Count(ctx context.Context, title string) (int64, error)
	// Get returns (nil, nil) when no news has the given id.
	Get(ctx context.Context, id int64) (*entity.News, error)
	// FindByTitle looks up a news by exact title. Returns (nil, nil) if absent.
	FindByTitle(ctx context.Context, title string) (*entity.News, error)
	// Create persists n and fills in ID and CreatedAt.
	Create(ctx context.Context, n *entity.News) error
	// Update overwrites the mutable fields of the news identified by n.ID.
	Update(ctx context.Context, n *entity.News) error
	Delete(ctx context.Context, id int64) error
}

// Sentinel errors returned by NewsRepository implementations.
var (
	// ErrDuplicateTitle is returned when the store rejects a write because
	// another news already uses the title.
	ErrDuplicateTitle = errors.New("duplicate news title")

	// ErrNewsNotFound is returned by Update and Delete when no row matched.
	ErrNewsNotFound = errors.New("news not found")
)
