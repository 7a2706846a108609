package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

// titleUniqueConstraint is the unique index created by db.MigrateUp.
const titleUniqueConstraint = "news_title_key"

// DBTX is the subset of *sql.DB the repository needs. Both *sql.DB and
// circuitbreaker.DBCircuitBreaker satisfy it. Single-row reads go through
// QueryContext too, so every statement passes the breaker.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type NewsRepo struct {
	db           DBTX
	queryBuilder *NewsQueryBuilder
}

func NewNewsRepo(db DBTX) repository.NewsRepository {
	return &NewsRepo{
		db:           db,
		queryBuilder: NewNewsQueryBuilder(),
	}
}

const newsColumns = `id, title, text, author, first_hand, publication_date, created_at`

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}

func newsFields(n *entity.News) []any {
	return []any{&n.ID, &n.Title, &n.Text, &n.Author,
		&n.FirstHand, &n.PublicationDate, &n.CreatedAt}
}

// queryOne scans the first row of query into dest and returns
// sql.ErrNoRows when there is none.
func (repo *NewsRepo) queryOne(ctx context.Context, query string, args []any, dest ...any) error {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	return rows.Close()
}

// List retrieves one page of news using LIMIT/OFFSET.
func (repo *NewsRepo) List(ctx context.Context, q repository.NewsListQuery) ([]*entity.News, error) {
	defer observe("list_news", time.Now())

	where, args := repo.queryBuilder.BuildWhereClause(q.Title)
	n := len(args)
	query := fmt.Sprintf(`
SELECT %s
FROM news
%s
%s
LIMIT $%d OFFSET $%d`, newsColumns, where, repo.queryBuilder.BuildOrderBy(q.Order), n+1, n+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	news := make([]*entity.News, 0, q.Limit)
	for rows.Next() {
		var item entity.News
		if err := rows.Scan(newsFields(&item)...); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		news = append(news, &item)
	}
	return news, rows.Err()
}

// Count returns the number of news matching the title filter.
func (repo *NewsRepo) Count(ctx context.Context, title string) (int64, error) {
	defer observe("count_news", time.Now())

	where, args := repo.queryBuilder.BuildWhereClause(title)
	query := "SELECT COUNT(*) FROM news " + where

	var count int64
	if err := repo.queryOne(ctx, query, args, &count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *NewsRepo) Get(ctx context.Context, id int64) (*entity.News, error) {
	defer observe("get_news", time.Now())

	query := `
SELECT ` + newsColumns + `
FROM news
WHERE id = $1
LIMIT 1`
	var n entity.News
	err := repo.queryOne(ctx, query, []any{id}, newsFields(&n)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &n, nil
}

func (repo *NewsRepo) FindByTitle(ctx context.Context, title string) (*entity.News, error) {
	defer observe("find_news_by_title", time.Now())

	query := `
SELECT ` + newsColumns + `
FROM news
WHERE title = $1
LIMIT 1`
	var n entity.News
	err := repo.queryOne(ctx, query, []any{title}, newsFields(&n)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByTitle: %w", err)
	}
	return &n, nil
}

func (repo *NewsRepo) Create(ctx context.Context, n *entity.News) error {
	defer observe("insert_news", time.Now())

	const query = `
INSERT INTO news (title, text, author, first_hand, publication_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := repo.queryOne(ctx, query,
		[]any{n.Title, n.Text, n.Author, n.FirstHand, n.PublicationDate},
		&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *NewsRepo) Update(ctx context.Context, n *entity.News) error {
	defer observe("update_news", time.Now())

	const query = `
UPDATE news
SET title = $1, text = $2, author = $3, first_hand = $4, publication_date = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		n.Title, n.Text, n.Author, n.FirstHand, n.PublicationDate, n.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Update: %w", repository.ErrNewsNotFound)
	}
	return nil
}

func (repo *NewsRepo) Delete(ctx context.Context, id int64) error {
	defer observe("delete_news", time.Now())

	const query = `DELETE FROM news WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNewsNotFound)
	}
	return nil
}

// translateError maps a unique violation on the title index to
// repository.ErrDuplicateTitle.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == titleUniqueConstraint {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateTitle, pgErr.Message)
	}
	return err
}
