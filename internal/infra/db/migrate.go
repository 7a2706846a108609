package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/0001_create_news.sql
var createNewsSQL string

// widenIDSQL upgrades tables created with a 32-bit SERIAL id.
const widenIDSQL = `
DO $$
BEGIN
    IF EXISTS (
        SELECT 1 FROM information_schema.columns
        WHERE table_schema = current_schema()
          AND table_name = 'news' AND column_name = 'id' AND data_type = 'integer'
    ) THEN
        ALTER TABLE news ALTER COLUMN id TYPE BIGINT;
        ALTER SEQUENCE IF EXISTS news_id_seq AS BIGINT;
    END IF;
END
$$`

// MigrateUp creates the news table and its indexes. Every statement is
// idempotent so it runs on each start.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createNewsSQL); err != nil {
		return fmt.Errorf("create news table: %w", err)
	}
	if _, err := db.ExecContext(ctx, widenIDSQL); err != nil {
		return fmt.Errorf("widen news id: %w", err)
	}

	indexes := []string{
		// Title uniqueness is enforced here as well as in the use case, so
		// concurrent creates cannot both commit the same title.
		`CREATE UNIQUE INDEX IF NOT EXISTS news_title_key ON news(title)`,
		// ORDER BY publication_date in both directions
		`CREATE INDEX IF NOT EXISTS idx_news_publication_date ON news(publication_date DESC, id DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	// pg_trgm speeds up the ILIKE title filter; it needs superuser on some
	// setups, so failure is not fatal.
	_, _ = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_news_title_gin ON news USING gin(title gin_trgm_ops)`)

	return nil
}

// MigrateDown drops the news table and everything attached to it.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS news CASCADE`); err != nil {
		return fmt.Errorf("drop news table: %w", err)
	}
	return nil
}
