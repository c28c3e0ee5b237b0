package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSummaryCache stores summaries in a local SQLite database. The
// original integration kept one JSON file per cache key; a single DB file
// is friendlier to concurrent workers warming the cache.
type SQLiteSummaryCache struct {
	db *sql.DB
}

var _ SummaryCache = (*SQLiteSummaryCache)(nil)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS summaries (
	cache_key  TEXT PRIMARY KEY,
	summary    TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// NewSQLiteSummaryCache opens (creating if needed) the cache database at
// path. Use ":memory:" for an ephemeral cache.
func NewSQLiteSummaryCache(path string) (*SQLiteSummaryCache, error) {
	if path == "" {
		return nil, fmt.Errorf("summary cache path is empty")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open summary cache %q: %w", path, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init summary cache schema: %w", err)
	}
	return &SQLiteSummaryCache{db: db}, nil
}

func (c *SQLiteSummaryCache) Get(ctx context.Context, key string) (string, bool, error) {
	var summary string
	err := c.db.QueryRowContext(ctx,
		`SELECT summary FROM summaries WHERE cache_key = ?`, key).Scan(&summary)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("summary cache get %q: %w", key, err)
	}
	return summary, true, nil
}

func (c *SQLiteSummaryCache) Put(ctx context.Context, key, summary string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO summaries (cache_key, summary) VALUES (?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET summary = excluded.summary, fetched_at = CURRENT_TIMESTAMP`,
		key, summary)
	if err != nil {
		return fmt.Errorf("summary cache put %q: %w", key, err)
	}
	return nil
}

func (c *SQLiteSummaryCache) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *SQLiteSummaryCache) Close() error {
	return c.db.Close()
}
