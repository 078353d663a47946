// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cacheDBFile = "catalog.db"

// Cache is a local SQLite snapshot store for fetched catalogs, keyed by
// source. It lets repeat searches run offline against the last fetched
// catalog instead of re-hitting the network (R3.1-R3.3).
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the snapshot database under dir.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, cacheDBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS catalog_snapshots (
			source TEXT PRIMARY KEY,
			fetched_at TEXT NOT NULL,
			body BLOB NOT NULL
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Put stores or replaces the snapshot for source.
func (c *Cache) Put(ctx context.Context, source string, body []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO catalog_snapshots (source, fetched_at, body) VALUES (?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET fetched_at=excluded.fetched_at, body=excluded.body`,
		source, time.Now().UTC().Format(time.RFC3339), body,
	)
	if err != nil {
		return fmt.Errorf("storing catalog snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot for source, its fetch time, and whether one exists.
func (c *Cache) Get(ctx context.Context, source string) ([]byte, time.Time, bool, error) {
	var (
		body      []byte
		fetchedAt string
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM catalog_snapshots WHERE source = ?`, source,
	).Scan(&body, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("reading catalog snapshot: %w", err)
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		t = time.Time{}
	}
	return body, t, true, nil
}
