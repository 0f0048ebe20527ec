// Package history keeps a SQLite log of links opened in the browser.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"medialinks/internal/core"
	"medialinks/pkg/medialink"
)

// Store records opened links.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			service TEXT NOT NULL,
			file TEXT NOT NULL,
			url TEXT NOT NULL,
			words_json TEXT NOT NULL,
			identifier TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_links_url ON links(url);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends link to the history.
func (s *Store) Record(ctx context.Context, link core.Link) error {
	words, err := json.Marshal(link.Words)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}

	createdAt := link.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO links (created_at, service, file, url, words_json, identifier) VALUES (?, ?, ?, ?, ?, ?)`,
		createdAt.UTC().Format(time.RFC3339Nano),
		link.Key.String(),
		link.File,
		link.URL,
		string(words),
		link.Identifier)
	if err != nil {
		return fmt.Errorf("failed to record link: %w", err)
	}
	return nil
}

// Recent returns up to limit links, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]core.Link, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at, service, file, url, words_json, identifier FROM links ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var links []core.Link
	for rows.Next() {
		var createdAt, service, words string
		link := core.Link{Status: core.LinkOpened}
		if err := rows.Scan(&createdAt, &service, &link.File, &link.URL, &words, &link.Identifier); err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}

		if link.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("invalid history timestamp %q: %w", createdAt, err)
		}
		if link.Key, err = medialink.ParseServiceKey(service); err != nil {
			return nil, fmt.Errorf("invalid history service: %w", err)
		}
		if err := json.Unmarshal([]byte(words), &link.Words); err != nil {
			return nil, fmt.Errorf("invalid history words: %w", err)
		}

		links = append(links, link)
	}
	return links, rows.Err()
}

// URLs returns up to limit distinct URLs, most recently opened last.
func (s *Store) URLs(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url FROM (
			SELECT url, MAX(id) AS last_id FROM links GROUP BY url ORDER BY last_id DESC LIMIT ?
		) ORDER BY last_id ASC`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}
