// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: transcript/search_index.go
// Summary: SQLite FTS5 search index over rendered transcript lines.
//
// Provides substring search across transcript files with:
//   - Trigram tokenization for arbitrary-substring matching
//   - Whole-document reindexing on each pass (documents are small)
//   - Schema versioning with FTS rebuild on change

package transcript

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// SearchResult is a single match in an indexed transcript.
type SearchResult struct {
	Path    string
	LineNo  int
	Content string
}

// SearchIndex is a SQLite-backed full-text index over transcript lines.
type SearchIndex struct {
	db *sql.DB
	mu sync.RWMutex
}

// Bump when schema changes require reindexing.
const searchIndexSchemaVersion = 1

const searchIndexSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS lines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    line_no INTEGER NOT NULL,
    content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lines_path ON lines(path);
`

const searchIndexFTSSchema = `
-- Trigram tokenizer enables substring matching (e.g. "ls -l", partial paths).
CREATE VIRTUAL TABLE IF NOT EXISTS lines_fts USING fts5(
    content,
    content='lines',
    content_rowid='id',
    tokenize='trigram'
);

CREATE TRIGGER IF NOT EXISTS lines_ai AFTER INSERT ON lines BEGIN
    INSERT INTO lines_fts(rowid, content) VALUES (new.id, new.content);
END;

CREATE TRIGGER IF NOT EXISTS lines_ad AFTER DELETE ON lines BEGIN
    INSERT INTO lines_fts(lines_fts, rowid, content) VALUES ('delete', old.id, old.content);
END;
`

// OpenSearchIndex opens (creating if needed) the index database at dbPath.
func OpenSearchIndex(dbPath string) (*SearchIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect index: %w", err)
	}

	if _, err := db.Exec(searchIndexSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	needsRebuild, err := migrateSchema(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("check schema version: %w", err)
	}
	if _, err := db.Exec(searchIndexFTSSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create FTS schema: %w", err)
	}
	if needsRebuild {
		if _, err := db.Exec("INSERT INTO lines_fts(rowid, content) SELECT id, content FROM lines"); err != nil {
			db.Close()
			return nil, fmt.Errorf("rebuild FTS index: %w", err)
		}
	}

	return &SearchIndex{db: db}, nil
}

// migrateSchema drops the FTS side of the schema when the version changed.
// Returns true if the FTS index must be rebuilt from the lines table.
func migrateSchema(db *sql.DB) (bool, error) {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err != nil {
		current = 0
	}
	if current == searchIndexSchemaVersion {
		return false, nil
	}

	drops := []string{
		"DROP TRIGGER IF EXISTS lines_ai",
		"DROP TRIGGER IF EXISTS lines_ad",
		"DROP TABLE IF EXISTS lines_fts",
	}
	for _, stmt := range drops {
		if _, err := db.Exec(stmt); err != nil {
			return false, fmt.Errorf("migration %q: %w", stmt, err)
		}
	}
	if _, err := db.Exec("INSERT OR REPLACE INTO schema_version (version) VALUES (?)", searchIndexSchemaVersion); err != nil {
		return false, fmt.Errorf("update schema version: %w", err)
	}
	return true, nil
}

// IndexDocument replaces the indexed lines for the document's path with its
// current rendered plain text. The whole document is reindexed in one
// transaction: transcripts are edited as files, not streamed.
func (ix *SearchIndex) IndexDocument(d *Document) error {
	path := d.Path()
	if path == "" {
		return fmt.Errorf("index transcript: document has no path")
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("index transcript: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM lines WHERE path = ?", path); err != nil {
		return fmt.Errorf("index transcript: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO lines (path, line_no, content) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("index transcript: %w", err)
	}
	defer stmt.Close()

	for i, text := range d.PlainText() {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if _, err := stmt.Exec(path, i, text); err != nil {
			return fmt.Errorf("index transcript line %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Remove drops every indexed line for a path.
func (ix *SearchIndex) Remove(path string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, err := ix.db.Exec("DELETE FROM lines WHERE path = ?", path)
	return err
}

// Search finds lines containing query as a substring, up to limit results.
// Queries shorter than three characters fall back to LIKE: the trigram
// tokenizer cannot match them.
func (ix *SearchIndex) Search(query string, limit int) ([]SearchResult, error) {
	if query == "" {
		return nil, nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var rows *sql.Rows
	var err error
	if len(query) < 3 {
		pattern := "%" + strings.ReplaceAll(strings.ReplaceAll(query, "%", `\%`), "_", `\_`) + "%"
		rows, err = ix.db.Query(`
			SELECT path, line_no, content
			FROM lines
			WHERE content LIKE ? ESCAPE '\'
			ORDER BY path, line_no
			LIMIT ?
		`, pattern, limit)
	} else {
		// Double-quote for literal substring matching in FTS5.
		quoted := `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
		rows, err = ix.db.Query(`
			SELECT l.path, l.line_no, l.content
			FROM lines_fts
			JOIN lines l ON l.id = lines_fts.rowid
			WHERE lines_fts MATCH ?
			ORDER BY l.path, l.line_no
			LIMIT ?
		`, quoted, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Path, &r.LineNo, &r.Content); err != nil {
			return nil, fmt.Errorf("search scan: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the underlying database.
func (ix *SearchIndex) Close() error {
	return ix.db.Close()
}
