package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Pure-Go SQLite driver; no CGO, builds clean in Alpine images.
	_ "modernc.org/sqlite"
)

// One row per (tenant, collection); the whole document is replaced on save.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
    tenant_id   TEXT NOT NULL,
    collection  TEXT NOT NULL,
    doc         TEXT NOT NULL,
    updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
    PRIMARY KEY (tenant_id, collection)
);
`

// SQLiteStore is the file-backed DocStore for single-terminal installs.
type SQLiteStore struct {
	db *sql.DB
}

var _ DocStore = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema.
// WAL mode lets board reads proceed while a catalog save is in flight;
// busy_timeout waits for locks instead of failing immediately.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Get(ctx context.Context, tenantID, collection string) ([]byte, bool, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM snapshots WHERE tenant_id = ? AND collection = ?`,
		tenantID, collection,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: get %s/%s: %w", tenantID, collection, err)
	}
	return doc, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, tenantID, collection string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO snapshots (tenant_id, collection, doc, updated_at)
VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
ON CONFLICT (tenant_id, collection) DO UPDATE SET
  doc = excluded.doc,
  updated_at = excluded.updated_at
`, tenantID, collection, string(doc))
	if err != nil {
		return fmt.Errorf("sqlite: put %s/%s: %w", tenantID, collection, err)
	}
	return nil
}
