package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
    tenant_id   TEXT  NOT NULL,
    collection  TEXT  NOT NULL,
    doc         JSONB NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (tenant_id, collection)
);
`

// PostgresStore is the shared-database DocStore for multi-register installs.
// Writes are still last-write-wins per document.
type PostgresStore struct {
	db *sql.DB
}

var _ DocStore = (*PostgresStore)(nil)

// NewPostgresStore applies the schema and wraps an already-open pool
// (see connections/database.ConnectDB).
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("postgres: apply schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, tenantID, collection string) ([]byte, bool, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM snapshots WHERE tenant_id = $1 AND collection = $2`,
		tenantID, collection,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("postgres: get %s/%s: %w", tenantID, collection, err)
	}
	return doc, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, tenantID, collection string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO snapshots (tenant_id, collection, doc, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (tenant_id, collection) DO UPDATE SET
  doc = EXCLUDED.doc,
  updated_at = now()
`, tenantID, collection, doc)
	if err != nil {
		return fmt.Errorf("postgres: put %s/%s: %w", tenantID, collection, err)
	}
	return nil
}
