package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLite persists each collection as a single JSON blob row. The database
// is opened through internal/database, which manages the schema.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Read(ctx context.Context, c Collection) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = ?`, string(c)).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", c, err)
	}
	return data, nil
}

func (s *SQLite) Write(ctx context.Context, c Collection, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(c), data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", c, err)
	}
	return nil
}
