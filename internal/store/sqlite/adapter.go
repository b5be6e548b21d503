// Package sqlite implements store.Store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/aura-workspace/aura/internal/store"
)

// DocumentStore implements store.Store using a single Documents table keyed
// by (Collection, Key).
type DocumentStore struct {
	db *sql.DB
}

// New opens (or creates) the database file and applies the schema.
func New(path string) (*DocumentStore, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires an existing connection (used by tests and the run wrapper).
func NewWithDB(db *sql.DB) (*DocumentStore, error) {
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DocumentStore{db: db}, nil
}

// DB exposes the underlying connection for local tooling.
func (s *DocumentStore) DB() *sql.DB { return s.db }

// GetValue reads one document. Missing and unreadable rows both yield
// (nil, nil) so callers fall back to their defaults.
func (s *DocumentStore) GetValue(ctx context.Context, collection, key string) (json.RawMessage, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT Value FROM Documents WHERE Collection = ? AND Key = ?`, collection, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !json.Valid([]byte(value)) {
		return nil, nil
	}
	return json.RawMessage(value), nil
}

// SetValue marshals value and upserts it under (collection, key).
func (s *DocumentStore) SetValue(ctx context.Context, collection, key string, value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		raw = b
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Documents (Collection, Key, Value, UpdateTime) VALUES (?,?,?,?)
         ON CONFLICT(Collection, Key) DO UPDATE SET Value = excluded.Value, UpdateTime = excluded.UpdateTime`,
		collection, key, string(raw), time.Now().UTC())
	return err
}

// DeleteValue removes one document; deleting a missing document is a no-op.
func (s *DocumentStore) DeleteValue(ctx context.Context, collection, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM Documents WHERE Collection = ? AND Key = ?`, collection, key)
	return err
}

// Clear wipes every document.
func (s *DocumentStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM Documents`)
	return err
}

// Ping verifies the connection.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection.
func (s *DocumentStore) Close() error { return s.db.Close() }

var _ store.Store = (*DocumentStore)(nil)
