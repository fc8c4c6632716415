package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Manager is the local persistence layer: a versioned set of named record
// collections, each record a JSON document keyed by its id. The underlying
// handle is opened lazily and memoized; concurrent Init callers share one
// open. Invalidate discards the handle so the next Init reopens it.
type Manager struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewManager creates a Manager for the database at path. ":memory:" opens an
// in-memory database, used by tests.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Init idempotently opens the database and applies pending schema upgrades.
// All callers receive the same handle until Invalidate or Close.
func (m *Manager) Init(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		return m.db, nil
	}

	if m.path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", m.path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	m.db = db
	return m.db, nil
}

// Invalidate discards the current handle, if any. The next Init reopens the
// store. Used when another process instance upgraded the schema underneath us.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		_ = m.db.Close()
		m.db = nil
	}
}

// Close releases the handle. The Manager may be reused; Init reopens.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// GetAll returns the raw documents of a collection. An unknown collection
// yields an empty result, never an error.
func (m *Manager) GetAll(ctx context.Context, collection string) ([][]byte, error) {
	if !knownCollections[collection] {
		return nil, nil
	}
	db, err := m.Init(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT data FROM `+collection+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning %s record: %w", collection, err)
		}
		docs = append(docs, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", collection, err)
	}
	return docs, nil
}

// Put upserts a document keyed by id.
func (m *Manager) Put(ctx context.Context, collection, id string, data []byte) error {
	db, err := m.Init(ctx)
	if err != nil {
		return err
	}
	return putTx(ctx, db, collection, id, data)
}

// Delete removes a record by id. Deleting an absent id is a no-op.
func (m *Manager) Delete(ctx context.Context, collection, id string) error {
	if !knownCollections[collection] {
		return fmt.Errorf("unknown collection %q", collection)
	}
	db, err := m.Init(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM `+collection+` WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting from %s: %w", collection, err)
	}
	return nil
}

// Clear removes every record in a collection.
func (m *Manager) Clear(ctx context.Context, collection string) error {
	if !knownCollections[collection] {
		return fmt.Errorf("unknown collection %q", collection)
	}
	db, err := m.Init(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM `+collection); err != nil {
		return fmt.Errorf("clearing %s: %w", collection, err)
	}
	return nil
}

// Count reports the number of records in a collection.
func (m *Manager) Count(ctx context.Context, collection string) (int, error) {
	if !knownCollections[collection] {
		return 0, nil
	}
	db, err := m.Init(ctx)
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+collection).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return n, nil
}

func putTx(ctx context.Context, tx DBTX, collection, id string, data []byte) error {
	if !knownCollections[collection] {
		return fmt.Errorf("unknown collection %q", collection)
	}
	query := `INSERT INTO ` + collection + ` (id, data) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`
	if _, err := tx.ExecContext(ctx, query, id, data); err != nil {
		return fmt.Errorf("upserting into %s: %w", collection, err)
	}
	return nil
}

// All decodes every document of a collection into a slice of T.
func All[T any](ctx context.Context, m *Manager, collection string) ([]T, error) {
	docs, err := m.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// PutDoc marshals v and upserts it under id.
func PutDoc[T any](ctx context.Context, m *Manager, collection, id string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", collection, err)
	}
	return m.Put(ctx, collection, id, data)
}

// PutDocTx is PutDoc inside an existing transaction.
func PutDocTx[T any](ctx context.Context, tx DBTX, collection, id string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", collection, err)
	}
	return putTx(ctx, tx, collection, id, data)
}
