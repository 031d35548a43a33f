// Package sqlite provides the SQLite-backed document store.
//
// Generated documents are append-only: records are saved once and listed,
// never updated. The engines know nothing about persistence; callers append
// a record after rendering.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/buelldocs/docgen/internal/domain"
)

// Store persists generated document records in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		html TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_documents_kind_created ON documents(kind, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save appends a document record.
func (s *Store) Save(ctx context.Context, record domain.DocumentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, kind, name, created_at, html) VALUES (?, ?, ?, ?, ?)`,
		record.ID, string(record.Kind), record.Name, record.CreatedAt.UTC().Format(time.RFC3339Nano), record.HTML)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", record.ID, err)
	}
	return nil
}

// ListAll returns every document record, newest first, without HTML bodies.
func (s *Store) ListAll(ctx context.Context) ([]domain.DocumentRecord, error) {
	return s.list(ctx, `SELECT id, kind, name, created_at FROM documents ORDER BY created_at DESC`)
}

// ListByKind returns records of one kind, newest first, without HTML bodies.
func (s *Store) ListByKind(ctx context.Context, kind domain.DocumentKind) ([]domain.DocumentRecord, error) {
	return s.list(ctx, `SELECT id, kind, name, created_at FROM documents WHERE kind = ? ORDER BY created_at DESC`, string(kind))
}

// Get returns one full record including the rendered HTML.
func (s *Store) Get(ctx context.Context, id string) (domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, name, created_at, html FROM documents WHERE id = ?`, id)

	var record domain.DocumentRecord
	var kind, createdAt string
	if err := row.Scan(&record.ID, &kind, &record.Name, &createdAt, &record.HTML); err != nil {
		if err == sql.ErrNoRows {
			return domain.DocumentRecord{}, fmt.Errorf("document %s not found", id)
		}
		return domain.DocumentRecord{}, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	record.Kind = domain.DocumentKind(kind)
	record.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return record, nil
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var records []domain.DocumentRecord
	for rows.Next() {
		var record domain.DocumentRecord
		var kind, createdAt string
		if err := rows.Scan(&record.ID, &kind, &record.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		record.Kind = domain.DocumentKind(kind)
		record.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, record)
	}
	return records, rows.Err()
}
