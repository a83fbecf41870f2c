package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"platepix/backend/models"
)

// SQLiteStore keeps documents in a local SQLite file. It backs local
// development and the test suite.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

// OpenSQLite opens dsn (a file path, "file:..." URI or ":memory:") and
// creates the schema.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well, and ":memory:" is
	// per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	name := dsn
	if strings.Contains(dsn, ":memory:") {
		name = "memory"
	}
	return &SQLiteStore{db: db, name: name}, nil
}

func (s *SQLiteStore) CreateDocument(ctx context.Context, rec models.Record) (string, error) {
	collection := rec.Kind().Collection()
	now := time.Now()
	payload, err := encodeDocument(rec, now)
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}
	id := NewObjectID(now)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents(id, collection, payload) VALUES(?, ?, ?)`,
		id, collection, string(payload))
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}
	return id, nil
}

func (s *SQLiteStore) GetDocuments(ctx context.Context, kind models.Kind, filter Filter, limit int) ([]Document, error) {
	collection := kind.Collection()
	keys, err := filter.keys()
	if err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}

	var q strings.Builder
	q.WriteString(`SELECT id, payload FROM documents WHERE collection = ?`)
	args := []any{collection}
	for _, k := range keys {
		q.WriteString(` AND json_extract(payload, ?) = ?`)
		args = append(args, "$."+k, filter[k])
	}
	q.WriteString(` ORDER BY seq LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}
	defer rows.Close()

	out := []Document{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, &StorageError{Op: "find", Collection: collection, Err: err}
		}
		doc, err := decodeDocument(id, []byte(payload))
		if err != nil {
			return nil, &StorageError{Op: "find", Collection: collection, Err: err}
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}
	return out, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) (Probe, error) {
	if err := s.db.PingContext(ctx); err != nil {
		return Probe{}, err
	}
	p := Probe{Backend: "sqlite", Name: s.name}
	p.Collections, p.CollectionsErr = s.collections(ctx)
	return p, nil
}

func (s *SQLiteStore) collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list collections: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() {
	s.db.Close()
}
