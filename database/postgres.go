package database

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"platepix/backend/models"
)

type PgStore struct {
	pool *pgxpool.Pool

	mu    sync.Mutex
	ready bool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// ensureSchema creates the documents table on first use. A failed attempt
// is retried by the next call.
func (s *PgStore) ensureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	for _, stmt := range pgSchema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	s.ready = true
	return nil
}

func (s *PgStore) CreateDocument(ctx context.Context, rec models.Record) (string, error) {
	collection := rec.Kind().Collection()
	if err := s.ensureSchema(ctx); err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	now := time.Now()
	payload, err := encodeDocument(rec, now)
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}
	id := NewObjectID(now)
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents(id, collection, payload) VALUES($1, $2, $3::jsonb)`,
		id, collection, string(payload))
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}
	return id, nil
}

func (s *PgStore) GetDocuments(ctx context.Context, kind models.Kind, filter Filter, limit int) ([]Document, error) {
	collection := kind.Collection()
	keys, err := filter.keys()
	if err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}

	var q strings.Builder
	q.WriteString(`SELECT id, payload::text FROM documents WHERE collection = $1`)
	args := []any{collection}
	for _, k := range keys {
		args = append(args, k, filter[k])
		fmt.Fprintf(&q, ` AND payload->>$%d = $%d`, len(args)-1, len(args))
	}
	args = append(args, limit)
	fmt.Fprintf(&q, ` ORDER BY seq LIMIT $%d`, len(args))

	rows, err := s.pool.Query(ctx, q.String(), args...)
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

func (s *PgStore) Ping(ctx context.Context) (Probe, error) {
	if err := s.pool.Ping(ctx); err != nil {
		return Probe{}, err
	}
	p := Probe{Backend: "postgres", Name: s.pool.Config().ConnConfig.Database}
	var name string
	if err := s.pool.QueryRow(ctx, `SELECT current_database()`).Scan(&name); err == nil {
		p.Name = name
	}
	p.Collections, p.CollectionsErr = s.collections(ctx)
	return p, nil
}

func (s *PgStore) collections(ctx context.Context) ([]string, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
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

// Stats returns the pool's total and idle connection counts.
func (s *PgStore) Stats() (total, idle int) {
	st := s.pool.Stat()
	return int(st.TotalConns()), int(st.IdleConns())
}

func (s *PgStore) Close() {
	s.pool.Close()
}
