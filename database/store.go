package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"platepix/backend/models"
)

var (
	ErrNotConfigured  = errors.New("database url not configured")
	ErrUnsupportedURL = errors.New("unsupported database url scheme")
	ErrInvalidFilter  = errors.New("invalid filter field")
)

// Store persists schema records as JSON documents grouped into collections
// named after the record kind.
type Store interface {
	CreateDocument(ctx context.Context, rec models.Record) (string, error)
	GetDocuments(ctx context.Context, kind models.Kind, filter Filter, limit int) ([]Document, error)
	// Ping reports connectivity. A nil error means the store is reachable;
	// collection listing failures are reported in Probe.CollectionsErr.
	Ping(ctx context.Context) (Probe, error)
	Close()
}

// Document is a stored record with its "_id" rendered as a string.
type Document map[string]any

// Filter matches documents whose top-level field equals the given value.
type Filter map[string]string

type Probe struct {
	Backend        string
	Name           string
	Collections    []string
	CollectionsErr error
}

// StorageError wraps any failure reaching or operating on the store.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

var filterKeyRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// keys returns the filter fields in a stable order.
func (f Filter) keys() ([]string, error) {
	out := make([]string, 0, len(f))
	for k := range f {
		if !filterKeyRe.MatchString(k) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, k)
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// encodeDocument serializes rec and stamps created_at/updated_at.
func encodeDocument(rec models.Record, now time.Time) ([]byte, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}
	delete(doc, "_id")
	doc["created_at"] = now.UTC()
	doc["updated_at"] = now.UTC()
	return json.Marshal(doc)
}

func decodeDocument(id string, payload []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	if doc == nil {
		doc = Document{}
	}
	doc["_id"] = id
	return doc, nil
}

// Unavailable returns a Store that fails every call with err. It keeps the
// server up when the database cannot be opened at startup.
func Unavailable(err error) Store {
	return &unavailableStore{err: err}
}

type unavailableStore struct {
	err error
}

func (s *unavailableStore) CreateDocument(_ context.Context, rec models.Record) (string, error) {
	return "", &StorageError{Op: "insert", Collection: rec.Kind().Collection(), Err: s.err}
}

func (s *unavailableStore) GetDocuments(_ context.Context, kind models.Kind, _ Filter, _ int) ([]Document, error) {
	return nil, &StorageError{Op: "find", Collection: kind.Collection(), Err: s.err}
}

func (s *unavailableStore) Ping(context.Context) (Probe, error) {
	return Probe{}, s.err
}

func (s *unavailableStore) Close() {}
