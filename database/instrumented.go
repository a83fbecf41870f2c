package database

import (
	"context"
	"time"

	"platepix/backend/metrics"
	"platepix/backend/models"
)

type poolStats interface {
	Stats() (total, idle int)
}

// Instrument wraps s so every operation is recorded in the db_* metrics.
func Instrument(s Store) Store {
	return &instrumentedStore{next: s}
}

type instrumentedStore struct {
	next Store
}

func (s *instrumentedStore) observe(op string, start time.Time, err error) {
	metrics.RecordDBQuery(op, time.Since(start), err)
	if ps, ok := s.next.(poolStats); ok {
		metrics.UpdateDBConnections(ps.Stats())
	}
}

func (s *instrumentedStore) CreateDocument(ctx context.Context, rec models.Record) (string, error) {
	start := time.Now()
	id, err := s.next.CreateDocument(ctx, rec)
	s.observe("insert", start, err)
	return id, err
}

func (s *instrumentedStore) GetDocuments(ctx context.Context, kind models.Kind, filter Filter, limit int) ([]Document, error) {
	start := time.Now()
	docs, err := s.next.GetDocuments(ctx, kind, filter, limit)
	s.observe("find", start, err)
	return docs, err
}

func (s *instrumentedStore) Ping(ctx context.Context) (Probe, error) {
	start := time.Now()
	p, err := s.next.Ping(ctx)
	s.observe("ping", start, err)
	return p, err
}

func (s *instrumentedStore) Close() {
	s.next.Close()
}
