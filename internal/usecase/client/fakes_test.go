package client

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
)

type fakeReader struct {
	gen     domain.Generation
	records map[domain.Key]domain.Record

	getCalls  int
	listCalls int
	lastCodes []string
}

func newFakeReader(gen domain.Generation, recs ...domain.Record) *fakeReader {
	r := &fakeReader{gen: gen, records: map[domain.Key]domain.Record{}}
	for _, rec := range recs {
		r.records[rec.Key()] = rec
	}
	return r
}

func (f *fakeReader) Generation() domain.Generation { return f.gen }

func (f *fakeReader) Get(_ context.Context, key domain.Key) (*domain.Record, error) {
	f.getCalls++
	rec, ok := f.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeReader) List(_ context.Context, cd string, codes []string) ([]domain.Record, error) {
	f.listCalls++
	f.lastCodes = codes
	var out []domain.Record
	for _, code := range codes {
		if rec, ok := f.records[domain.Key{CD: cd, Code: code}]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memCache struct {
	items map[domain.Key]domain.Record
	sets  int
}

func (m *memCache) Get(_ context.Context, _ domain.Generation, key domain.Key) (*domain.Record, bool) {
	rec, ok := m.items[key]
	if !ok {
		return nil, false
	}
	return &rec, true
}

func (m *memCache) Set(_ context.Context, _ domain.Generation, rec domain.Record) {
	m.sets++
	m.items[rec.Key()] = rec
}

type sink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *sink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}
