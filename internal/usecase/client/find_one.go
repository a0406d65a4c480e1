package client

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/normalize"
)

// LookupCache is an optional read-through cache for single lookups.
type LookupCache interface {
	Get(ctx context.Context, gen domain.Generation, key domain.Key) (*domain.Record, bool)
	Set(ctx context.Context, gen domain.Generation, rec domain.Record)
}

// EventSink receives data-quality events. *audit.Dispatcher satisfies it.
type EventSink interface {
	Dispatch(ev audit.Event)
}

type Query struct {
	CD   string
	Code string
}

// Located is a record whose coordinates parsed.
type Located struct {
	Record domain.Record
	Lat    float64
	Lng    float64
}

// Locate parses the stored coordinates of rec.
func Locate(rec domain.Record) (Located, bool) {
	lat, lng, ok := normalize.LatLng(rec.Lat, rec.Lng)
	if !ok {
		return Located{}, false
	}
	return Located{Record: rec, Lat: lat, Lng: lng}, true
}

type FindClient struct {
	repo  domain.Reader
	cache LookupCache
	audit EventSink
}

func NewFindClient(repo domain.Reader, cache LookupCache, audit EventSink) *FindClient {
	return &FindClient{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *FindClient) Generation() domain.Generation {
	return uc.repo.Generation()
}

func (uc *FindClient) Execute(ctx context.Context, q Query) (*Located, error) {
	gen := uc.repo.Generation()

	key := domain.Key{CD: normalize.ToStr(q.CD), Code: normalize.ToStr(q.Code)}
	if gen == domain.Legacy {
		key.CD = ""
	}
	if key.Code == "" || (gen == domain.Partitioned && key.CD == "") {
		return nil, domain.ErrMissingParams
	}

	rec, err := uc.load(ctx, gen, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.dispatch(audit.Event{
				Action:     audit.ActionClientNotFound,
				Generation: string(gen),
				CD:         key.CD,
				Code:       key.Code,
			})
		}
		return nil, err
	}

	loc, ok := Locate(*rec)
	if !ok {
		uc.dispatch(audit.Event{
			Action:     audit.ActionClientUnmappable,
			Generation: string(gen),
			CD:         key.CD,
			Code:       key.Code,
			Metadata:   map[string]any{"lat": rec.Lat, "lng": rec.Lng},
		})
		return nil, &domain.UnmappableError{Generation: gen, Key: rec.Key()}
	}

	return &loc, nil
}

func (uc *FindClient) load(ctx context.Context, gen domain.Generation, key domain.Key) (*domain.Record, error) {
	if uc.cache != nil {
		if rec, ok := uc.cache.Get(ctx, gen, key); ok {
			return rec, nil
		}
	}

	rec, err := uc.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, gen, *rec)
	}
	return rec, nil
}

func (uc *FindClient) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}
