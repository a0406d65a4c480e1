package client

import (
	"context"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/normalize"
)

type BulkQuery struct {
	CD    string
	Codes []any
}

// BulkResult holds the three buckets of a bulk lookup, each in request order.
type BulkResult struct {
	Generation domain.Generation
	CD         string

	Requested int
	Found     int

	Renderable []Located
	NotFound   []string
	Unmappable []string
}

func (r BulkResult) RenderableCount() int {
	return len(r.Renderable)
}

type FindClients struct {
	repo  domain.Reader
	audit EventSink
}

func NewFindClients(repo domain.Reader, audit EventSink) *FindClients {
	return &FindClients{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FindClients) Generation() domain.Generation {
	return uc.repo.Generation()
}

func (uc *FindClients) Execute(ctx context.Context, q BulkQuery) (*BulkResult, error) {
	gen := uc.repo.Generation()

	cd := normalize.ToStr(q.CD)
	if gen == domain.Legacy {
		cd = ""
	} else if cd == "" {
		return nil, domain.ErrMissingParams
	}

	codes := domain.DedupeCodes(q.Codes)
	if len(codes) == 0 {
		return nil, domain.ErrEmptyList
	}
	if len(codes) > domain.MaxBulkCodes {
		return nil, domain.ErrTooManyCodes
	}

	records, err := uc.repo.List(ctx, cd, codes)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]domain.Record, len(records))
	for _, rec := range records {
		byCode[rec.Code] = rec
	}

	res := &BulkResult{
		Generation: gen,
		CD:         cd,
		Requested:  len(codes),
		Renderable: []Located{},
		NotFound:   []string{},
		Unmappable: []string{},
	}

	for _, code := range codes {
		rec, ok := byCode[code]
		if !ok {
			res.NotFound = append(res.NotFound, code)
			continue
		}
		res.Found++

		loc, ok := Locate(rec)
		if !ok {
			res.Unmappable = append(res.Unmappable, code)
			continue
		}
		res.Renderable = append(res.Renderable, loc)
	}

	if uc.audit != nil && (len(res.NotFound) > 0 || len(res.Unmappable) > 0) {
		uc.audit.Dispatch(audit.Event{
			Action:     audit.ActionBulkLookup,
			Generation: string(gen),
			CD:         cd,
			Metadata: map[string]any{
				"solicitados":    res.Requested,
				"encontrados":    res.Found,
				"noEncontrados":  res.NotFound,
				"sinCoordenadas": res.Unmappable,
			},
		})
	}

	return res, nil
}
