package importer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/normalize"
	"github.com/BruksfildServices01/mapa-clientes/internal/sheet"
	"github.com/BruksfildServices01/mapa-clientes/internal/template"
	"github.com/BruksfildServices01/mapa-clientes/internal/timezone"
)

const DefaultBatchSize = 1000

// Skip reasons.
const (
	SkipNoCD      = "sin_cd"
	SkipNoCode    = "sin_codigo"
	SkipNoName    = "sin_nombre"
	SkipNoCoords  = "sin_coordenadas"
	SkipDuplicate = "duplicado"
)

var ErrMissingHeaders = errors.New("missing required headers")

// Invalidator drops cached lookups after the store changed.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Options struct {
	BatchSize int
	Timezone  string
	Cache     Invalidator
	Audit     audit.Recorder
}

type Importer struct {
	writer    domain.Writer
	batchSize int
	tz        string
	cache     Invalidator
	audit     audit.Recorder

	now   func() time.Time
	newID func() string
}

func New(writer domain.Writer, opts Options) *Importer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	tz := opts.Timezone
	return &Importer{
		writer:    writer,
		batchSize: opts.BatchSize,
		tz:        tz,
		cache:     opts.Cache,
		audit:     opts.Audit,
		now:       func() time.Time { return timezone.NowIn(tz) },
		newID:     uuid.NewString,
	}
}

type Report struct {
	RunID      string
	Generation domain.Generation
	File       string
	Sheet      string
	Template   string
	Version    string

	RowsRead   int
	Skipped    map[string]int
	Operations int
	Failed     int
	Total      int64
	Duration   time.Duration

	Missing    []string
	Unexpected []string
}

func (r *Report) SkippedTotal() int {
	n := 0
	for _, c := range r.Skipped {
		n += c
	}
	return n
}

// Run imports every row of s. Missing required headers abort the run before
// anything is written; malformed rows are skipped and counted.
func (im *Importer) Run(ctx context.Context, s *sheet.Sheet, tpl *template.Template) (*Report, error) {
	started := time.Now()
	gen := im.writer.Generation()

	rep := &Report{
		RunID:      im.newID(),
		Generation: gen,
		File:       s.File,
		Sheet:      s.Name,
		Template:   tpl.Name,
		Version:    tpl.Version,
		RowsRead:   len(s.Rows),
		Skipped:    map[string]int{},
	}

	check := Check(gen, tpl, s.Headers)
	rep.Missing = check.Missing
	rep.Unexpected = check.Unexpected
	if !check.OK() {
		return rep, eris.Wrapf(ErrMissingHeaders, "importer: %s", strings.Join(check.Missing, ", "))
	}

	if err := im.writer.EnsureIndexes(ctx); err != nil {
		return rep, eris.Wrap(err, "importer: ensure indexes")
	}

	b := newBuilder(gen, tpl, domain.Provenance{
		Archivo:         s.File,
		Plantilla:       tpl.Name,
		TemplateVersion: tpl.Version,
		RunID:           rep.RunID,
		ImportadoEn:     im.now(),
	})

	batch := newBatch(im.batchSize)
	for _, row := range s.Rows {
		rec, reason := b.build(row)
		if reason != "" {
			rep.Skipped[reason]++
			continue
		}
		if batch.add(rec) {
			rep.Skipped[SkipDuplicate]++
		}
		if batch.full() {
			if err := im.flush(ctx, batch, rep); err != nil {
				return rep, err
			}
		}
	}
	if err := im.flush(ctx, batch, rep); err != nil {
		return rep, err
	}

	total, err := im.writer.Count(ctx)
	if err != nil {
		return rep, eris.Wrap(err, "importer: count")
	}
	rep.Total = total
	rep.Duration = time.Since(started)

	im.finish(ctx, rep)
	return rep, nil
}

func (im *Importer) flush(ctx context.Context, b *batch, rep *Report) error {
	if b.empty() {
		return nil
	}
	records := b.drain()

	res, err := im.writer.Upsert(ctx, records)
	if err != nil {
		return eris.Wrap(err, "importer: upsert batch")
	}
	rep.Operations += res.Executed
	rep.Failed += res.Failed

	for key, rowErr := range res.Errors {
		zap.L().Warn("row rejected by store",
			zap.String("cd", key.CD),
			zap.String("codigo", key.Code),
			zap.Error(rowErr))
	}
	zap.L().Info("batch written",
		zap.String("run_id", rep.RunID),
		zap.Int("processed", rep.Operations))
	return nil
}

func (im *Importer) finish(ctx context.Context, rep *Report) {
	if im.cache != nil {
		if err := im.cache.Invalidate(ctx); err != nil {
			zap.L().Warn("lookup cache not invalidated", zap.Error(err))
		}
	}

	if im.audit != nil {
		err := im.audit.Log(ctx, audit.Event{
			Action:     audit.ActionImportCompleted,
			Generation: string(rep.Generation),
			Metadata: map[string]any{
				"runId":       rep.RunID,
				"archivo":     rep.File,
				"plantilla":   rep.Template,
				"filas":       rep.RowsRead,
				"omitidas":    rep.Skipped,
				"operaciones": rep.Operations,
				"fallidas":    rep.Failed,
				"total":       rep.Total,
			},
		})
		if err != nil {
			zap.L().Warn("import run not audited", zap.Error(err))
		}
	}
}

// builder turns sheet rows into records for one generation.
type builder struct {
	gen    domain.Generation
	source domain.Provenance

	cd, code, name, lat, lng string

	descriptive []resolved
	commercial  []resolved
	extras      []string
}

type resolved struct {
	field  field
	header string
}

func newBuilder(gen domain.Generation, tpl *template.Template, source domain.Provenance) *builder {
	b := &builder{
		gen:    gen,
		source: source,
		cd:     fieldCD.headerIn(tpl),
		code:   fieldCode.headerIn(tpl),
		name:   fieldName.headerIn(tpl),
		lat:    fieldLatitude.headerIn(tpl),
		lng:    fieldLongitude.headerIn(tpl),
		extras: tpl.Extras,
	}
	for _, f := range descriptiveFields {
		b.descriptive = append(b.descriptive, resolved{field: f, header: f.headerIn(tpl)})
	}
	for _, f := range commercialFields {
		b.commercial = append(b.commercial, resolved{field: f, header: f.headerIn(tpl)})
	}
	return b
}

func (b *builder) build(row sheet.Row) (domain.Record, string) {
	rec := domain.Record{
		Code: normalize.ToStr(row.Get(b.code)),
		Name: normalize.ToStr(row.Get(b.name)),
	}
	if b.gen == domain.Partitioned {
		rec.CD = normalize.ToStr(row.Get(b.cd))
		if rec.CD == "" {
			return rec, SkipNoCD
		}
	}
	if rec.Code == "" {
		return rec, SkipNoCode
	}
	if rec.Name == "" {
		return rec, SkipNoName
	}

	lat, lng, ok := normalize.LatLng(row.Get(b.lat), row.Get(b.lng))
	if !ok {
		return rec, SkipNoCoords
	}
	rec.Lat = normalize.FormatCoordinate(lat)
	rec.Lng = normalize.FormatCoordinate(lng)

	for _, r := range b.descriptive {
		r.field.set(&rec, row.Get(r.header))
	}

	rec.Extras = map[string]any{}
	for _, r := range b.commercial {
		v := row.Get(r.header)
		if b.gen == domain.Partitioned {
			r.field.set(&rec, v)
			continue
		}
		if v != "" {
			rec.Extras[r.field.key()] = v
		}
	}
	for _, h := range b.extras {
		rec.Extras[h] = row.Get(h)
	}

	rec.Source = b.source
	rec.CreatedAt = b.source.ImportadoEn
	rec.UpdatedAt = b.source.ImportadoEn
	return rec, ""
}

// batch keeps one record per identity, the last row winning.
type batch struct {
	size    int
	records []domain.Record
	index   map[domain.Key]int
}

func newBatch(size int) *batch {
	return &batch{size: size, index: make(map[domain.Key]int, size)}
}

// add reports whether rec replaced a record already in the batch.
func (b *batch) add(rec domain.Record) bool {
	if i, ok := b.index[rec.Key()]; ok {
		b.records[i] = rec
		return true
	}
	b.index[rec.Key()] = len(b.records)
	b.records = append(b.records, rec)
	return false
}

func (b *batch) full() bool  { return len(b.records) >= b.size }
func (b *batch) empty() bool { return len(b.records) == 0 }

func (b *batch) drain() []domain.Record {
	out := b.records
	b.records = nil
	b.index = make(map[domain.Key]int, b.size)
	return out
}
