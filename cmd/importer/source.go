package main

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mapa-clientes/internal/config"
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/importer"
	"github.com/BruksfildServices01/mapa-clientes/internal/sheet"
	"github.com/BruksfildServices01/mapa-clientes/internal/template"
)

// inputs are a spreadsheet and template that passed the header check.
type inputs struct {
	sheet  *sheet.Sheet
	tpl    *template.Template
	gen    domain.Generation
	report template.Report
}

// prepare loads the inputs, resolves the schema and checks the headers.
// Both commands go through it, so nothing reaches the store unless it
// succeeds.
func prepare(ctx context.Context, aws config.AWSConfig, file, tplPath, schema string) (inputs, error) {
	s, tpl, err := loadInputs(ctx, aws, file, tplPath)
	if err != nil {
		return inputs{}, err
	}

	gen := tpl.Generation(domain.Partitioned)
	if schema != "" {
		var ok bool
		if gen, ok = domain.ParseGeneration(schema); !ok {
			return inputs{}, eris.Errorf("unknown schema %q (want cd or legacy)", schema)
		}
	}

	in := inputs{sheet: s, tpl: tpl, gen: gen, report: importer.Check(gen, tpl, s.Headers)}

	zap.L().Info("spreadsheet read",
		zap.String("file", s.File),
		zap.String("sheet", s.Name),
		zap.String("schema", string(gen)),
		zap.Int("rows", len(s.Rows)),
		zap.Strings("headers", s.Headers))

	if !in.report.OK() {
		zap.L().Error("required headers missing, nothing written", zap.Strings("missing", in.report.Missing))
		return in, eris.Wrapf(importer.ErrMissingHeaders, "%s", strings.Join(in.report.Missing, ", "))
	}
	if len(in.report.Unexpected) > 0 {
		zap.L().Warn("headers not covered by template are ignored", zap.Strings("headers", in.report.Unexpected))
	}
	return in, nil
}

// loadInputs reads the template first and then the spreadsheet. Either one
// missing is fatal.
func loadInputs(ctx context.Context, aws config.AWSConfig, file, tplPath string) (*sheet.Sheet, *template.Template, error) {
	tpl, err := template.Load(tplPath)
	if err != nil {
		return nil, nil, err
	}

	var objects sheet.ObjectGetter
	if strings.HasPrefix(file, "s3://") {
		objects = sheet.NewS3Client(aws)
	}

	s, err := sheet.Open(ctx, file, objects)
	if err != nil {
		return nil, nil, err
	}
	if len(s.Headers) == 0 {
		return nil, nil, eris.Errorf("sheet %s of %s has no header row", s.Name, s.File)
	}
	return s, tpl, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
