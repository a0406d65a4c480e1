package template

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"

	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/normalize"
)

var ErrTemplateNotFound = errors.New("template not found")

// Template is the column contract of an import: which headers must exist,
// which logical field reads which header, and which extra columns are
// folded into the extras map.
type Template struct {
	Version  string            `json:"version"`
	Schema   string            `json:"schema,omitempty"`
	Required []string          `json:"required"`
	Mapping  map[string]string `json:"mapping,omitempty"`
	Extras   []string          `json:"extras,omitempty"`

	// Name is the file name the template was loaded from.
	Name string `json:"-"`
}

func Load(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrTemplateNotFound, "template: %s", path)
		}
		return nil, eris.Wrapf(err, "template: read %s", path)
	}

	var t Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, eris.Wrapf(err, "template: parse %s", path)
	}
	t.Name = filepath.Base(path)
	return &t, nil
}

// Generation returns the schema the template declares, falling back to def.
func (t *Template) Generation(def domain.Generation) domain.Generation {
	if gen, ok := domain.ParseGeneration(t.Schema); ok {
		return gen
	}
	return def
}

// Header returns the spreadsheet header mapped to the first of names that
// has a mapping entry, or def when none does.
func (t *Template) Header(def string, names ...string) string {
	for _, n := range names {
		if h := t.Mapping[n]; h != "" {
			return h
		}
	}
	return def
}

// Report is the outcome of checking a header row against a template.
type Report struct {
	Headers []string
	// Missing required headers. Any entry is fatal.
	Missing []string
	// Unexpected headers are present but unaccounted for; they are ignored on import.
	Unexpected []string
}

func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Validate compares headers to the template after normalizing both sides.
// fieldHeaders are the columns the importer reads on its own, beyond the
// mapping; they count as accounted for.
func Validate(t *Template, headers []string, fieldHeaders ...string) Report {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[normalize.Header(h)] = struct{}{}
	}

	known := make(map[string]struct{})
	for _, h := range t.Required {
		known[normalize.Header(h)] = struct{}{}
	}
	for _, h := range t.Mapping {
		known[normalize.Header(h)] = struct{}{}
	}
	for _, h := range t.Extras {
		known[normalize.Header(h)] = struct{}{}
	}
	for _, h := range fieldHeaders {
		known[normalize.Header(h)] = struct{}{}
	}

	rep := Report{
		Headers:    headers,
		Missing:    []string{},
		Unexpected: []string{},
	}
	for _, h := range t.Required {
		if _, ok := present[normalize.Header(h)]; !ok {
			rep.Missing = append(rep.Missing, h)
		}
	}
	for _, h := range headers {
		if normalize.Header(h) == "" {
			continue
		}
		if _, ok := known[normalize.Header(h)]; !ok {
			rep.Unexpected = append(rep.Unexpected, h)
		}
	}
	sort.Strings(rep.Unexpected)

	return rep
}
