package sheet

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/mapa-clientes/internal/normalize"
)

var ErrFileNotFound = errors.New("spreadsheet not found")

// Sheet is the first worksheet of a workbook: a header row and the data rows
// below it.
type Sheet struct {
	Name    string
	File    string
	Headers []string
	Rows    []Row

	index map[string]int
}

// Row is one data row. Cells missing at the end of a short row read as blank.
type Row struct {
	// Number is the 1-based row number in the worksheet.
	Number int

	cells []string
	sheet *Sheet
}

// Get returns the trimmed value under header, compared after header
// normalization. Unknown headers read as blank.
func (r Row) Get(header string) string {
	i, ok := r.sheet.index[normalize.Header(header)]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// Blank reports whether every cell of the row is empty.
func (r Row) Blank() bool {
	for _, c := range r.cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Open reads a local path or an s3://bucket/key source. objects may be nil
// when only local files are used.
func Open(ctx context.Context, src string, objects ObjectGetter) (*Sheet, error) {
	if bucket, key, ok := parseS3(src); ok {
		if objects == nil {
			return nil, eris.Errorf("sheet: no s3 client configured for %s", src)
		}
		body, err := fetchObject(ctx, objects, bucket, key)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		return Read(body, path.Base(key))
	}

	f, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrFileNotFound, "sheet: %s", src)
		}
		return nil, eris.Wrapf(err, "sheet: open %s", src)
	}
	defer f.Close()

	return Read(f, filepath.Base(src))
}

// Read parses the first worksheet of an xlsx stream. Cells are read raw so
// numeric coordinates keep their full precision.
func Read(r io.Reader, name string) (*Sheet, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, eris.Wrapf(err, "sheet: parse %s", name)
	}
	defer wb.Close()

	first := wb.GetSheetName(0)
	if first == "" {
		return nil, eris.Errorf("sheet: %s has no worksheets", name)
	}

	rows, err := wb.GetRows(first, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, eris.Wrapf(err, "sheet: read rows of %s", first)
	}

	s := &Sheet{
		Name:  first,
		File:  name,
		index: map[string]int{},
	}
	if len(rows) == 0 {
		return s, nil
	}

	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		s.Headers = append(s.Headers, h)
		key := normalize.Header(h)
		if key == "" {
			continue
		}
		if _, dup := s.index[key]; !dup {
			s.index[key] = i
		}
	}

	for i, cells := range rows[1:] {
		row := Row{Number: i + 2, cells: cells, sheet: s}
		if row.Blank() {
			continue
		}
		s.Rows = append(s.Rows, row)
	}

	return s, nil
}
