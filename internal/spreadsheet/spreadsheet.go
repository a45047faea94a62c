// Package spreadsheet reads the first sheet of an uploaded workbook into
// header-keyed records.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	// ErrMalformed wraps read failures caused by the file's contents
	ErrMalformed = errors.New("malformed spreadsheet")
)

// Record is one data row paired with the header row, in column order
type Record struct {
	headers []string
	cells   []string
}

// NewRecord pairs headers with cells; extra cells without a header are ignored
func NewRecord(headers, cells []string) Record {
	return Record{headers: headers, cells: cells}
}

// Parse reads r according to the extension of filename. The first row is the header;
// rows with no non-empty cell are skipped.
func Parse(filename string, r io.Reader) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xlsm", ".xls":
		return parseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func parseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // Rows may be ragged
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %w", ErrMalformed, err)
	}
	return records(rows), nil
}

func parseXLSX(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", ErrMalformed, err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0]) // First sheet only
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", ErrMalformed, sheets[0], err)
	}
	return records(rows), nil
}

func records(rows [][]string) []Record {
	if len(rows) == 0 {
		return nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) > 0 {
		header[0] = strings.TrimSpace(strings.TrimPrefix(header[0], "\ufeff"))
	}
	out := make([]Record, 0, len(rows)-1) // Header row excluded
	for _, row := range rows[1:] {
		for i, cell := range row {
			if i < len(header) && header[i] != "" && strings.TrimSpace(cell) != "" {
				out = append(out, Record{headers: header, cells: row})
				break
			}
		}
	}
	return out
}

// Lookup returns the first alias present in rec with a non-empty value.
// Aliases are tried in order and each is matched against the headers left to
// right, ignoring case. The returned value is trimmed.
func (rec Record) Lookup(aliases ...string) string {
	for _, alias := range aliases {
		for i, h := range rec.headers {
			if i >= len(rec.cells) || !strings.EqualFold(h, alias) {
				continue
			}
			if v := strings.TrimSpace(rec.cells[i]); v != "" {
				return v
			}
		}
	}
	return ""
}
