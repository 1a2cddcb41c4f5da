// Package tabular loads the reference corpus's three xlsx tables
// (plants, organisms, fungi) and delimited-text lookup tables into the
// typed collections the rest of the system consumes. Dynamic
// column-name lookups stop here; everything downstream works with
// plant.Record, plant.OrganismRecord, and plant.FungiRecord.
package tabular

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rawRow is one sheet row keyed by trimmed header name, mirroring the
// reference reader's RawRowData shape.
type rawRow map[string]string

// readSheet1 opens an xlsx file and returns its Sheet1 rows keyed by
// header, tolerating short rows (missing trailing cells).
func readSheet1(path string) ([]rawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("read Sheet1 of %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s must have a header row and at least one data row", path)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]rawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(rawRow, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				r[headers[j]] = strings.TrimSpace(cell)
			}
		}
		out = append(out, r)
	}
	log.Printf("[tabular] %s: %d columns, %d rows", path, len(headers), len(out))
	return out, nil
}

// col returns a column's trimmed value, or "" if absent.
func (r rawRow) col(names ...string) string {
	for _, n := range names {
		if v, ok := r[n]; ok && v != "" {
			return v
		}
	}
	return ""
}

// list canonicalizes a role column into a slice of opaque taxon
// names. The source stores these either as a delimited string (pipe
// or comma separated) or — in sheets exported from a nested-list
// source — as a single already-joined cell; either way splitting on
// both delimiters and trimming empties handles both shapes.
func (r rawRow) list(names ...string) []string {
	raw := r.col(names...)
	if raw == "" {
		return nil
	}
	raw = strings.NewReplacer("|", ",").Replace(raw)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
