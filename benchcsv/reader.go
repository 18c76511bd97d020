// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads database benchmark result tables.
//
// A result table is a CSV file with a header row. Each record is one
// measurement of a query against a database engine at a given dataset
// size. The columns this package understands are:
//
//	DB       database engine name (required)
//	rows     dataset size in rows (required)
//	query    query identifier (optional)
//	<col>    latency in milliseconds; the column name is chosen by
//	         the caller and defaults to Med_ms (required)
//
// Other columns are carried along but ignored.
package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Column names.
const (
	DBColumn    = "DB"
	RowsColumn  = "rows"
	QueryColumn = "query"

	// DefaultLatencyColumn is the latency column used when the
	// caller doesn't choose one.
	DefaultLatencyColumn = "Med_ms"
)

// ErrEmpty is returned by Read for an input with no header row.
var ErrEmpty = errors.New("no columns to parse from file")

// A MissingColumnsError reports a table that lacks one or more
// required columns. Such a table is skipped rather than partially
// processed.
type MissingColumnsError struct {
	Path     string
	Required []string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns %v", e.Path, e.Required)
}

// A Table is a single loaded result file.
type Table struct {
	// Path is the file this table was read from.
	Path string

	// Latency is the name of the latency column.
	Latency string

	raw *table.Table
}

// Read parses CSV from r into a table of string columns. The first
// record is the header. A repeated column name keeps its first column;
// later copies are renamed name.1, name.2, and so on. Every record must have as many fields as the
// header. Leading and trailing space is trimmed from every cell.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	header := records[0]
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.TrimSpace(h)
	}
	dedup(header)
	rows := records[1:]
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}
	return table.TableFromStrings(header, rows, false), nil
}

// Load reads the file at path and checks that it has the DB, rows and
// latency columns. If a column is missing, Load returns the table
// along with a *MissingColumnsError.
func Load(path, latency string) (*Table, error) {
	if latency == "" {
		latency = DefaultLatencyColumn
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := Read(f)
	if err != nil {
		return nil, err
	}
	t := &Table{Path: path, Latency: latency, raw: raw}
	return t, t.Validate()
}

// Required returns the columns t must have.
func (t *Table) Required() []string {
	return []string{DBColumn, RowsColumn, t.Latency}
}

// Validate returns a *MissingColumnsError if t lacks any required
// column.
func (t *Table) Validate() error {
	var missing []string
	for _, col := range t.Required() {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingColumnsError{Path: t.Path, Required: t.Required(), Missing: missing}
}

// Has reports whether t has a column named col.
func (t *Table) Has(col string) bool {
	return t.raw.Column(col) != nil
}

// Len returns the number of records in t.
func (t *Table) Len() int {
	return t.raw.Len()
}

// Name returns the base name of t's file without its extension.
func (t *Table) Name() string {
	return BaseName(t.Path)
}

// Query returns the query identifier for the whole file: the first
// value of the query column, or the file's base name if there is no
// query column.
func (t *Table) Query() string {
	if qs, ok := t.raw.Column(QueryColumn).([]string); ok && len(qs) > 0 && qs[0] != "" {
		return qs[0]
	}
	return t.Name()
}

// BaseName returns the last element of path with its extension
// removed.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// dedup renames repeated names in header in place so that every name
// is unique. The first occurrence keeps its name.
func dedup(header []string) {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = false
	}
	for i, h := range header {
		if !seen[h] {
			seen[h] = true
			continue
		}
		for n := 1; ; n++ {
			name := fmt.Sprintf("%s.%d", h, n)
			if _, ok := seen[name]; !ok {
				header[i] = name
				seen[name] = true
				break
			}
		}
	}
}
