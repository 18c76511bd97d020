// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Measurement is one latency observation: query Query run against
// database DB over a dataset of Rows rows took Latency milliseconds.
type Measurement struct {
	DB      string
	Rows    int64
	Query   string
	Latency float64

	// File is the path of the table the measurement came from.
	File string
}

// Measurements returns the typed records of t.
//
// Records with an empty DB, rows or latency cell, or a NaN latency,
// carry no measurement and are dropped. If t has no query column, or a
// record's query cell is empty, the query is t's base name. An infinite
// latency or any other unparseable cell is an error.
func (t *Table) Measurements() ([]Measurement, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	dbs := t.raw.MustColumn(DBColumn).([]string)
	rows := t.raw.MustColumn(RowsColumn).([]string)
	lats := t.raw.MustColumn(t.Latency).([]string)
	queries, _ := t.raw.Column(QueryColumn).([]string)

	name := t.Name()
	ms := make([]Measurement, 0, len(dbs))
	for i := range dbs {
		// Line 1 is the header.
		line := i + 2
		if dbs[i] == "" || rows[i] == "" || lats[i] == "" {
			continue
		}
		n, err := parseRows(rows[i])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: column %s: %w", t.Path, line, RowsColumn, err)
		}
		lat, err := strconv.ParseFloat(lats[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: column %s: %w", t.Path, line, t.Latency, err)
		}
		if math.IsNaN(lat) {
			continue
		}
		if math.IsInf(lat, 0) {
			return nil, fmt.Errorf("%s:%d: column %s: latency %q is not finite", t.Path, line, t.Latency, lats[i])
		}
		q := name
		if queries != nil && queries[i] != "" {
			q = queries[i]
		}
		ms = append(ms, Measurement{DB: dbs[i], Rows: n, Query: q, Latency: lat, File: t.Path})
	}
	return ms, nil
}

// parseRows parses a row count. Besides plain integers it accepts
// integral floats such as "1000.0", which spreadsheet exports produce.
func parseRows(s string) (int64, error) {
	s = strings.ReplaceAll(s, "_", "")
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("row count %q is not an integer", s)
	}
	return int64(f), nil
}
