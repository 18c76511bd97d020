// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgrid

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/querybench/dbchart/benchcsv"
)

func TestComparableAcrossFiles(t *testing.T) {
	// Each file holds one engine's measurement of the same query.
	ms := []benchcsv.Measurement{
		{DB: "Postgres", Rows: 1000, Query: "Q1", Latency: 10, File: "pg.csv"},
		{DB: "SQLite", Rows: 1000, Query: "Q1", Latency: 20, File: "sqlite.csv"},
		{DB: "HSQLDB", Rows: 1000, Query: "Q1", Latency: 40, File: "hsqldb.csv"},
	}
	c := NewComparable(ms)
	if diff := cmp.Diff(ms, c.Measurements); diff != "" {
		t.Errorf("comparable (-want +got):\n%s", diff)
	}
	if c.Len() != 3 || c.Combinations() != 1 {
		t.Errorf("Len, Combinations = %d, %d; want 3, 1", c.Len(), c.Combinations())
	}

	g, err := c.GeoMeans()
	if err != nil {
		t.Fatal(err)
	}
	want := &Grid{
		DBs:    []string{"Postgres", "SQLite", "HSQLDB"},
		Rows:   []int64{1000},
		Values: [][]float64{{10, 20, 40}},
	}
	if diff := cmp.Diff(want, g, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("GeoMeans (-want +got):\n%s", diff)
	}

	overall := c.Overall()
	wantOverall := stats.GeoMean([]float64{10, 20, 40})
	if len(overall) != 1 || math.Abs(overall[0]-wantOverall) > 1e-9 {
		t.Errorf("Overall() = %v, want [%v]", overall, wantOverall)
	}
}

func TestComparableFilters(t *testing.T) {
	ms := []benchcsv.Measurement{
		// Q1 at 1000 rows: complete; DuckDB is dropped, as are
		// the zero and negative latencies.
		m("Postgres", 1000, "Q1", 2),
		m("SQLite", 1000, "Q1", 8),
		m("HSQLDB", 1000, "Q1", 0),
		m("HSQLDB", 1000, "Q1", 4),
		m("DuckDB", 1000, "Q1", 1),
		m("SQLite", 1000, "Q1", -1),
		// Q1 at 10000 rows: HSQLDB missing.
		m("Postgres", 10000, "Q1", 3),
		m("SQLite", 10000, "Q1", 3),
		// Q2 at 1000 rows: complete.
		m("HSQLDB", 1000, "Q2", 16),
		m("SQLite", 1000, "Q2", 2),
		m("Postgres", 1000, "Q2", 8),
	}
	c := NewComparable(ms)
	want := []benchcsv.Measurement{
		m("Postgres", 1000, "Q1", 2),
		m("SQLite", 1000, "Q1", 8),
		m("HSQLDB", 1000, "Q1", 4),
		m("HSQLDB", 1000, "Q2", 16),
		m("SQLite", 1000, "Q2", 2),
		m("Postgres", 1000, "Q2", 8),
	}
	if diff := cmp.Diff(want, c.Measurements); diff != "" {
		t.Errorf("comparable (-want +got):\n%s", diff)
	}
	if got := c.Queries(); !cmp.Equal(got, []string{"Q1", "Q2"}) {
		t.Errorf("Queries() = %q", got)
	}
	if got := c.Combinations(); got != 2 {
		t.Errorf("Combinations() = %d, want 2", got)
	}

	g, err := c.GeoMeans()
	if err != nil {
		t.Fatal(err)
	}
	wantGrid := &Grid{
		DBs:    []string{"Postgres", "SQLite", "HSQLDB"},
		Rows:   []int64{1000},
		Values: [][]float64{{4, 4, 8}},
	}
	if diff := cmp.Diff(wantGrid, g, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("GeoMeans (-want +got):\n%s", diff)
	}
}

func TestComparableEmpty(t *testing.T) {
	c := NewComparable([]benchcsv.Measurement{
		m("Postgres", 1000, "Q1", 2),
		m("SQLite", 1000, "Q1", 8),
	})
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, err := c.GeoMeans(); err != ErrNoMeasurements {
		t.Errorf("GeoMeans: want ErrNoMeasurements, got %v", err)
	}
	if got := NewComparable(nil).Len(); got != 0 {
		t.Errorf("NewComparable(nil).Len() = %d", got)
	}
}
