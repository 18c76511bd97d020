// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/querybench/dbchart/benchgrid"
	"gonum.org/v1/plot"
)

func TestBarWidth(t *testing.T) {
	for groups, want := range map[int]float64{
		1: 0.35,
		2: 0.35,
		3: 0.2,
		7: 0.2,
	} {
		if got := BarWidth(groups); got != want {
			t.Errorf("BarWidth(%d) = %v, want %v", groups, got, want)
		}
	}
}

func TestLayout(t *testing.T) {
	const eps = 1e-12
	check := func(what string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > eps {
			t.Errorf("%s = %v, want %v", what, got, want)
		}
	}
	// Three groups of 0.2-wide bars: group 2 of database 1 is at
	// 1.4, and database 1's tick is under the middle bar.
	check("barCenter(1, 2, 0.2)", barCenter(1, 2, 0.2), 1.4)
	check("tickPosition(1, 3, 0.2)", tickPosition(1, 3, 0.2), 1.2)
	// Two groups: tick halfway between the two bars.
	check("tickPosition(0, 2, 0.35)", tickPosition(0, 2, 0.35), 0.175)
	check("tickPosition(2, 1, 0.35)", tickPosition(2, 1, 0.35), 2)

	check("groupMax", groupMax([]float64{3, 0, 50, 7}), 50)
	check("groupMax of missing", groupMax([]float64{0, 0}), 1)
	check("labelY", labelY(25, 50), 26)
	check("groupMin", groupMin([]float64{3, -4, 0, -1}), -4)
	check("groupMin of positive", groupMin([]float64{3, 5}), 0)
}

func TestRowsLabel(t *testing.T) {
	for rows, want := range map[int64]string{
		100:     "100 rows",
		1000:    "1,000 rows",
		1000000: "1,000,000 rows",
	} {
		if got := RowsLabel(rows); got != want {
			t.Errorf("RowsLabel(%d) = %q, want %q", rows, got, want)
		}
	}
}

func testGrid() *benchgrid.Grid {
	return &benchgrid.Grid{
		DBs:  []string{"Postgres", "SQLite", "HSQLDB", "DuckDB"},
		Rows: []int64{1000, 10000, 100000},
		Values: [][]float64{
			{12, 3, 5, 0},
			{40, 9, 22, 4},
			{310, 95, 180, 30},
		},
	}
}

func TestPlot(t *testing.T) {
	ch := &Chart{
		Title:       "Query Performance: Q1",
		XLabel:      "Database",
		YLabel:      "Med_ms (ms)",
		Grid:        testGrid(),
		LabelFormat: "%.0f",
		Note:        "Based on 1 queries",
	}
	p, err := ch.Plot()
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != ch.Title || p.X.Label.Text != "Database" || p.Y.Label.Text != "Med_ms (ms)" {
		t.Errorf("labels: got %q, %q, %q", p.Title.Text, p.X.Label.Text, p.Y.Label.Text)
	}
	if p.Y.Min != 0 {
		t.Errorf("Y.Min = %v, want 0", p.Y.Min)
	}
	if p.Y.Max <= 310*(1+headroom) {
		t.Errorf("Y.Max = %v leaves no room for labels", p.Y.Max)
	}
	// The last bar is database 3 in group 2, 0.1 wide on each side.
	if p.X.Max <= 3+2*0.2+0.1 || p.X.Min >= -0.1 {
		t.Errorf("X range [%v, %v] does not cover every bar", p.X.Min, p.X.Max)
	}

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	want := []string{"Postgres", "SQLite", "HSQLDB", "DuckDB"}
	if len(labels) != len(want) {
		t.Fatalf("tick labels = %q, want %q", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("tick %d = %q, want %q", i, labels[i], want[i])
		}
	}

	img := Image(p)
	b := img.Bounds()
	if b.Dx() != 3600 || b.Dy() != 1800 {
		t.Errorf("image is %dx%d, want 3600x1800", b.Dx(), b.Dy())
	}
}

func TestPlotEmpty(t *testing.T) {
	for _, g := range []*benchgrid.Grid{nil, {}, {DBs: []string{"Postgres"}}} {
		if _, err := (&Chart{Grid: g}).Plot(); err != ErrEmptyGrid {
			t.Errorf("Plot(%+v): want ErrEmptyGrid, got %v", g, err)
		}
	}
}

func TestPlotNegative(t *testing.T) {
	g := &benchgrid.Grid{
		DBs:    []string{"Postgres", "SQLite"},
		Rows:   []int64{1000},
		Values: [][]float64{{-5, 20}},
	}
	p, err := (&Chart{Grid: g, LabelFormat: "%.0f"}).Plot()
	if err != nil {
		t.Fatal(err)
	}
	if p.Y.Min != -5 {
		t.Errorf("Y.Min = %v, want -5", p.Y.Min)
	}
	if b := Image(p).Bounds(); b.Dx() != 3600 {
		t.Errorf("image is %d wide, want 3600", b.Dx())
	}
}

func TestPlotNotFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		g := &benchgrid.Grid{
			DBs:    []string{"Postgres", "SQLite"},
			Rows:   []int64{1000},
			Values: [][]float64{{v, 2}},
		}
		_, err := (&Chart{Grid: g}).Plot()
		if err == nil || err == ErrEmptyGrid || !strings.Contains(err.Error(), "Postgres at 1000 rows") {
			t.Errorf("Plot with value %v: got error %v", v, err)
		}
	}
}

func TestSave(t *testing.T) {
	p, err := (&Chart{Title: "t", Grid: testGrid()}).Plot()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "q_performance.png")
	if err := Save(p, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 3600 || cfg.Height != 1800 {
		t.Errorf("PNG is %dx%d, want 3600x1800", cfg.Width, cfg.Height)
	}

	if err := Save(p, filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Errorf("Save into a missing directory: want error")
	}
}

func TestGroupColors(t *testing.T) {
	for _, n := range []int{1, 2, 3, 9, 12} {
		cs, err := groupColors(n)
		if err != nil {
			t.Fatalf("groupColors(%d): %s", n, err)
		}
		if len(cs) != n {
			t.Errorf("groupColors(%d) returned %d colors", n, len(cs))
		}
	}
}

var _ plot.Thumbnailer = (*groupBars)(nil)
var _ plot.DataRanger = (*groupBars)(nil)
