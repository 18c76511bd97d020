// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/querybench/dbchart/benchchart"
	"github.com/querybench/dbchart/benchcsv"
	"github.com/querybench/dbchart/benchgrid"
	"gonum.org/v1/plot"
)

// renderFile charts the mean latency of each database at each
// dataset size in the file at path.
func (r *runner) renderFile(path string) (err error) {
	defer catch(&err)

	tab, err := benchcsv.Load(path, r.latency)
	var mce *benchcsv.MissingColumnsError
	if errors.As(err, &mce) {
		r.log.Printf("Skipping %s: Missing required columns %v", path, mce.Required)
		return nil
	}
	if err != nil {
		return err
	}
	ms, err := tab.Measurements()
	if err != nil {
		return err
	}
	grid, err := benchgrid.Pivot(ms)
	if errors.Is(err, benchgrid.ErrNoMeasurements) {
		r.log.Printf("Skipping %s: no measurements", path)
		return nil
	}
	if err != nil {
		return err
	}

	ch := &benchchart.Chart{
		Title:       "Query Performance: " + tab.Query(),
		XLabel:      "Database",
		YLabel:      fmt.Sprintf("%s (ms)", r.latency),
		Grid:        grid,
		LabelFormat: "%.0f",
	}
	p, err := ch.Plot()
	if err != nil {
		return err
	}
	return r.output(p, tab.Name()+"_performance.png", "Saved plot")
}

// output saves p as name in the output directory, or hands it to the
// viewer in display mode.
func (r *runner) output(p *plot.Plot, name, what string) error {
	if r.viewer != nil {
		r.viewer.Add(name, benchchart.Image(p))
		return nil
	}
	if err := benchchart.Save(p, filepath.Join(r.outDir, name)); err != nil {
		return err
	}
	fmt.Fprintf(r.stdout, "%s: %s\n", what, name)
	return nil
}
