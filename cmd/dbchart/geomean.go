// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/querybench/dbchart/benchchart"
	"github.com/querybench/dbchart/benchcsv"
	"github.com/querybench/dbchart/benchgrid"
)

const geoMeanTitle = "Overall Performance: Geometric Mean Across All Comparable Queries"

// aggregate charts the geometric mean latency of the designated
// databases over every query and dataset size they all ran, across
// files, and prints the summary table.
func (r *runner) aggregate(files []string) (err error) {
	defer catch(&err)

	if len(files) == 0 {
		fmt.Fprintf(r.stdout, "No CSV files found for geometric mean calculation.\n")
		return nil
	}
	var all []benchcsv.Measurement
	for _, f := range files {
		ms, err := r.loadMeasurements(f)
		if err != nil {
			r.log.Printf("Error reading %s: %v", f, err)
			continue
		}
		all = append(all, ms...)
	}

	c := benchgrid.NewComparable(all)
	if c.Len() == 0 {
		fmt.Fprintf(r.stdout, "No data found where all three databases (%s) ran the same queries.\n", strings.Join(benchgrid.Designated, ", "))
		return nil
	}
	fmt.Fprintf(r.stdout, "Found %d qualifying data points across %d query/dataset combinations\n", c.Len(), c.Combinations())

	grid, err := c.GeoMeans()
	if err != nil {
		return err
	}
	ch := &benchchart.Chart{
		Title:       geoMeanTitle,
		XLabel:      "Database",
		YLabel:      fmt.Sprintf("Geometric Mean %s (ms)", r.latency),
		Grid:        grid,
		LabelFormat: "%.1f",
		Note:        fmt.Sprintf("Based on %d queries", len(c.Queries())),
	}
	p, err := ch.Plot()
	if err != nil {
		return err
	}
	if err := r.output(p, "geometric_mean_performance.png", "Saved geometric mean plot"); err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "\nGeometric Mean Performance Summary:\n")
	var overall []float64
	if r.geomean {
		overall = c.Overall()
	}
	return writeSummary(r.stdout, r.format, grid, overall)
}

// loadMeasurements reads the measurements in path. A file without the
// required columns contributes nothing.
func (r *runner) loadMeasurements(path string) ([]benchcsv.Measurement, error) {
	tab, err := benchcsv.Load(path, r.latency)
	var mce *benchcsv.MissingColumnsError
	if errors.As(err, &mce) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tab.Measurements()
}
