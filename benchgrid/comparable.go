// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgrid

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/querybench/dbchart/benchcsv"
)

// Comparable is the set of measurements that can be compared across
// every designated engine.
//
// A (query, row count) combination is comparable if each designated
// engine has at least one measurement of it. Only measurements of the
// designated engines with a strictly positive latency are kept.
type Comparable struct {
	Measurements []benchcsv.Measurement
}

type combo struct {
	query string
	rows  int64
}

// NewComparable selects the comparable measurements from ms. ms may
// come from any number of files; combinations are matched across
// files.
func NewComparable(ms []benchcsv.Measurement) *Comparable {
	c := new(Comparable)
	if len(ms) == 0 {
		return c
	}
	g := table.GroupBy(table.TableFromStructs(ms), "Query", "Rows")
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		dbs := t.MustColumn("DB").([]string)
		if !covers(dbs) {
			continue
		}
		lats := t.MustColumn("Latency").([]float64)
		files := t.MustColumn("File").([]string)
		query := gid.Parent().Label().(string)
		rows := gid.Label().(int64)
		for i, db := range dbs {
			if indexOf(Designated, db) < 0 || !(lats[i] > 0) {
				continue
			}
			c.Measurements = append(c.Measurements, benchcsv.Measurement{
				DB: db, Rows: rows, Query: query, Latency: lats[i], File: files[i],
			})
		}
	}
	return c
}

// covers reports whether every designated engine appears in dbs.
func covers(dbs []string) bool {
	for _, want := range Designated {
		if indexOf(dbs, want) < 0 {
			return false
		}
	}
	return true
}

// Len returns the number of comparable measurements.
func (c *Comparable) Len() int {
	return len(c.Measurements)
}

// Combinations returns the number of distinct (query, row count)
// combinations in c.
func (c *Comparable) Combinations() int {
	seen := make(map[combo]bool)
	for _, m := range c.Measurements {
		seen[combo{m.Query, m.Rows}] = true
	}
	return len(seen)
}

// Queries returns the distinct queries in c, in first-seen order.
func (c *Comparable) Queries() []string {
	qs := make([]string, len(c.Measurements))
	for i, m := range c.Measurements {
		qs[i] = m.Query
	}
	return slice.Nub(qs).([]string)
}

// GeoMeans returns the geometric mean latency of each (database, row
// count) pair in c.
func (c *Comparable) GeoMeans() (*Grid, error) {
	return aggregate(c.Measurements, ggstat.AggGeoMean, "geomean ")
}

// Overall returns the geometric mean over every engine's comparable
// latencies at each row count, in the order of g.Rows for the Grid
// returned by GeoMeans.
func (c *Comparable) Overall() []float64 {
	byRows := make(map[int64][]float64)
	var rows []int64
	for _, m := range c.Measurements {
		if _, ok := byRows[m.Rows]; !ok {
			rows = append(rows, m.Rows)
		}
		byRows[m.Rows] = append(byRows[m.Rows], m.Latency)
	}
	slice.Sort(rows)
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = stats.GeoMean(byRows[r])
	}
	return out
}
