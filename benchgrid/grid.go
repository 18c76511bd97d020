// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchgrid pivots latency measurements into a database by
// dataset-size grid.
//
// A Grid has one value per (database, row count) pair. Databases are
// ordered with the designated engines first, in their fixed order,
// followed by any other engines in the order they were first seen.
// Row counts are in increasing order.
package benchgrid

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/querybench/dbchart/benchcsv"
)

// Designated is the fixed set of engines every chart leads with and
// the aggregate comparison is restricted to.
var Designated = []string{"Postgres", "SQLite", "HSQLDB"}

// ErrNoMeasurements is returned when there is nothing to aggregate.
var ErrNoMeasurements = errors.New("no measurements")

// A Grid is the pivoted view of a set of measurements.
type Grid struct {
	// DBs lists the databases, in display order.
	DBs []string

	// Rows lists the distinct row counts, in increasing order.
	Rows []int64

	// Values[i][j] is the aggregated latency of DBs[j] at Rows[i].
	// Pairs with no measurements hold 0.
	Values [][]float64
}

// Value returns the aggregated latency of db at rows, and whether
// that pair is part of g.
func (g *Grid) Value(db string, rows int64) (float64, bool) {
	i, j := indexOf(g.Rows, rows), indexOf(g.DBs, db)
	if i < 0 || j < 0 {
		return 0, false
	}
	return g.Values[i][j], true
}

// Group returns the values of row-count group i, one per database.
func (g *Grid) Group(i int) []float64 {
	return g.Values[i]
}

func indexOf[T comparable](xs []T, x T) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	return -1
}

// OrderDBs returns the designated engines present in seen, in their
// fixed order, followed by the remaining databases of seen in the order
// they appear. Duplicates in seen are dropped.
func OrderDBs(seen []string) []string {
	uniq := slice.Nub(seen).([]string)
	out := make([]string, 0, len(uniq))
	for _, db := range Designated {
		if indexOf(uniq, db) >= 0 {
			out = append(out, db)
		}
	}
	for _, db := range uniq {
		if indexOf(Designated, db) < 0 {
			out = append(out, db)
		}
	}
	return out
}

// Pivot aggregates ms by (database, row count) using the arithmetic
// mean of the latencies.
func Pivot(ms []benchcsv.Measurement) (*Grid, error) {
	return aggregate(ms, ggstat.AggMean, "mean ")
}

// aggregate groups ms by (DB, Rows) and applies agg to the Latency
// column of each group. prefix is the column-name prefix agg uses for
// its output column.
func aggregate(ms []benchcsv.Measurement, agg func(cols ...string) ggstat.Aggregator, prefix string) (*Grid, error) {
	if len(ms) == 0 {
		return nil, ErrNoMeasurements
	}

	dbs := make([]string, len(ms))
	rows := make([]int64, len(ms))
	for i, m := range ms {
		dbs[i], rows[i] = m.DB, m.Rows
	}
	g := &Grid{
		DBs:  OrderDBs(dbs),
		Rows: slice.Nub(rows).([]int64),
	}
	slice.Sort(g.Rows)
	g.Values = make([][]float64, len(g.Rows))
	for i := range g.Values {
		g.Values[i] = make([]float64, len(g.DBs))
	}

	t := table.TableFromStructs(ms)
	out := table.Flatten(ggstat.Agg("DB", "Rows")(agg("Latency")).F(t))
	aggDBs, ok1 := out.MustColumn("DB").([]string)
	aggRows, ok2 := out.MustColumn("Rows").([]int64)
	aggVals, ok3 := out.MustColumn(prefix + "Latency").([]float64)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("unexpected aggregate column types %T, %T, %T", out.Column("DB"), out.Column("Rows"), out.Column(prefix+"Latency"))
	}
	for k := range aggDBs {
		i, j := indexOf(g.Rows, aggRows[k]), indexOf(g.DBs, aggDBs[k])
		g.Values[i][j] = aggVals[k]
	}
	return g, nil
}
