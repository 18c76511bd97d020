// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart draws grouped bar charts of a benchgrid.Grid.
//
// Each database gets one cluster of bars along the x axis, with one
// bar per row-count group. Bars are labelled with their values and
// the legend names the row-count groups.
package benchchart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/querybench/dbchart/benchgrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyGrid is returned when a chart has no bars to draw.
var ErrEmptyGrid = errors.New("nothing to chart")

// A Chart describes a grouped bar chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	Grid *benchgrid.Grid

	// LabelFormat is the fmt verb for bar value labels, such as
	// "%.0f". If empty, bars are not labelled.
	LabelFormat string

	// Note, if not empty, is shown in a box in the top-left corner.
	Note string
}

// legendTitle heads the legend entries for the row-count groups.
const legendTitle = "Dataset Size"

var noteFill = color.NRGBA{R: 0xf5, G: 0xde, B: 0xb3, A: 0x80}

// Plot lays out ch.
func (ch *Chart) Plot() (*plot.Plot, error) {
	g := ch.Grid
	if g == nil || len(g.DBs) == 0 || len(g.Rows) == 0 {
		return nil, ErrEmptyGrid
	}
	for i, vs := range g.Values {
		for j, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s at %d rows: value %v is not finite", g.DBs[j], g.Rows[i], v)
			}
		}
	}
	colors, err := groupColors(len(g.Rows))
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = ch.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = ch.XLabel
	p.Y.Label.Text = ch.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 0xd9}
	p.Add(grid)

	width := BarWidth(len(g.Rows))
	p.Legend.Add(legendTitle)
	for i, rows := range g.Rows {
		b := &groupBars{
			values:    g.Group(i),
			group:     i,
			width:     width,
			color:     colors[i],
			format:    ch.LabelFormat,
			labelSize: vg.Points(8),
		}
		p.Add(b)
		p.Legend.Add(RowsLabel(rows), b)
	}
	if ch.Note != "" {
		p.Add(note{text: ch.Note, fill: noteFill})
	}

	ticks := make([]plot.Tick, len(g.DBs))
	for j, db := range g.DBs {
		ticks[j] = plot.Tick{Value: tickPosition(j, len(g.Rows), width), Label: db}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	// Leave a margin at the sides, and room at the top for the
	// legend, which is drawn inside the plotting area.
	pad := 0.05 * (p.X.Max - p.X.Min)
	p.X.Min -= pad
	p.X.Max += pad
	p.Y.Min = math.Min(p.Y.Min, 0)
	p.Y.Max *= 1 + 0.07*float64(len(g.Rows)+1)
	p.Legend.Top = true
	p.Legend.Padding = vg.Millimeter

	return p, nil
}

// groupColors returns n distinct fill colors.
func groupColors(n int) ([]color.Color, error) {
	k := n
	if k < 3 {
		k = 3
	} else if k > 9 {
		k = 9
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		return nil, err
	}
	cs := pal.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = cs[i%len(cs)]
	}
	return out, nil
}
