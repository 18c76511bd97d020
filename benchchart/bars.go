// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// headroom is the fraction of the tallest bar left free above it for
// its value label.
const headroom = 0.1

// groupBars draws the bars of one row-count group, one bar per
// database. Unlike plotter.BarChart, bar widths and offsets are in
// data units, so groups of bars stay aligned with the database ticks
// however large the canvas is.
type groupBars struct {
	// values holds one value per database. Zero values are gaps.
	// Negative values are drawn below the axis without a label.
	values []float64

	// group is the index of this row-count group and width is the
	// width of one bar.
	group int
	width float64

	color color.Color

	// format formats value labels. If empty, bars aren't labelled.
	format    string
	labelSize vg.Length
}

// Plot implements plot.Plotter.
func (b *groupBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	sty := plt.Y.Tick.Label
	sty.Font.Size = b.labelSize
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YBottom

	peak := groupMax(b.values)
	for j, v := range b.values {
		if v == 0 {
			continue
		}
		x := barCenter(j, b.group, b.width)
		left, right := trX(x-b.width/2), trX(x+b.width/2)
		bottom, top := trY(0), trY(v)
		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
		}
		c.FillPolygon(b.color, c.ClipPolygonY(pts))

		if b.format == "" || v < 0 {
			continue
		}
		pt := vg.Point{X: trX(x), Y: trY(labelY(v, peak))}
		if c.ContainsX(pt.X) && c.ContainsY(pt.Y) {
			c.FillText(sty, pt, fmt.Sprintf(b.format, v))
		}
	}
}

// DataRange implements plot.DataRanger.
func (b *groupBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = barCenter(0, b.group, b.width) - b.width/2
	xmax = barCenter(len(b.values)-1, b.group, b.width) + b.width/2
	return xmin, xmax, groupMin(b.values), groupMax(b.values) * (1 + headroom)
}

// Thumbnail implements plot.Thumbnailer.
func (b *groupBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color, c.ClipPolygonY(pts))
}

// note is a boxed line of text pinned to the top-left corner of the
// plotting area.
type note struct {
	text string
	fill color.Color
}

// Plot implements plot.Plotter.
func (n note) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Legend.TextStyle
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop

	pad := vg.Points(4)
	w, h := sty.Width(n.text)+2*pad, sty.Height(n.text)+2*pad
	x := c.Min.X + 0.01*(c.Max.X-c.Min.X)
	y := c.Max.Y - 0.02*(c.Max.Y-c.Min.Y)
	box := []vg.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y - h},
		{X: x, Y: y - h},
	}
	c.FillPolygon(n.fill, box)
	c.StrokeLines(draw.LineStyle{Color: color.Gray{Y: 0x80}, Width: vg.Points(0.5)}, append(box, box[0]))
	c.FillText(sty, vg.Point{X: x + pad, Y: y - pad}, n.text)
}
