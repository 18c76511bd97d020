// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Output size of every chart.
const (
	Width  = 12 * vg.Inch
	Height = 6 * vg.Inch
	DPI    = 300
)

func render(p *plot.Plot) *vgimg.Canvas {
	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))
	p.Draw(draw.New(c))
	return c
}

// Image draws p and returns the raster image.
func Image(p *plot.Plot) image.Image {
	return render(p).Image()
}

// Save draws p and writes it to path as a PNG. The file is closed
// before Save returns.
func Save(p *plot.Plot, path string) (err error) {
	c := render(p)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(f)
	return err
}
