// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows rendered charts in a desktop window, one tab
// per chart.
package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// A Viewer collects charts and then presents them together.
type Viewer struct {
	Title  string
	charts []chart
}

type chart struct {
	name string
	img  image.Image
}

// New returns an empty Viewer whose window is titled title.
func New(title string) *Viewer {
	return &Viewer{Title: title}
}

// Add queues img to be shown in a tab labelled name.
func (v *Viewer) Add(name string, img image.Image) {
	v.charts = append(v.charts, chart{name, img})
}

// Len returns the number of queued charts.
func (v *Viewer) Len() int {
	return len(v.charts)
}

// Names returns the tab labels, in order.
func (v *Viewer) Names() []string {
	names := make([]string, len(v.charts))
	for i, c := range v.charts {
		names[i] = c.name
	}
	return names
}

// Run opens the window and blocks until it is closed. It must be
// called from the main goroutine. If no charts were added, Run
// returns immediately.
func (v *Viewer) Run() {
	if len(v.charts) == 0 {
		return
	}
	a := app.NewWithID("com.querybench.dbchart")
	w := a.NewWindow(v.Title)
	w.Resize(fyne.NewSize(1200, 650))

	tabs := container.NewAppTabs()
	for _, c := range v.charts {
		img := canvas.NewImageFromImage(c.img)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(900, 450))
		tabs.Append(container.NewTabItem(c.name, img))
	}
	tabs.SetTabLocation(container.TabLocationLeading)
	w.SetContent(tabs)
	w.ShowAndRun()
}
