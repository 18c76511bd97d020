// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Bar widths, in units of the spacing between databases.
const (
	wideBar   = 0.35
	narrowBar = 0.2
)

// labelLift is how far a value label sits above its bar, as a
// fraction of the largest value in the bar's row-count group.
const labelLift = 0.02

// BarWidth returns the width of each bar when there are groups
// row-count groups per database.
func BarWidth(groups int) float64 {
	if groups <= 2 {
		return wideBar
	}
	return narrowBar
}

// barCenter returns the x position of the bar for database db in
// row-count group group.
func barCenter(db, group int, width float64) float64 {
	return float64(db) + float64(group)*width
}

// tickPosition returns the x position of the label for database db,
// which is centred under its group of bars.
func tickPosition(db, groups int, width float64) float64 {
	return float64(db) + float64(groups-1)/2*width
}

// groupMax returns the largest positive value in vs, or 1 if there
// is none.
func groupMax(vs []float64) float64 {
	peak := 0.0
	for _, v := range vs {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return 1
	}
	return peak
}

// groupMin returns the smallest value in vs, or 0 if none is
// negative.
func groupMin(vs []float64) float64 {
	low := 0.0
	for _, v := range vs {
		if v < low {
			low = v
		}
	}
	return low
}

// labelY returns the y position of the value label for a bar of
// height v in a group whose largest value is peak.
func labelY(v, peak float64) float64 {
	return v + peak*labelLift
}

var printer = message.NewPrinter(language.English)

// RowsLabel formats a row count for a legend or table heading, such
// as "10,000 rows".
func RowsLabel(rows int64) string {
	return printer.Sprintf("%d rows", rows)
}
