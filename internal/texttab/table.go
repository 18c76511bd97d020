// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Its methods return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	cells []textCell
	cols  int
	rules map[int]int

	started        bool
	curRow, curCol int
}

type textCell struct {
	row, col   int
	value      string
	leftMargin string
	alignment  align
	minWidth   int
}

type CellOption func(c *textCell)

// LeftMargin sets the separator printed before a cell.
func LeftMargin(x string) CellOption {
	return func(c *textCell) {
		c.leftMargin = x
	}
}

// MinWidth pads the cell's column to at least n characters, not
// counting its left margin.
func MinWidth(n int) CellOption {
	return func(c *textCell) {
		c.minWidth = n
	}
}

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center            = func(c *textCell) { c.alignment = alignCenter }
	Right             = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignCenter:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if t.started {
		t.curRow++
	}
	t.started = true
	t.curCol = 0
	return t
}

// Rule adds a row that is a line of dashes as wide as the table.
func (t *Table) Rule() *Table {
	return t.RuleWidth(0)
}

// RuleWidth adds a row that is a line of n dashes. If n <= 0, the line
// is as wide as the table.
func (t *Table) RuleWidth(n int) *Table {
	t.Row()
	if t.rules == nil {
		t.rules = make(map[int]int)
	}
	t.rules[t.curRow] = n
	return t
}

// Cell adds a cell at the current row and column and moves to the
// next column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	lMargin := " "
	if t.curCol == 0 || len(value) == 0 {
		// The left-most column and empty cells have no
		// margin by default.
		lMargin = ""
	}
	t.cells = append(t.cells, textCell{t.curRow, t.curCol, value, lMargin, alignLeft, 0})
	for _, o := range opts {
		o(&t.cells[len(t.cells)-1])
	}
	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	if !t.started {
		return nil
	}

	// Column widths include their left margins.
	lmargin := make([]int, t.cols)
	for _, cell := range t.cells {
		lmargin[cell.col] = max(lmargin[cell.col], utf8.RuneCountInString(cell.leftMargin))
	}
	ws := make([]int, t.cols)
	for _, cell := range t.cells {
		ws[cell.col] = max(ws[cell.col], utf8.RuneCountInString(cell.value)+lmargin[cell.col], cell.minWidth+lmargin[cell.col])
	}
	offs := make([]int, t.cols+1)
	for i, w := range ws {
		offs[i+1] = offs[i] + w
	}

	sort.SliceStable(t.cells, func(i, j int) bool {
		if t.cells[i].row != t.cells[j].row {
			return t.cells[i].row < t.cells[j].row
		}
		return t.cells[i].col < t.cells[j].col
	})

	var buf strings.Builder
	cells := t.cells
	for row := 0; row <= t.curRow; row++ {
		if n, ok := t.rules[row]; ok {
			if n <= 0 {
				n = offs[t.cols]
			}
			buf.WriteString(strings.Repeat("-", n))
			buf.WriteByte('\n')
			continue
		}
		var line strings.Builder
		off := 0
		for ; len(cells) > 0 && cells[0].row == row; cells = cells[1:] {
			cell := cells[0]
			fmt.Fprintf(&line, "%*s%*s", offs[cell.col]-off, "", lmargin[cell.col], cell.leftMargin)
			s := cell.alignment.lpad(cell.value, ws[cell.col]-lmargin[cell.col])
			line.WriteString(s)
			off = offs[cell.col] + lmargin[cell.col] + utf8.RuneCountInString(s)
		}
		// Don't print spaces at the ends of lines.
		buf.WriteString(strings.TrimRight(line.String(), " "))
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
