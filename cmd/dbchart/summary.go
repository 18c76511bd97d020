// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/safehtml/template"
	"github.com/querybench/dbchart/benchchart"
	"github.com/querybench/dbchart/benchgrid"
	"github.com/querybench/dbchart/internal/texttab"
)

var summaryFormats = map[string]bool{"text": true, "csv": true, "html": true}

// overallName labels the row of geometric means across all databases.
const overallName = "geomean"

// summaryLine is one database's row of the summary table.
type summaryLine struct {
	Name  string
	Cells []string
}

// summaryLines returns the rows of the summary table for g, one per
// database. If overall has one value per row count of g, it is
// appended as a final line.
func summaryLines(g *benchgrid.Grid, overall []float64) []summaryLine {
	var lines []summaryLine
	for _, db := range g.DBs {
		line := summaryLine{Name: db}
		for _, rows := range g.Rows {
			v, _ := g.Value(db, rows)
			line.Cells = append(line.Cells, fmt.Sprintf("%.1f", v))
		}
		lines = append(lines, line)
	}
	if len(overall) == len(g.Rows) && len(overall) > 0 {
		line := summaryLine{Name: overallName}
		for _, v := range overall {
			line.Cells = append(line.Cells, fmt.Sprintf("%.1f", v))
		}
		lines = append(lines, line)
	}
	return lines
}

// writeSummary writes the summary table of g to w in format.
func writeSummary(w io.Writer, format string, g *benchgrid.Grid, overall []float64) error {
	lines := summaryLines(g, overall)
	switch format {
	case "text":
		return summaryText(w, g, lines)
	case "csv":
		return summaryCSV(w, g, lines)
	case "html":
		return summaryHTML(w, g, lines)
	}
	return fmt.Errorf("unknown summary format %q", format)
}

// Text summary column widths. Value columns follow each other with no
// separator; only the first is set off from the names by a space.
const (
	nameWidth = 12
	cellWidth = 17
)

func summaryText(w io.Writer, g *benchgrid.Grid, lines []summaryLine) error {
	cell := func(i int) []texttab.CellOption {
		opts := []texttab.CellOption{texttab.Right, texttab.MinWidth(cellWidth)}
		if i > 0 {
			opts = append(opts, texttab.LeftMargin(""))
		}
		return opts
	}
	rule := nameWidth + cellWidth*len(g.Rows)

	var tab texttab.Table
	tab.Row().Cell("Database", texttab.MinWidth(nameWidth))
	for i, rows := range g.Rows {
		tab.Cell(benchchart.RowsLabel(rows), cell(i)...)
	}
	tab.RuleWidth(rule)
	for _, line := range lines {
		if line.Name == overallName {
			tab.RuleWidth(rule)
		}
		tab.Row().Cell(line.Name)
		for i, c := range line.Cells {
			tab.Cell(c, cell(i)...)
		}
	}
	return tab.Format(w)
}

func summaryCSV(w io.Writer, g *benchgrid.Grid, lines []summaryLine) error {
	cw := csv.NewWriter(w)
	header := []string{"Database"}
	for _, rows := range g.Rows {
		header = append(header, strconv.FormatInt(rows, 10))
	}
	cw.Write(header)
	for _, line := range lines {
		cw.Write(append([]string{line.Name}, line.Cells...))
	}
	cw.Flush()
	return cw.Error()
}

const summaryHTMLText = `<table class='dbchart'>
<tr><th>Database{{range .Rows}}<th>{{.}}{{end}}
{{range .Lines}}<tr><td>{{.Name}}{{range .Cells}}<td>{{.}}{{end}}
{{end}}</table>
`

var summaryHTMLTemplate = template.Must(template.New("summary").Parse(summaryHTMLText))

func summaryHTML(w io.Writer, g *benchgrid.Grid, lines []summaryLine) error {
	var rows []string
	for _, r := range g.Rows {
		rows = append(rows, benchchart.RowsLabel(r))
	}
	return summaryHTMLTemplate.Execute(w, struct {
		Rows  []string
		Lines []summaryLine
	}{rows, lines})
}
