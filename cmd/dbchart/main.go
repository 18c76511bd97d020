// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dbchart charts database query benchmark results.
//
// Usage:
//
//	dbchart [-dir dir] [-o dir] [-col column] [-show] [-format text|csv|html] [-geomean]
//
// Dbchart reads every CSV file in the input directory (by default the
// current directory). Each file holds one measurement per record, with
// at least the columns
//
//	DB       database engine name
//	rows     dataset size in rows
//	Med_ms   median latency in milliseconds
//
// and optionally a "query" column naming the query. The -col flag
// selects a different latency column.
//
// For each file, dbchart draws a grouped bar chart of the mean latency
// of each database at each dataset size and saves it as
// <file>_performance.png. Files that lack a required column are
// skipped. An unreadable file is reported and the rest are still
// processed.
//
// Dbchart then compares Postgres, SQLite and HSQLDB across all files.
// It keeps every (query, dataset size) combination that all three ran,
// computes the geometric mean latency of each database at each dataset
// size, saves the chart as geometric_mean_performance.png and prints a
// summary table in the format chosen by -format. With -geomean, the
// table ends with the geometric mean over all three databases.
//
// The -show flag displays the charts in a window instead of saving
// them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/querybench/dbchart/benchcsv"
	"github.com/querybench/dbchart/internal/viewer"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("unexpected arguments")

func main() {
	log.SetPrefix("dbchart: ")
	log.SetFlags(0)
	if err := dbchart(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, errUsage) {
			exit(2)
		}
		log.Print(err)
		exit(1)
	}
}

// A runner holds the settings of one dbchart invocation.
type runner struct {
	dir     string
	outDir  string
	latency string
	format  string
	show    bool
	geomean bool

	stdout io.Writer
	log    *log.Logger

	// viewer collects charts instead of saving them, if non-nil.
	viewer *viewer.Viewer
}

func dbchart(stdout, stderr io.Writer, args []string) error {
	r := &runner{
		stdout: stdout,
		log:    log.New(stderr, "dbchart: ", 0),
	}

	flags := flag.NewFlagSet("dbchart", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: dbchart [flags]\n")
		flags.PrintDefaults()
	}
	flags.StringVar(&r.dir, "dir", ".", "read result tables from `directory`")
	flags.StringVar(&r.outDir, "o", ".", "write charts to `directory`")
	flags.StringVar(&r.latency, "col", benchcsv.DefaultLatencyColumn, "latency `column` to chart")
	flags.BoolVar(&r.show, "show", false, "show charts in a window instead of saving them")
	flags.StringVar(&r.format, "format", "text", "summary table `format`: text, csv, or html")
	flags.BoolVar(&r.geomean, "geomean", false, "add a row with the geometric mean across all databases to the summary")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return errUsage
	}
	if !summaryFormats[r.format] {
		return fmt.Errorf("unknown summary format %q", r.format)
	}

	if r.show {
		r.viewer = viewer.New("dbchart")
	}
	if err := r.run(); err != nil {
		return err
	}
	if r.viewer != nil {
		r.viewer.Run()
	}
	return nil
}

// run charts each file in r.dir and then the cross-file comparison.
// Only failing to list r.dir is an error; problems with individual
// files are logged.
func (r *runner) run() error {
	files, err := benchcsv.Glob(r.dir, benchcsv.DefaultPattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		where := "the current directory"
		if r.dir != "." {
			where = r.dir
		}
		fmt.Fprintf(r.stdout, "No CSV files found in %s.\n", where)
		return nil
	}

	fmt.Fprintf(r.stdout, "Found %d CSV file(s):\n", len(files))
	for _, f := range files {
		fmt.Fprintf(r.stdout, "  - %s\n", f)
	}
	fmt.Fprintf(r.stdout, "\nProcessing individual files... (save_plots=%v)\n", r.viewer == nil)

	for _, f := range files {
		banner(r.stdout, 50, "Processing: "+f)
		if err := r.renderFile(f); err != nil {
			r.log.Printf("Error processing %s: %v", f, err)
		}
	}

	banner(r.stdout, 60, "Generating Geometric Mean Performance Diagram")
	if err := r.aggregate(files); err != nil {
		r.log.Printf("Error generating geometric mean plot: %v", err)
	}
	return nil
}

func banner(w io.Writer, width int, title string) {
	rule := strings.Repeat("=", width)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

// catch turns a panic in the calling function into an error in *err.
// The table library reports misuse by panicking.
func catch(err *error) {
	if e := recover(); e != nil {
		*err = fmt.Errorf("%v", e)
	}
}
