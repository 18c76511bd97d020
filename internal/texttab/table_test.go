// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.lpad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc")
	check("abc", alignCenter, 10, "   abc")
	check("abc", alignCenter, 11, "    abc")
	check("abc", alignRight, 10, "       abc")
	check("☃", alignRight, 4, "   ☃")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	// Empty table.
	check("")

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a b c\nd e f\n")

	// Cell padding, without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	// Cell alignment.
	tab.Row().Cell("a", Left).Cell("b", Center).Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a    b    c\nxxx xxx xxx\n")

	// Margins.
	tab.Row().Cell("a").Cell("b", LeftMargin(" | "))
	tab.Row().Cell("c").Cell("d")
	check("a | b\nc   d\n")

	// Rules span the whole table.
	tab.Row().Cell("Database").Cell("1,000 rows", Right)
	tab.Rule()
	tab.Row().Cell("SQLite").Cell("21.5", Right)
	check("Database 1,000 rows\n-------------------\nSQLite         21.5\n")

	// Minimum widths and fixed-length rules.
	tab.Row().Cell("DB", MinWidth(6)).Cell("n", Right, MinWidth(4)).Cell("m", Right, MinWidth(3), LeftMargin(""))
	tab.RuleWidth(10)
	tab.Row().Cell("SQLite").Cell("1.5", Right).Cell("22", Right, LeftMargin(""))
	check("DB        n  m\n----------\nSQLite  1.5 22\n")
}
