// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPattern matches result tables.
const DefaultPattern = "*.csv"

// Glob returns the files in dir matching pattern, in lexical order.
// Subdirectories are never returned. An empty pattern means
// DefaultPattern.
//
// Glob fails only if dir can't be read or pattern is malformed; no
// matches is not an error.
func Glob(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if dir == "" {
		dir = "."
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	paths := matches[:0]
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.IsDir() {
			continue
		}
		paths = append(paths, m)
	}
	return paths, nil
}
