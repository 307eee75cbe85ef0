/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"bennypowers.dev/tokenbuilder/fs"
	"bennypowers.dev/tokenbuilder/token"
)

// Write writes outputs into dir, creating it if needed.
// It returns the paths written, in output order.
func Write(filesystem fs.FileSystem, dir string, outputs []Output) ([]string, error) {
	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.File)
		if err := filesystem.WriteFile(path, out.CSS, 0644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Stale describes an output whose file on disk does not match.
type Stale struct {
	Path string

	// Diff is a line diff from the file on disk to the generated text,
	// with "-" and "+" prefixed lines. Empty when the file is missing.
	Diff string

	Missing bool
}

// Check compares outputs against the files in dir without writing.
// It returns the stale outputs and, when there are any, an error wrapping
// token.ErrStale.
func Check(filesystem fs.FileSystem, dir string, outputs []Output) ([]Stale, error) {
	var stale []Stale
	for _, out := range outputs {
		path := filepath.Join(dir, out.File)
		current, err := filesystem.ReadFile(path)
		if errors.Is(err, iofs.ErrNotExist) {
			stale = append(stale, Stale{Path: path, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if string(current) != string(out.CSS) {
			stale = append(stale, Stale{Path: path, Diff: LineDiff(string(current), string(out.CSS))})
		}
	}
	if len(stale) > 0 {
		paths := make([]string, len(stale))
		for i, s := range stale {
			paths[i] = s.Path
		}
		return stale, fmt.Errorf("%w: %s", token.ErrStale, strings.Join(paths, ", "))
	}
	return nil, nil
}

// LineDiff returns the changed lines between before and after.
// Unchanged lines are omitted.
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	return sb.String()
}
