/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"bennypowers.dev/tokenbuilder/cmd/render"
	"bennypowers.dev/tokenbuilder/emit"
	"bennypowers.dev/tokenbuilder/token"
)

// Generate runs emitters over a single load of their inputs and writes the
// results, printing a summary per file to w. With check set, nothing is
// written: outputs are compared with the files on disk and stale files are
// reported with a line diff and an error wrapping token.ErrStale.
func (p *Project) Generate(w io.Writer, emitters []emit.Emitter, check bool) error {
	fmt.Fprintf(w, "Loading Spectrum tokens from %s...\n", p.TokenDir)
	set, err := p.Loader().LoadSet(emit.Inputs(emitters...)...)
	if err != nil {
		return err
	}

	outDir := p.OutDir()
	var stale []string
	for _, e := range emitters {
		outputs, err := e.Emit(set)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}

		if check {
			results, err := emit.Check(p.FS, outDir, outputs)
			if err != nil && !errors.Is(err, token.ErrStale) {
				return err
			}
			render.CheckResults(w, outDir, outputs, results)
			for _, s := range results {
				stale = append(stale, s.Path)
			}
			continue
		}

		if _, err := emit.Write(p.FS, outDir, outputs); err != nil {
			return err
		}
		for _, out := range outputs {
			render.Summary(w, out)
		}
	}

	if check {
		if len(stale) > 0 {
			return fmt.Errorf("%w: %d file(s) out of date", token.ErrStale, len(stale))
		}
		fmt.Fprintf(w, "\n%s All CSS files in %s are up to date\n", render.Check, outDir)
		return nil
	}
	fmt.Fprintf(w, "\n%s All CSS files generated in: %s\n", render.Check, outDir)
	return nil
}

func join(root, dir string) string {
	if filepath.IsAbs(dir) || root == "" || root == "." {
		return dir
	}
	return filepath.Join(root, dir)
}
