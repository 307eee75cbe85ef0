/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads Spectrum token files from a token directory.
package load

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/tokenbuilder/fs"
	"bennypowers.dev/tokenbuilder/token"
)

// Loader reads named token files from Dir.
type Loader struct {
	// FS is the filesystem to read from. Defaults to the OS filesystem if nil.
	FS fs.FileSystem

	// Dir is the token directory (e.g., node_modules/@adobe/spectrum-tokens/src).
	Dir string
}

// New creates a loader for the given directory.
func New(filesystem fs.FileSystem, dir string) *Loader {
	return &Loader{FS: filesystem, Dir: dir}
}

// LoadFile reads and decodes a single token file.
// A missing file wraps token.ErrMissingFile; invalid JSON wraps token.ErrMalformed.
func (l *Loader) LoadFile(name string) (*token.File, error) {
	filesystem := l.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	path := filepath.Join(l.Dir, name)
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", token.ErrMissingFile, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", token.ErrMissingFile, path, err)
	}

	// Strip comments and trailing commas, as hand-edited token files sometimes carry them
	return token.DecodeFile(name, jsonc.ToJSON(data))
}

// LoadSet reads every named file, aborting on the first failure.
func (l *Loader) LoadSet(names ...string) (*Set, error) {
	set := &Set{byName: make(map[string]*token.File, len(names))}
	for _, name := range names {
		if _, ok := set.byName[name]; ok {
			continue
		}
		f, err := l.LoadFile(name)
		if err != nil {
			return nil, err
		}
		set.files = append(set.files, f)
		set.byName[name] = f
	}
	return set, nil
}

// Set is an ordered collection of loaded token files.
type Set struct {
	files  []*token.File
	byName map[string]*token.File
}

// NewSet builds a Set from already-decoded files.
func NewSet(files ...*token.File) *Set {
	set := &Set{byName: make(map[string]*token.File, len(files))}
	for _, f := range files {
		set.files = append(set.files, f)
		set.byName[f.Name] = f
	}
	return set
}

// Files returns the files in load order.
func (s *Set) Files() []*token.File {
	return s.files
}

// File returns the named file, or nil if it was not loaded.
func (s *Set) File(name string) *token.File {
	return s.byName[name]
}

// Subset returns the named files in the given order, failing if any is absent.
func (s *Set) Subset(names ...string) ([]*token.File, error) {
	files := make([]*token.File, 0, len(names))
	for _, name := range names {
		f := s.byName[name]
		if f == nil {
			return nil, fmt.Errorf("%w: %s was not loaded", token.ErrMissingFile, name)
		}
		files = append(files, f)
	}
	return files, nil
}
