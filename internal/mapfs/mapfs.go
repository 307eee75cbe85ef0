/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
)

// MapFileSystem implements fs.FileSystem over an fstest.MapFS.
// Loader and emitter tests put token fixtures into it and read generated
// CSS back out. Directories exist implicitly when a file lies below them.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: make(fstest.MapFS)}
}

// AddFile adds a file, replacing any existing one.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode}
}

// ReadFile returns a copy of the file's contents. Missing files wrap fs.ErrNotExist.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

// WriteFile stores data at name. It fails if a parent path is a file.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
		if _, isFile := m.files[dir]; isFile {
			return &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("%s is not a directory", dir)}
		}
	}
	m.files[name] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm}
	return nil
}

// MkdirAll fails if p is a file. Directories need no entry of their own.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, isFile := m.files[clean(p)]; isFile {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	return nil
}

// Exists reports whether p is a file or has files below it.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	prefix := p + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// clean maps a path to an fstest.MapFS key: slash separated with no
// leading slash.
func clean(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}
