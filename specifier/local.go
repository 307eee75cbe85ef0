/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "path/filepath"

// LocalResolver handles local paths. Relative paths are joined to rootDir.
type LocalResolver struct {
	rootDir string
}

// NewLocalResolver creates a resolver for local filesystem paths.
func NewLocalResolver(rootDir string) *LocalResolver {
	return &LocalResolver{rootDir: rootDir}
}

// Resolve returns the local path, made relative to rootDir when needed.
func (r *LocalResolver) Resolve(spec string) (*Resolved, error) {
	path := spec
	if !filepath.IsAbs(path) && r.rootDir != "" {
		path = filepath.Join(r.rootDir, path)
	}
	return &Resolved{Specifier: spec, Path: path, Kind: KindLocal}, nil
}

// CanResolve returns true for paths that are not package specifiers.
func (r *LocalResolver) CanResolve(spec string) bool {
	return !IsPackageSpecifier(spec)
}
