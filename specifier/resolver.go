/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokenbuilder/fs"
)

// ErrNotFound is returned when a package cannot be located.
var ErrNotFound = errors.New("package not found")

// Resolved preserves both the original specifier and the resolved filesystem path.
type Resolved struct {
	// Specifier is the original specifier (e.g., "npm:@adobe/spectrum-tokens/src").
	Specifier string

	// Path is the resolved directory
	// (e.g., "/project/node_modules/@adobe/spectrum-tokens/src").
	Path string

	Kind Kind
}

// Resolver resolves specifiers to filesystem paths.
type Resolver interface {
	Resolve(spec string) (*Resolved, error)
	CanResolve(spec string) bool
}

// ChainResolver tries multiple resolvers in order.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that tries each resolver in order.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve uses the first resolver that can handle spec.
func (c *ChainResolver) Resolve(spec string) (*Resolved, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return nil, fmt.Errorf("no resolver found for specifier: %s", spec)
}

// CanResolve returns true if any resolver can handle the specifier.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}

// NewDefaultResolver creates a resolver chain for npm: specifiers and local paths,
// both relative to rootDir.
func NewDefaultResolver(filesystem fs.FileSystem, rootDir string) Resolver {
	return NewChainResolver(
		NewNPMResolver(filesystem, rootDir),
		NewLocalResolver(rootDir),
	)
}
