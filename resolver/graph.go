/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"slices"

	"bennypowers.dev/tokenbuilder/token"
)

// DependencyGraph represents a directed graph of token references.
type DependencyGraph struct {
	dependencies map[string]string
	nodes        []string
	known        map[string]bool
}

// Dangling is a reference to a token the mapping does not define.
type Dangling struct {
	// Token is the name of the token holding the reference.
	Token string

	// Reference is the missing token name.
	Reference string
}

// BuildGraph builds a dependency graph from a reference mapping.
// Each token depends on at most one other token: the one its whole value references.
func BuildGraph(refs *References) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string]string),
		nodes:        refs.Names(),
		known:        make(map[string]bool),
	}

	for _, name := range graph.nodes {
		graph.known[name] = true
		value, _ := refs.Lookup(name)
		if ref, ok := token.ParseReference(value); ok {
			graph.dependencies[name] = ref
		}
	}

	return graph
}

// Dependency returns the token that name references, if any.
func (g *DependencyGraph) Dependency(name string) (string, bool) {
	dep, ok := g.dependencies[name]
	return dep, ok
}

// Chain returns the names visited while resolving name, starting with name.
// The chain stops at a literal value, a missing token, or a repeated name.
func (g *DependencyGraph) Chain(name string) []string {
	chain := []string{name}
	seen := map[string]bool{name: true}
	for {
		dep, ok := g.dependencies[name]
		if !ok || seen[dep] {
			return chain
		}
		chain = append(chain, dep)
		if !g.known[dep] {
			return chain
		}
		seen[dep] = true
		name = dep
	}
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the first cycle path in name order, or nil if there is none.
// The path starts and ends with the same name.
func (g *DependencyGraph) FindCycle() []string {
	done := make(map[string]bool)
	for _, start := range g.nodes {
		if done[start] {
			continue
		}
		onPath := make(map[string]int)
		path := []string{}
		node := start
		for {
			if idx, ok := onPath[node]; ok {
				return append(slices.Clone(path[idx:]), node)
			}
			if done[node] {
				break
			}
			onPath[node] = len(path)
			path = append(path, node)
			dep, ok := g.dependencies[node]
			if !ok {
				break
			}
			node = dep
		}
		for _, n := range path {
			done[n] = true
		}
	}
	return nil
}

// Dangling returns references to undefined tokens, sorted by token name.
// These resolve to a var(--name) fallback rather than failing.
func (g *DependencyGraph) Dangling() []Dangling {
	var result []Dangling
	for _, name := range g.nodes {
		dep, ok := g.dependencies[name]
		if ok && !g.known[dep] {
			result = append(result, Dangling{Token: name, Reference: dep})
		}
	}
	return result
}

// CycleError wraps a cycle path in token.ErrCircularReference.
func CycleError(cycle []string) error {
	return fmt.Errorf("%w: %v", token.ErrCircularReference, cycle)
}
