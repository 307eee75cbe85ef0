/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

func TestDependencyGraph_NoCycle(t *testing.T) {
	graph := resolver.BuildGraph(refs(map[string]string{
		"a": "1px",
		"b": "{a}",
		"c": "{b}",
	}))

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}

	dep, ok := graph.Dependency("c")
	if !ok || dep != "b" {
		t.Errorf("Dependency(c) = %q, %v; want b, true", dep, ok)
	}
	if _, ok := graph.Dependency("a"); ok {
		t.Error("literal token should have no dependency")
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	graph := resolver.BuildGraph(refs(map[string]string{
		"a": "{c}",
		"b": "{a}",
		"c": "{b}",
		"d": "{a}",
	}))

	if !graph.HasCycle() {
		t.Fatal("expected cycle")
	}

	cycle := graph.FindCycle()
	want := []string{"a", "c", "b", "a"}
	if !slices.Equal(cycle, want) {
		t.Errorf("FindCycle() = %v, want %v", cycle, want)
	}

	if err := resolver.CycleError(cycle); !errors.Is(err, token.ErrCircularReference) {
		t.Errorf("CycleError should wrap ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_Chain(t *testing.T) {
	graph := resolver.BuildGraph(refs(map[string]string{
		"link-color": "{accent}",
		"accent":     "{blue-800}",
		"blue-800":   "#00f",
		"broken":     "{nowhere}",
		"loop":       "{loop}",
	}))

	tests := []struct {
		name string
		want []string
	}{
		{"link-color", []string{"link-color", "accent", "blue-800"}},
		{"blue-800", []string{"blue-800"}},
		{"broken", []string{"broken", "nowhere"}},
		{"loop", []string{"loop"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := graph.Chain(tt.name); !slices.Equal(got, tt.want) {
				t.Errorf("Chain(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDependencyGraph_Dangling(t *testing.T) {
	graph := resolver.BuildGraph(refs(map[string]string{
		"b": "{missing-b}",
		"a": "{missing-a}",
		"c": "{a}",
	}))

	dangling := graph.Dangling()
	if len(dangling) != 2 {
		t.Fatalf("expected 2 dangling references, got %d", len(dangling))
	}
	if dangling[0].Token != "a" || dangling[0].Reference != "missing-a" {
		t.Errorf("unexpected first dangling reference: %+v", dangling[0])
	}
	if dangling[1].Token != "b" || dangling[1].Reference != "missing-b" {
		t.Errorf("unexpected second dangling reference: %+v", dangling[1])
	}
}
