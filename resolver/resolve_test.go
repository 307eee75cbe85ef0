/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

func refs(values map[string]string) *resolver.References {
	return resolver.NewReferences(token.Light, values)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		values   map[string]string
		expected string
	}{
		{"direct", "{foo}", map[string]string{"foo": "10px"}, "10px"},
		{"chain", "{foo}", map[string]string{"foo": "{bar}", "bar": "4px"}, "4px"},
		{"missing", "{missing}", map[string]string{}, "var(--missing)"},
		{"missing mid-chain", "{foo}", map[string]string{"foo": "{gone}"}, "var(--gone)"},
		{"empty value is missing", "{foo}", map[string]string{"foo": ""}, "var(--foo)"},
		{"literal passes through", "#fff", map[string]string{"fff": "x"}, "#fff"},
		{"embedded reference passes through", "1px solid {gray-300}", map[string]string{"gray-300": "#ccc"}, "1px solid {gray-300}"},
		{"self reference to other name", "{a}", map[string]string{"a": "{b}", "b": "{c}", "c": "red"}, "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(tt.value, refs(tt.values))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestResolve_Cycle(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"self", map[string]string{"a": "{a}"}},
		{"pair", map[string]string{"a": "{b}", "b": "{a}"}},
		{"tail loop", map[string]string{"a": "{b}", "b": "{c}", "c": "{b}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve("{a}", refs(tt.values))
			if !errors.Is(err, token.ErrCircularReference) {
				t.Fatalf("expected ErrCircularReference, got %v", err)
			}
		})
	}
}

func TestMustResolve_CycleFallsBack(t *testing.T) {
	got := resolver.MustResolve("{a}", refs(map[string]string{"a": "{b}", "b": "{a}"}))
	if got != "var(--a)" {
		t.Errorf("MustResolve = %q, want var(--a)", got)
	}
}

// Any acyclic chain of references ends at its literal.
func TestResolve_ChainProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.IntRange(1, 32).Draw(t, "depth")
		literal := rapid.StringMatching(`[0-9]{1,3}px`).Draw(t, "literal")

		values := make(map[string]string, depth)
		for i := 0; i < depth-1; i++ {
			values[fmt.Sprintf("t%d", i)] = fmt.Sprintf("{t%d}", i+1)
		}
		values[fmt.Sprintf("t%d", depth-1)] = literal

		got, err := resolver.Resolve("{t0}", refs(values))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != literal {
			t.Fatalf("Resolve = %q, want %q", got, literal)
		}
	})
}

func TestBuild(t *testing.T) {
	palette, err := token.DecodeFile("palette.json", []byte(`{
		"blue-800": {"$schema": "color-set.json", "sets": {
			"light": {"value": "#00f"}, "dark": {"value": "#000080"}
		}},
		"old-blue": {"$schema": "color.json", "value": "#11f", "deprecated": true},
		"title-size": {"$schema": "scale-set.json", "sets": {
			"desktop": {"value": "24px"}, "mobile": {"value": "28px"}
		}},
		"shadow": {"$schema": "drop-shadow.json", "value": {"x": "0px"}},
		"gap": {"$schema": "dimension.json", "value": 4}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	t.Run("light", func(t *testing.T) {
		r := resolver.Build([]*token.File{palette}, token.Light)
		assertLookup(t, r, "blue-800", "#00f")
		assertLookup(t, r, "title-size", "24px")
		assertLookup(t, r, "gap", "4")
		assertMissing(t, r, "old-blue")
		assertMissing(t, r, "shadow")
		if r.Variant() != token.Light {
			t.Errorf("Variant() = %q", r.Variant())
		}
	})

	t.Run("dark", func(t *testing.T) {
		r := resolver.Build([]*token.File{palette}, token.Dark)
		assertLookup(t, r, "blue-800", "#000080")
		assertLookup(t, r, "title-size", "24px")
	})

	t.Run("mobile", func(t *testing.T) {
		r := resolver.Build([]*token.File{palette}, token.Mobile)
		assertLookup(t, r, "title-size", "28px")
		assertLookup(t, r, "blue-800", "#00f")
	})

	t.Run("later files override", func(t *testing.T) {
		override := token.NewFile("override.json")
		override.Set("gap", &token.Record{Value: token.Plain{Raw: "8px"}})
		r := resolver.Build([]*token.File{palette, override}, token.Light)
		assertLookup(t, r, "gap", "8px")
	})
}

func assertLookup(t *testing.T, r *resolver.References, name, want string) {
	t.Helper()
	got, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("expected %s in references", name)
	}
	if got != want {
		t.Errorf("Lookup(%s) = %q, want %q", name, got, want)
	}
}

func assertMissing(t *testing.T, r *resolver.References, name string) {
	t.Helper()
	if _, ok := r.Lookup(name); ok {
		t.Errorf("expected %s to be absent", name)
	}
}
