/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves {token-name} references against a flat reference mapping.
package resolver

import (
	"maps"
	"slices"

	"bennypowers.dev/tokenbuilder/token"
)

// References is an immutable mapping from token name to its unresolved value
// for one variant. It is built once per run and passed to Resolve.
type References struct {
	variant token.Variant
	values  map[string]string
}

// NewReferences copies values into a new mapping.
func NewReferences(variant token.Variant, values map[string]string) *References {
	return &References{variant: variant, values: maps.Clone(values)}
}

// Build collects every non-deprecated token's value for variant across files.
// Sets lacking the variant contribute their default member (light or desktop).
// Later files override earlier ones.
func Build(files []*token.File, variant token.Variant) *References {
	values := make(map[string]string)
	for _, f := range files {
		for name, rec := range f.All() {
			if rec.Deprecated {
				continue
			}
			value, ok := token.Extract(rec, variant)
			if !ok {
				value, ok = token.Extract(rec, "")
			}
			if ok && value != "" {
				values[name] = value
			}
		}
	}
	return &References{variant: variant, values: values}
}

// Variant returns the variant the mapping was built for.
func (r *References) Variant() token.Variant {
	return r.variant
}

// Lookup returns the raw value for name.
func (r *References) Lookup(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of entries.
func (r *References) Len() int {
	return len(r.values)
}

// Names returns all token names in sorted order.
func (r *References) Names() []string {
	return slices.Sorted(maps.Keys(r.values))
}
