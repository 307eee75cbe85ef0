/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbuilder/token"
)

// Resolve follows a "{name}" reference through refs until it reaches a
// literal value. Values that are not exactly one reference are returned
// unchanged. A reference to a missing (or empty) token becomes "var(--name)".
// A reference cycle is an error wrapping token.ErrCircularReference.
func Resolve(value string, refs *References) (string, error) {
	return resolve(value, refs, nil, nil)
}

// MustResolve is like Resolve but degrades a cycle to the CSS variable fallback
// for the first name in the cycle. It is meant for display, never for emission.
func MustResolve(value string, refs *References) string {
	resolved, err := Resolve(value, refs)
	if err != nil {
		name, _ := token.ParseReference(value)
		return fallback(name)
	}
	return resolved
}

func resolve(value string, refs *References, visited map[string]bool, chain []string) (string, error) {
	name, ok := token.ParseReference(value)
	if !ok {
		return value, nil
	}

	if visited[name] {
		return "", fmt.Errorf("%w: %s", token.ErrCircularReference, strings.Join(append(chain, name), " -> "))
	}

	next, found := refs.Lookup(name)
	if !found || next == "" {
		return fallback(name), nil
	}

	if visited == nil {
		visited = make(map[string]bool)
	}
	visited[name] = true
	return resolve(next, refs, visited, append(chain, name))
}

func fallback(name string) string {
	return "var(" + token.CSSVariableName(name) + ")"
}
