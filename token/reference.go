/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
)

var (
	// referencePattern matches a value that is exactly one {token-name} reference.
	referencePattern = regexp.MustCompile(`^\{(.+)\}$`)

	// embeddedPattern matches {token-name} references anywhere in a value.
	embeddedPattern = regexp.MustCompile(`\{([^{}]+)\}`)
)

// ParseReference extracts the token name from a whole-value reference.
// Returns the name and true if value is exactly "{name}", empty string and false otherwise.
func ParseReference(value string) (string, bool) {
	matches := referencePattern.FindStringSubmatch(value)
	if len(matches) != 2 || matches[1] == "" {
		return "", false
	}
	return matches[1], true
}

// IsReference returns true if value is exactly one {name} reference.
func IsReference(value string) bool {
	_, ok := ParseReference(value)
	return ok
}

// ExtractAllRefs extracts all curly brace references from a string.
func ExtractAllRefs(value string) []string {
	matches := embeddedPattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}
