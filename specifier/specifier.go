/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier locates token directories from npm package specifiers
// or local paths.
package specifier

import (
	"regexp"
	"strings"
)

// DefaultTokens is the token directory of the @adobe/spectrum-tokens package.
const DefaultTokens = "npm:@adobe/spectrum-tokens/src"

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local path.
	KindLocal Kind = iota

	// KindNPM is an npm package specifier.
	KindNPM
)

func (k Kind) String() string {
	if k == KindNPM {
		return "npm"
	}
	return "local"
}

// Specifier represents a parsed token directory specifier.
type Specifier struct {
	Kind Kind

	// Package is the package name (e.g., "@adobe/spectrum-tokens").
	Package string

	// File is the path within the package, or the local path.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") {
		if matches := npmPattern.FindStringSubmatch(spec); len(matches) == 3 {
			return &Specifier{
				Kind:    KindNPM,
				Package: matches[1],
				File:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}
		}
	}
	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsPackageSpecifier returns true if the string is a valid npm specifier.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind == KindNPM
}
