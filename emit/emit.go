/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit turns loaded Spectrum token files into Tailwind CSS v4 stylesheets.
package emit

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

// Default input files per emitter, relative to the token directory.
var (
	ColorFiles = []string{
		"color-palette.json",
		"semantic-color-palette.json",
		"color-aliases.json",
		"icons.json",
	}

	ThemeFiles = []string{
		"color-palette.json",
		"semantic-color-palette.json",
		"color-component.json",
		"color-aliases.json",
		"layout.json",
		"layout-component.json",
		"typography.json",
	}

	TypographyFiles = []string{
		"typography.json",
	}
)

// Emitter generates one family of CSS outputs from a token set.
type Emitter interface {
	// Name identifies the emitter on the command line, e.g. "colors".
	Name() string

	// Inputs lists the token files Emit reads.
	Inputs() []string

	// Emit generates the outputs. The set must contain every file in Inputs.
	Emit(set *load.Set) ([]Output, error)
}

// Output is one generated stylesheet.
type Output struct {
	// File is the output file name, e.g. "color-palette.css".
	File string

	// CSS is the stylesheet text. It always ends with a single newline.
	CSS []byte

	// Counts summarizes the emitted declarations for display.
	Counts []Count
}

// Count is a labelled number of declarations.
type Count struct {
	Label string
	N     int
}

// All returns every emitter, configured with the given input lists.
// Empty lists select the defaults.
func All(colors, theme, typography, shadows []string) []Emitter {
	return []Emitter{
		&Colors{Files: colors},
		&Theme{Files: theme},
		&Typography{Files: typography},
		&Shadows{Files: shadows},
	}
}

// Inputs returns the union of the emitters' inputs in first-seen order.
func Inputs(emitters ...Emitter) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range emitters {
		for _, name := range e.Inputs() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// CSSFileName maps a token file name to its stylesheet name.
func CSSFileName(tokenFile string) string {
	return strings.TrimSuffix(tokenFile, ".json") + ".css"
}

func orDefault(files, defaults []string) []string {
	if len(files) == 0 {
		return defaults
	}
	return files
}

// resolveValue resolves a token value and reports cycles with their location.
func resolveValue(file, name, value string, refs *resolver.References) (string, error) {
	resolved, err := resolver.Resolve(value, refs)
	if err != nil {
		return "", fmt.Errorf("%s: %s (%s): %w", file, name, refs.Variant(), err)
	}
	return resolved, nil
}

// referenceMaps builds one reference mapping per variant.
func referenceMaps(files []*token.File, variants ...token.Variant) map[token.Variant]*resolver.References {
	maps := make(map[token.Variant]*resolver.References, len(variants))
	for _, v := range variants {
		maps[v] = resolver.Build(files, v)
	}
	return maps
}
