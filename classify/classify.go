/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify sorts Spectrum tokens into Tailwind theme categories.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenbuilder/token"
)

// Category is a Tailwind theme bucket.
type Category string

const (
	Colors        Category = "colors"
	Spacing       Category = "spacing"
	BorderRadius  Category = "borderRadius"
	FontSize      Category = "fontSize"
	FontWeight    Category = "fontWeight"
	FontFamily    Category = "fontFamily"
	LineHeight    Category = "lineHeight"
	LetterSpacing Category = "letterSpacing"
	Opacity       Category = "opacity"
	BoxShadow     Category = "boxShadow"
	Other         Category = "other"

	// Alias marks tokens that only point at other tokens. It has no theme bucket.
	Alias Category = "alias"
)

// Buckets lists the theme categories in emission order.
var Buckets = []Category{
	Colors,
	Spacing,
	BorderRadius,
	FontSize,
	FontWeight,
	FontFamily,
	LineHeight,
	LetterSpacing,
	Opacity,
	BoxShadow,
}

var schemaCategories = map[string]Category{
	"color":       Colors,
	"dimension":   Spacing,
	"font-family": FontFamily,
	"font-weight": FontWeight,
	"font-size":   FontSize,
	"line-height": LineHeight,
	"opacity":     Opacity,
	"alias":       Alias,
}

// Classify returns the category for a token.
// Name rules win over the schema table: some dimension tokens are radii or letter spacing.
func Classify(schema, name string) Category {
	if strings.Contains(name, "corner-radius") || strings.Contains(name, "radius") {
		return BorderRadius
	}
	if strings.Contains(name, "letter-spacing") {
		return LetterSpacing
	}
	if strings.Contains(name, "shadow") {
		return BoxShadow
	}
	if c, ok := schemaCategories[token.SchemaType(schema)]; ok {
		return c
	}
	return Other
}

// IsBucket reports whether c has a theme section.
func (c Category) IsBucket() bool {
	for _, b := range Buckets {
		if b == c {
			return true
		}
	}
	return false
}

// Title returns the section heading for c, e.g. "Border Radius".
func (c Category) Title() string {
	var words []string
	var current strings.Builder
	for _, r := range string(c) {
		if r >= 'A' && r <= 'Z' && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
