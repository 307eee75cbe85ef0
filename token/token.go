/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides Spectrum design token types.
package token

import (
	"path"
	"strings"
)

// Record represents one named design decision in a Spectrum token file.
// See: https://github.com/adobe/spectrum-tokens
type Record struct {
	// Schema is the schema URL identifying the value kind
	// (e.g., ".../schemas/token-types/color.json").
	Schema string

	// UUID uniquely identifies the token.
	UUID string

	// Private tokens are implementation details and never reach theme categories.
	Private bool

	// Deprecated indicates the token should no longer be used.
	Deprecated bool

	// DeprecatedComment provides context for deprecated tokens.
	DeprecatedComment string

	// Component names the component a token belongs to, if any.
	Component string

	// Value is the token's direct value or its per-mode sets.
	Value Value
}

// Value is the tagged variant of a token's value: Plain, ColorSet or ScaleSet.
type Value interface {
	isValue()
}

// Plain is a direct value: a string, a number, a bool, or a compound
// object or array (e.g., drop-shadow layers).
type Plain struct {
	Raw any
}

// ColorSet holds per color scheme records. Absent schemes are nil.
type ColorSet struct {
	Light     *Record
	Dark      *Record
	Darkest   *Record
	Wireframe *Record
}

// ScaleSet holds per layout scale records. Absent scales are nil.
type ScaleSet struct {
	Desktop *Record
	Mobile  *Record
}

func (Plain) isValue()    {}
func (ColorSet) isValue() {}
func (ScaleSet) isValue() {}

// Get returns the record for a scheme variant, or nil.
func (s ColorSet) Get(v Variant) *Record {
	switch v {
	case Light:
		return s.Light
	case Dark:
		return s.Dark
	case Darkest:
		return s.Darkest
	case Wireframe:
		return s.Wireframe
	}
	return nil
}

// Get returns the record for a scale variant, or nil.
func (s ScaleSet) Get(v Variant) *Record {
	switch v {
	case Desktop:
		return s.Desktop
	case Mobile:
		return s.Mobile
	}
	return nil
}

// SchemaType returns the record's schema tag, e.g. "color" or "scale-set".
func (r *Record) SchemaType() string {
	return SchemaType(r.Schema)
}

// HasSets reports whether the record's value varies by mode.
func (r *Record) HasSets() bool {
	switch r.Value.(type) {
	case ColorSet, ScaleSet:
		return true
	}
	return false
}

// SchemaType strips a schema URL down to its tag:
// "https://opensource.adobe.com/spectrum-tokens/schemas/token-types/color.json" → "color".
func SchemaType(schemaURL string) string {
	if schemaURL == "" {
		return ""
	}
	return strings.TrimSuffix(path.Base(schemaURL), ".json")
}

// CSSVariableName returns the CSS custom property name for a token name.
func CSSVariableName(name string) string {
	return "--" + name
}
