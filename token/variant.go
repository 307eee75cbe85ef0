/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// Variant names a mode in a token's sets mapping.
type Variant string

const (
	// Light is the default color scheme.
	Light Variant = "light"
	// Dark is the dark color scheme.
	Dark Variant = "dark"
	// Darkest is the darkest color scheme.
	Darkest Variant = "darkest"
	// Wireframe is the wireframe color scheme.
	Wireframe Variant = "wireframe"
	// Desktop is the default layout scale.
	Desktop Variant = "desktop"
	// Mobile is the mobile layout scale.
	Mobile Variant = "mobile"
)

// SchemeVariants lists color scheme variants in emission order.
var SchemeVariants = []Variant{Light, Dark, Darkest, Wireframe}

// ScaleVariants lists layout scale variants in emission order.
var ScaleVariants = []Variant{Desktop, Mobile}

// IsScheme reports whether v is a color scheme variant.
func (v Variant) IsScheme() bool {
	switch v {
	case Light, Dark, Darkest, Wireframe:
		return true
	}
	return false
}

// IsScale reports whether v is a layout scale variant.
func (v Variant) IsScale() bool {
	return v == Desktop || v == Mobile
}

// Default returns the variant that v falls back to.
func (v Variant) Default() Variant {
	if v.IsScale() {
		return Desktop
	}
	return Light
}

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if v.IsScheme() || v.IsScale() {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
