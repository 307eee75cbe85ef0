/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides value converters from Spectrum token values to CSS.
package convert

import (
	"regexp"
	"strconv"
	"strings"
)

// RemBase is the root font size, in pixels, that one rem represents.
const RemBase = 16

var (
	pxPattern   = regexp.MustCompile(`^(-?[\d.]+)px$`)
	rgbaPattern = regexp.MustCompile(`^rgba\((\d+),\s*(\d+),\s*(\d+),\s*([\d.]+)\)$`)
)

var fontWeights = map[string]string{
	"thin":        "100",
	"extra-light": "200",
	"light":       "300",
	"regular":     "400",
	"normal":      "400",
	"medium":      "500",
	"semi-bold":   "600",
	"bold":        "700",
	"extra-bold":  "800",
	"black":       "900",
	"heavy":       "900",
}

// Dimension converts a pixel value to rem.
// "16px" becomes "1rem" and any zero pixel value becomes "0".
// Values without a px unit, and all values when toRem is false, pass through unchanged.
func Dimension(value string, toRem bool) string {
	if !toRem {
		return value
	}
	m := pxPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	px, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return value
	}
	if px == 0 {
		return "0"
	}
	return PxToRem(px)
}

// PxToRem formats a pixel count as rem, e.g. 24 → "1.5rem".
func PxToRem(px float64) string {
	return strconv.FormatFloat(px/RemBase, 'f', -1, 64) + "rem"
}

// Color rewrites rgba(r, g, b, a) as rgb(r, g, b, a).
// Any other color form passes through unchanged.
func Color(value string) string {
	m := rgbaPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return "rgb(" + strings.Join(m[1:], ", ") + ")"
}

// FontWeight maps a font weight keyword to its numeric weight.
// Matching is case-insensitive; unknown keywords pass through unchanged.
func FontWeight(value string) string {
	if w, ok := fontWeights[strings.ToLower(value)]; ok {
		return w
	}
	return value
}

// TokenName returns the CSS name for a token name. Names are used as-is.
func TokenName(name string) string {
	return name
}
