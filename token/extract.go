/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strconv"
)

// Extract returns the value of rec for the requested variant.
//
// Color sets fall back to light when the variant is absent or empty.
// Scale sets return the requested scale exactly; an empty variant means desktop.
// Plain scalars are stringified; compound (object or array) values are absent.
func Extract(rec *Record, variant Variant) (string, bool) {
	if rec == nil {
		return "", false
	}

	switch v := rec.Value.(type) {
	case Plain:
		return Stringify(v.Raw)
	case ColorSet:
		if member := v.Get(variant); member != nil {
			return Extract(member, "")
		}
		if v.Light != nil {
			return Extract(v.Light, "")
		}
		return "", false
	case ScaleSet:
		if variant == "" {
			variant = Desktop
		}
		if member := v.Get(variant); member != nil {
			return Extract(member, "")
		}
		return "", false
	case nil:
		return "", false
	default:
		panic("token: unhandled value type")
	}
}

// Stringify renders a scalar JSON value the way the token sources print it.
// Numbers use the shortest decimal form that round-trips ("0.5", "16").
func Stringify(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// IsCompound reports whether rec holds an object or array value.
func IsCompound(rec *Record) bool {
	p, ok := rec.Value.(Plain)
	if !ok {
		return false
	}
	switch p.Raw.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
