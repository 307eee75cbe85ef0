/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"strings"

	"bennypowers.dev/tokenbuilder/convert"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/token"
)

// TypographyFile is the stylesheet Typography writes.
const TypographyFile = "typography.css"

var scaleVariants = []token.Variant{token.Desktop, token.Mobile}

var typographySchemas = map[string]bool{
	"font-family": true,
	"font-size":   true,
	"font-weight": true,
	"font-style":  true,
	"dimension":   true,
	"text-align":  true,
	"alias":       true,
	"scale-set":   true,
}

// Typography writes desktop typography values on :root and a .mobile
// block holding only the values that differ on mobile.
type Typography struct {
	// Files overrides TypographyFiles.
	Files []string
}

func (t *Typography) Name() string { return "typography" }

func (t *Typography) Inputs() []string { return orDefault(t.Files, TypographyFiles) }

func (t *Typography) Emit(set *load.Set) ([]Output, error) {
	files, err := set.Subset(t.Inputs()...)
	if err != nil {
		return nil, err
	}
	refs := referenceMaps(files, scaleVariants...)

	desktop, mobile := newDeclarations(), newDeclarations()
	byScale := map[token.Variant]*declarations{token.Desktop: desktop, token.Mobile: mobile}

	for _, file := range files {
		for name, rec := range file.All() {
			if rec.Deprecated || !typographySchemas[rec.SchemaType()] {
				continue
			}
			for _, scale := range scaleVariants {
				value, ok := token.Extract(rec, scale)
				if !ok || value == "" {
					continue
				}
				resolved, err := resolveValue(file.Name, name, value, refs[scale])
				if err != nil {
					return nil, err
				}
				byScale[scale].Set(name, convertTypography(resolved, memberSchema(rec, scale)))
			}
		}
	}

	mobileOverrides := overrides(desktop, mobile)

	var s sheet
	s.rule(":root", "    ", desktop)
	s.line("")
	if mobileOverrides.Len() > 0 {
		s.rule(".mobile", "    ", mobileOverrides)
	}

	return []Output{{
		File: TypographyFile,
		CSS:  s.bytes(),
		Counts: []Count{
			{Label: "desktop", N: desktop.Len()},
			{Label: "mobile overrides", N: mobileOverrides.Len()},
		},
	}}, nil
}

// memberSchema returns the schema tag that describes the value for scale:
// the set member's own tag when it has one, else the token's.
func memberSchema(rec *token.Record, scale token.Variant) string {
	if set, ok := rec.Value.(token.ScaleSet); ok {
		if member := set.Get(scale); member != nil && member.Schema != "" {
			return member.SchemaType()
		}
	}
	return rec.SchemaType()
}

func convertTypography(value, schema string) string {
	if schema == "font-weight" {
		return convert.FontWeight(value)
	}
	if strings.HasSuffix(value, "px") {
		return convert.Dimension(value, true)
	}
	return value
}
