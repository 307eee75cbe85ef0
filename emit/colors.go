/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"bennypowers.dev/tokenbuilder/convert"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/token"
)

var colorVariants = []token.Variant{token.Light, token.Dark, token.Wireframe}

// Colors writes one stylesheet per color token file: light values on
// :root, and .dark and .wireframe blocks holding only the values that
// differ from light.
type Colors struct {
	// Files overrides ColorFiles.
	Files []string
}

func (c *Colors) Name() string { return "colors" }

func (c *Colors) Inputs() []string { return orDefault(c.Files, ColorFiles) }

func (c *Colors) Emit(set *load.Set) ([]Output, error) {
	files, err := set.Subset(c.Inputs()...)
	if err != nil {
		return nil, err
	}
	refs := referenceMaps(files, colorVariants...)

	outputs := make([]Output, 0, len(files))
	for _, file := range files {
		byVariant := map[token.Variant]*declarations{
			token.Light:     newDeclarations(),
			token.Dark:      newDeclarations(),
			token.Wireframe: newDeclarations(),
		}

		for name, rec := range file.All() {
			if rec.Deprecated || !isColorToken(rec) {
				continue
			}
			for _, v := range colorVariants {
				value, ok := token.Extract(rec, v)
				if !ok || value == "" {
					continue
				}
				resolved, err := resolveValue(file.Name, name, value, refs[v])
				if err != nil {
					return nil, err
				}
				byVariant[v].Set(name, convert.Color(resolved))
			}
		}

		light := byVariant[token.Light]
		dark := overrides(light, byVariant[token.Dark])
		wireframe := overrides(light, byVariant[token.Wireframe])

		var s sheet
		s.rule(":root", "    ", light)
		s.line("")
		if dark.Len() > 0 {
			s.rule(".dark", "    ", dark)
			s.line("")
		}
		if wireframe.Len() > 0 {
			s.rule(".wireframe", "    ", wireframe)
		}

		outputs = append(outputs, Output{
			File: CSSFileName(file.Name),
			CSS:  s.bytes(),
			Counts: []Count{
				{Label: "light", N: light.Len()},
				{Label: "dark", N: dark.Len()},
				{Label: "wireframe", N: wireframe.Len()},
			},
		})
	}
	return outputs, nil
}

func isColorToken(rec *token.Record) bool {
	switch rec.SchemaType() {
	case "color", "alias", "color-set":
		return true
	}
	return false
}
