/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"errors"
	"strings"

	"bennypowers.dev/tokenbuilder/convert"
	"bennypowers.dev/tokenbuilder/internal/logger"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

// ShadowsFile is the stylesheet Shadows writes.
const ShadowsFile = "shadows.css"

// Shadows writes drop-shadow tokens as filter: drop-shadow() ready
// layer lists. Layer colors that change with the color scheme are
// written as light-dark().
type Shadows struct {
	// Files overrides ThemeFiles.
	Files []string
}

func (s *Shadows) Name() string { return "shadows" }

func (s *Shadows) Inputs() []string { return orDefault(s.Files, ThemeFiles) }

// errSpread marks layers that drop-shadow() cannot express.
var errSpread = errors.New("non-zero spread")

func (s *Shadows) Emit(set *load.Set) ([]Output, error) {
	files, err := set.Subset(s.Inputs()...)
	if err != nil {
		return nil, err
	}
	refs := referenceMaps(files, token.Light, token.Dark)

	decls := newDeclarations()
	skipped := 0
	for _, file := range files {
		for name, rec := range file.All() {
			if rec.Deprecated {
				continue
			}
			layers, ok := shadowLayers(rec)
			if !ok {
				continue
			}
			css, err := formatLayers(file.Name, name, layers, refs[token.Light], refs[token.Dark])
			if errors.Is(err, errSpread) {
				logger.Warn("%s: %s has a non-zero spread, which drop-shadow() cannot express; skipping", file.Name, name)
				skipped++
				continue
			}
			if err != nil {
				return nil, err
			}
			decls.Set(name, css)
		}
	}

	var sh sheet
	sh.rule(":root", "    ", decls)

	return []Output{{
		File: ShadowsFile,
		CSS:  sh.bytes(),
		Counts: []Count{
			{Label: "shadows", N: decls.Len()},
			{Label: "skipped", N: skipped},
		},
	}}, nil
}

// shadowLayers returns the layers of a drop-shadow value: a layer object
// or an array of layer objects, each with at least x, y and blur.
func shadowLayers(rec *token.Record) ([]map[string]any, bool) {
	plain, ok := rec.Value.(token.Plain)
	if !ok {
		return nil, false
	}
	var raw []any
	switch v := plain.Raw.(type) {
	case map[string]any:
		raw = []any{v}
	case []any:
		raw = v
	default:
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}

	layers := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		layer, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		for _, key := range []string{"x", "y", "blur"} {
			if _, ok := layer[key]; !ok {
				return nil, false
			}
		}
		layers = append(layers, layer)
	}
	return layers, true
}

func formatLayers(file, name string, layers []map[string]any, light, dark *resolver.References) (string, error) {
	parts := make([]string, 0, len(layers))
	for _, layer := range layers {
		if spread, ok := token.Stringify(layer["spread"]); ok && spread != "" && convert.Dimension(spread, true) != "0" {
			return "", errSpread
		}

		fields := make([]string, 0, 4)
		for _, key := range []string{"x", "y", "blur"} {
			raw, _ := token.Stringify(layer[key])
			value, err := resolveValue(file, name, raw, light)
			if err != nil {
				return "", err
			}
			fields = append(fields, value)
		}

		color, err := layerColor(file, name, layer["color"], light, dark)
		if err != nil {
			return "", err
		}
		if color != "" {
			fields = append(fields, color)
		}
		parts = append(parts, strings.Join(fields, " "))
	}
	return strings.Join(parts, ", "), nil
}

// layerColor returns a layer's color, as light-dark(l, d) when the
// schemes disagree. The color may be a string, a reference, or a
// record with its own value or color sets.
func layerColor(file, name string, raw any, light, dark *resolver.References) (string, error) {
	lightRaw, darkRaw := schemeValues(raw)
	if lightRaw == "" {
		return "", nil
	}
	if darkRaw == "" {
		darkRaw = lightRaw
	}

	l, err := resolveValue(file, name, lightRaw, light)
	if err != nil {
		return "", err
	}
	d, err := resolveValue(file, name, darkRaw, dark)
	if err != nil {
		return "", err
	}
	l, d = convert.Color(l), convert.Color(d)
	if l == d {
		return l, nil
	}
	return "light-dark(" + l + ", " + d + ")", nil
}

func schemeValues(raw any) (string, string) {
	switch v := raw.(type) {
	case map[string]any:
		if sets, ok := v["sets"].(map[string]any); ok {
			l, _ := schemeValues(sets[string(token.Light)])
			d, _ := schemeValues(sets[string(token.Dark)])
			return l, d
		}
		return schemeValues(v["value"])
	default:
		s, _ := token.Stringify(v)
		return s, ""
	}
}
