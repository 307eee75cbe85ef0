/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"bennypowers.dev/tokenbuilder/classify"
	"bennypowers.dev/tokenbuilder/convert"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

// ThemeFile is the stylesheet Theme writes.
const ThemeFile = "spectrum-theme.css"

var themeHeader = []string{
	"/**",
	" * Adobe Spectrum Design Tokens",
	" * Converted to Tailwind CSS v4 Theme",
	" * Generated from @adobe/spectrum-tokens",
	" */",
	"",
}

// Theme aggregates all token files into a single Tailwind @theme block,
// grouped by category, followed by light and dark color scheme blocks.
type Theme struct {
	// Files overrides ThemeFiles.
	Files []string
}

func (t *Theme) Name() string { return "theme" }

func (t *Theme) Inputs() []string { return orDefault(t.Files, ThemeFiles) }

// themeTokens holds a token's raw value and where it came from, until
// it is resolved and converted at write time.
type themeTokens struct {
	file   map[string]string
	values *declarations
}

func newThemeTokens() *themeTokens {
	return &themeTokens{file: make(map[string]string), values: newDeclarations()}
}

func (tt *themeTokens) set(file, name, value string) {
	tt.file[name] = file
	tt.values.Set(name, value)
}

// render resolves and converts every value against refs.
func (tt *themeTokens) render(refs *resolver.References, conv func(string) string) (*declarations, error) {
	out := newDeclarations()
	for pair := tt.values.Oldest(); pair != nil; pair = pair.Next() {
		resolved, err := resolveValue(tt.file[pair.Key], pair.Key, pair.Value, refs)
		if err != nil {
			return nil, err
		}
		out.Set(pair.Key, conv(resolved))
	}
	return out, nil
}

func (t *Theme) Emit(set *load.Set) ([]Output, error) {
	files, err := set.Subset(t.Inputs()...)
	if err != nil {
		return nil, err
	}
	refs := referenceMaps(files, token.Light, token.Dark)

	buckets := make(map[classify.Category]*themeTokens, len(classify.Buckets))
	for _, c := range classify.Buckets {
		buckets[c] = newThemeTokens()
	}
	light, dark := newThemeTokens(), newThemeTokens()

	for _, file := range files {
		for name, rec := range file.All() {
			if rec.Deprecated {
				continue
			}

			switch v := rec.Value.(type) {
			case token.ColorSet:
				if value, ok := token.Extract(v.Light, ""); ok {
					light.set(file.Name, name, value)
				}
				if value, ok := token.Extract(v.Dark, ""); ok {
					dark.set(file.Name, name, value)
				}
				continue
			case token.ScaleSet:
				continue
			}

			if rec.Private || token.IsCompound(rec) {
				continue
			}
			category := classify.Classify(rec.Schema, name)
			if !category.IsBucket() {
				continue
			}
			if value, ok := token.Extract(rec, ""); ok {
				buckets[category].set(file.Name, name, value)
			}
		}
	}

	var s sheet
	s.line(themeHeader...)
	s.line("@theme {")
	counts := make([]Count, 0, len(classify.Buckets)+2)
	for _, c := range classify.Buckets {
		decls, err := buckets[c].render(refs[token.Light], categoryConverter(c))
		if err != nil {
			return nil, err
		}
		counts = append(counts, Count{Label: c.Title(), N: decls.Len()})
		if decls.Len() == 0 {
			continue
		}
		s.line("  /* " + c.Title() + " */")
		s.declare("  ", decls)
		s.line("")
	}
	s.line("}", "")

	lightDecls, err := light.render(refs[token.Light], convert.Color)
	if err != nil {
		return nil, err
	}
	darkDecls, err := dark.render(refs[token.Dark], convert.Color)
	if err != nil {
		return nil, err
	}

	for _, scheme := range []struct {
		name  string
		decls *declarations
	}{
		{"light", lightDecls},
		{"dark", darkDecls},
	} {
		if scheme.decls.Len() == 0 {
			continue
		}
		s.line("@media (prefers-color-scheme: "+scheme.name+") {", "  :root {")
		s.declare("    ", scheme.decls)
		s.line("  }", "}", "")
	}
	s.rule(`[data-theme="light"]`, "  ", lightDecls)
	s.line("")
	s.rule(`[data-theme="dark"]`, "  ", darkDecls)

	counts = append(counts,
		Count{Label: "light mode", N: lightDecls.Len()},
		Count{Label: "dark mode", N: darkDecls.Len()},
	)
	return []Output{{File: ThemeFile, CSS: s.bytes(), Counts: counts}}, nil
}

func categoryConverter(c classify.Category) func(string) string {
	switch c {
	case classify.Colors:
		return convert.Color
	case classify.Spacing, classify.BorderRadius, classify.FontSize, classify.LetterSpacing:
		return func(v string) string { return convert.Dimension(v, true) }
	case classify.FontWeight:
		return convert.FontWeight
	}
	return func(v string) string { return v }
}
