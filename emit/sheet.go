/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"bennypowers.dev/tokenbuilder/convert"
	"bennypowers.dev/tokenbuilder/token"
)

// declarations maps token names to CSS values in first-insertion order.
// Setting an existing name updates its value in place.
type declarations = orderedmap.OrderedMap[string, string]

func newDeclarations() *declarations {
	return orderedmap.New[string, string]()
}

// overrides returns the entries of variant whose value differs from base.
func overrides(base, variant *declarations) *declarations {
	out := newDeclarations()
	for pair := variant.Oldest(); pair != nil; pair = pair.Next() {
		if v, ok := base.Get(pair.Key); !ok || v != pair.Value {
			out.Set(pair.Key, pair.Value)
		}
	}
	return out
}

// sheet accumulates stylesheet lines.
type sheet struct {
	lines []string
}

func (s *sheet) line(l ...string) {
	s.lines = append(s.lines, l...)
}

func (s *sheet) declare(indent string, decls *declarations) {
	for pair := decls.Oldest(); pair != nil; pair = pair.Next() {
		s.lines = append(s.lines, indent+token.CSSVariableName(convert.TokenName(pair.Key))+": "+pair.Value+";")
	}
}

// rule writes selector { decls }.
func (s *sheet) rule(selector, indent string, decls *declarations) {
	s.line(selector + " {")
	s.declare(indent, decls)
	s.line("}")
}

// bytes joins the lines and terminates the text with a newline.
func (s *sheet) bytes() []byte {
	text := strings.Join(s.lines, "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return []byte(text)
}
