/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenbuilder/emit"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	staleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)

	// Check and Cross are the status marks for summaries.
	Check = okStyle.Render("✓")
	Cross = staleStyle.Render("✗")
)

// Row holds computed display values for a single token.
type Row struct {
	Name               string   `json:"name"`               // CSS variable name
	File               string   `json:"file"`               // Token file the token came from
	Category           string   `json:"category"`           // Theme category title, e.g. "Border Radius"
	Schema             string   `json:"schema"`             // Schema tag, e.g. "color-set"
	Value              string   `json:"value"`              // Display value for the selected variant
	RefChain           []string `json:"refChain,omitempty"` // Resolution chain as CSS variable names
	IsColor            bool     `json:"-"`
	Deprecated         bool     `json:"deprecated,omitempty"`
	DeprecationMessage string   `json:"deprecationMessage,omitempty"`
}

// ColumnWidths calculates the max width needed for the name and category columns.
func ColumnWidths(rows []Row) (name, category int) {
	name, category = 4, 8
	for _, r := range rows {
		name = max(name, len(r.Name))
		category = max(category, len(r.Category))
	}
	return
}

// ParseColor parses a CSS color value. Values that are not colors, such as
// var() fallbacks or dimensions, return false.
func ParseColor(value string) (colorful.Color, bool) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped(), true
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value,
// or "" when the value is not a color.
func ColorSwatch(value string) string {
	c, ok := ParseColor(value)
	if !ok {
		return ""
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table.
func Table(w io.Writer, rows []Row) error {
	nameW, catW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		refChain := ""
		if len(r.RefChain) > 1 {
			refChain = dimStyle.Render(" ← " + strings.Join(r.RefChain[1:], " ← "))
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, catW, r.Category, swatch, r.Value, refChain); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by category.
func Markdown(w io.Writer, rows []Row) error {
	var order []string
	byCategory := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := byCategory[r.Category]; !ok {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	for i, category := range order {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s\n\n", category)
		fmt.Fprintln(w, "| Name | Value | Reference |")
		fmt.Fprintln(w, "|------|-------|-----------|")
		for _, r := range byCategory[category] {
			ref := ""
			if len(r.RefChain) > 1 {
				ref = strings.Join(r.RefChain[1:], " → ")
			}
			fmt.Fprintf(w, "| `%s` | `%s` | %s |\n", r.Name, r.Value, ref)
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// CSS renders rows as CSS custom properties.
func CSS(w io.Writer, rows []Row) error {
	fmt.Fprintln(w, ":root {")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s: %s;\n", r.Name, r.Value)
	}
	fmt.Fprintln(w, "}")
	return nil
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		fmt.Fprintln(w, r.Name)
	}
	return nil
}

// Summary prints the file name and declaration counts of a generated output.
func Summary(w io.Writer, out emit.Output) {
	fmt.Fprintf(w, "%s %s\n", Check, out.File)
	for _, c := range out.Counts {
		fmt.Fprintf(w, "  - %s: %d\n", c.Label, c.N)
	}
}

// CheckResults prints the freshness of each output, with a diff for stale files.
func CheckResults(w io.Writer, outDir string, outputs []emit.Output, stale []emit.Stale) {
	byPath := make(map[string]emit.Stale, len(stale))
	for _, s := range stale {
		byPath[s.Path] = s
	}
	for _, out := range outputs {
		s, ok := byPath[filepath.Join(outDir, out.File)]
		switch {
		case !ok:
			fmt.Fprintf(w, "%s %s is up to date\n", Check, out.File)
		case s.Missing:
			fmt.Fprintf(w, "%s %s is missing\n", Cross, out.File)
		default:
			fmt.Fprintf(w, "%s %s is out of date\n", Cross, out.File)
			for _, line := range strings.SplitAfter(s.Diff, "\n") {
				if line != "" {
					fmt.Fprint(w, "    "+line)
				}
			}
		}
	}
}
