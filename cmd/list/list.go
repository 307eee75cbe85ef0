/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenbuilder.
package list

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuilder/classify"
	"bennypowers.dev/tokenbuilder/cmd/project"
	"bennypowers.dev/tokenbuilder/cmd/render"
	"bennypowers.dev/tokenbuilder/emit"
	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens with their resolved values",
	Long: `List tokens from the Spectrum token directory with the value they resolve to
for a color scheme or scale, their theme category, and the chain of references
that produced the value.

Without arguments every file read by the generators is listed.`,
	RunE: run,
}

func init() {
	Cmd.Flags().String("category", "", "Filter by theme category (e.g. colors, borderRadius)")
	Cmd.Flags().String("variant", "light", "Variant to show: light, dark, darkest, wireframe, desktop, mobile")
	Cmd.Flags().String("match", "", "Only show tokens whose name or value matches this regular expression")
	Cmd.Flags().Bool("raw", false, "Show unresolved values")
	Cmd.Flags().Bool("deprecated", false, "Include deprecated tokens")
	Cmd.Flags().String("format", "table", "Output format: table, json, css, markdown, names")
}

// Options selects and shapes the listed tokens.
type Options struct {
	Category   string
	Variant    token.Variant
	Match      *regexp.Regexp
	Raw        bool
	Deprecated bool
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Open(cmd)
	if err != nil {
		return err
	}

	variantFlag, _ := cmd.Flags().GetString("variant")
	variant, err := token.ParseVariant(variantFlag)
	if err != nil {
		return err
	}
	opts := Options{Variant: variant}
	opts.Category, _ = cmd.Flags().GetString("category")
	opts.Raw, _ = cmd.Flags().GetBool("raw")
	opts.Deprecated, _ = cmd.Flags().GetBool("deprecated")
	if match, _ := cmd.Flags().GetString("match"); match != "" {
		if opts.Match, err = regexp.Compile(match); err != nil {
			return fmt.Errorf("invalid --match pattern: %w", err)
		}
	}
	format, _ := cmd.Flags().GetString("format")

	files := args
	if len(files) == 0 {
		files = emit.Inputs(p.Emitters()...)
	}
	set, err := p.Loader().LoadSet(files...)
	if err != nil {
		return err
	}

	return Render(cmd.OutOrStdout(), format, Rows(set.Files(), opts))
}

// Render writes rows in the given format.
func Render(w io.Writer, format string, rows []render.Row) error {
	switch format {
	case "json":
		return render.JSON(w, rows)
	case "css":
		return render.CSS(w, rows)
	case "markdown", "md":
		return render.Markdown(w, rows)
	case "names":
		return render.Names(w, rows)
	case "table", "":
		return render.Table(w, rows)
	}
	return fmt.Errorf("unknown format %q", format)
}

// Rows computes display rows for the tokens in files. Values are resolved
// against the selected variant's reference mapping built from all files.
func Rows(files []*token.File, opts Options) []render.Row {
	refs := resolver.Build(files, opts.Variant)
	graph := resolver.BuildGraph(refs)

	var rows []render.Row
	for _, file := range files {
		for name, rec := range file.All() {
			if rec.Deprecated && !opts.Deprecated {
				continue
			}
			category := classify.Classify(rec.Schema, name)
			if opts.Category != "" && !strings.EqualFold(string(category), opts.Category) {
				continue
			}

			value, ok := token.Extract(rec, opts.Variant)
			if !ok {
				continue
			}
			row := render.Row{
				Name:               token.CSSVariableName(name),
				File:               file.Name,
				Category:           category.Title(),
				Schema:             rec.SchemaType(),
				Value:              value,
				Deprecated:         rec.Deprecated,
				DeprecationMessage: rec.DeprecatedComment,
			}
			if !opts.Raw {
				row.Value = resolver.MustResolve(value, refs)
				if ref, isRef := token.ParseReference(value); isRef {
					chain := append([]string{name}, graph.Chain(ref)...)
					row.RefChain = make([]string, len(chain))
					for i, n := range chain {
						row.RefChain[i] = token.CSSVariableName(n)
					}
				}
			}
			_, row.IsColor = render.ParseColor(row.Value)

			if opts.Match != nil && !opts.Match.MatchString(name) && !opts.Match.MatchString(row.Value) {
				continue
			}
			rows = append(rows, row)
		}
	}
	return rows
}
