/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenbuilder.
package validate

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuilder/cmd/project"
	"bennypowers.dev/tokenbuilder/cmd/render"
	"bennypowers.dev/tokenbuilder/emit"
	"bennypowers.dev/tokenbuilder/internal/logger"
	"bennypowers.dev/tokenbuilder/resolver"
	"bennypowers.dev/tokenbuilder/token"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate Spectrum token files",
	Long: `Validate token files before generating CSS.

Errors: files that fail to load, reference cycles, and color tokens whose
resolved value is not a CSS color.
Warnings: references to undefined tokens (emitted as var() fallbacks) and
unknown schema types.`,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

// knownSchemas lists the Spectrum token types the pipeline understands.
var knownSchemas = map[string]bool{
	"alias":          true,
	"color":          true,
	"color-set":      true,
	"dimension":      true,
	"drop-shadow":    true,
	"font-family":    true,
	"font-size":      true,
	"font-style":     true,
	"font-weight":    true,
	"line-height":    true,
	"multiplier":     true,
	"opacity":        true,
	"scale-set":      true,
	"text-align":     true,
	"text-transform": true,
}

// Report collects validation findings.
type Report struct {
	Errors   []string
	Warnings []string
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	p, err := project.Open(cmd)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files = emit.Inputs(p.Emitters()...)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %d files in %s...\n", len(files), p.TokenDir)
	set, err := p.Loader().LoadSet(files...)
	if err != nil {
		return err
	}

	report := Validate(set.Files())
	for _, warning := range report.Warnings {
		logger.Warn("%s", warning)
	}
	for _, e := range report.Errors {
		logger.Info("error: %s", e)
	}

	switch {
	case len(report.Errors) > 0:
		return fmt.Errorf("validation failed: %d error(s), %d warning(s)", len(report.Errors), len(report.Warnings))
	case strict && len(report.Warnings) > 0:
		return fmt.Errorf("validation failed: %d warning(s) in strict mode", len(report.Warnings))
	}

	tokens := 0
	for _, f := range set.Files() {
		tokens += f.Len()
	}
	fmt.Fprintf(w, "%s %d tokens valid (%d warnings)\n", render.Check, tokens, len(report.Warnings))
	return nil
}

// Validate checks reference integrity for every variant, color values and
// schema types. Each finding is reported once.
func Validate(files []*token.File) *Report {
	report := &Report{}
	seen := make(map[string]bool)
	once := func(key string) bool {
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	}

	refsByVariant := make(map[token.Variant]*resolver.References)
	for _, v := range append(token.SchemeVariants, token.ScaleVariants...) {
		refs := resolver.Build(files, v)
		refsByVariant[v] = refs

		graph := resolver.BuildGraph(refs)
		if cycle := graph.FindCycle(); cycle != nil {
			if once("cycle:" + strings.Join(cycle, ">")) {
				report.errorf("%v (%s)", resolver.CycleError(cycle), v)
			}
		}
		for _, d := range graph.Dangling() {
			if once("dangling:" + d.Token + ">" + d.Reference) {
				report.warnf("%s references undefined token {%s}; it will be emitted as var(--%s)", d.Token, d.Reference, d.Reference)
			}
		}
	}

	for _, file := range files {
		for name, rec := range file.All() {
			tag := rec.SchemaType()
			if tag != "" && !knownSchemas[tag] && once("schema:"+tag) {
				report.warnf("%s: %s has unknown schema type %q", file.Name, name, tag)
			}
			if rec.Deprecated || !isColor(rec) {
				continue
			}
			for _, v := range token.SchemeVariants {
				value, ok := token.Extract(rec, v)
				if !ok {
					continue
				}
				resolved, err := resolver.Resolve(value, refsByVariant[v])
				if err != nil || strings.HasPrefix(resolved, "var(") {
					continue
				}
				if _, err := csscolorparser.Parse(resolved); err != nil && once("color:"+name+":"+resolved) {
					report.errorf("%s: %s (%s) is not a valid color: %q", file.Name, name, v, resolved)
				}
			}
		}
	}

	return report
}

func isColor(rec *token.Record) bool {
	switch rec.SchemaType() {
	case "color", "color-set":
		return true
	}
	return false
}
