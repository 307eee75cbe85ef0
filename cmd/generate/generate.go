/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the stylesheet generation commands for tokenbuilder.
package generate

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuilder/cmd/project"
	"bennypowers.dev/tokenbuilder/emit"
)

// ColorsCmd writes one palette stylesheet per color file.
var ColorsCmd = newCmd("colors", "Generate color palette stylesheets",
	`Generate one stylesheet per color token file. Light values are declared on
:root, dark and wireframe values on .dark and .wireframe when they differ.`)

// ThemeCmd writes the Tailwind v4 theme stylesheet.
var ThemeCmd = newCmd("theme", "Generate the Tailwind v4 theme stylesheet",
	`Generate spectrum-theme.css: an @theme block grouped by category, followed by
light and dark color scheme overrides.`)

// TypographyCmd writes the typography stylesheet.
var TypographyCmd = newCmd("typography", "Generate the typography stylesheet",
	`Generate typography.css with desktop values on :root and mobile overrides
on .mobile.`)

// ShadowsCmd writes the drop shadow stylesheet.
var ShadowsCmd = newCmd("shadows", "Generate the drop shadow stylesheet",
	`Generate shadows.css from drop-shadow tokens. Shadow colors that differ between
schemes are written with light-dark().`)

// BuildCmd runs every generator over a single load of the token files.
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate every stylesheet",
	Long:  `Generate the color, theme, typography and shadow stylesheets in one pass.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.Open(cmd)
		if err != nil {
			return err
		}
		check, _ := cmd.Flags().GetBool("check")
		return p.Generate(cmd.OutOrStdout(), p.Emitters(), check)
	},
}

func init() {
	addFlags(BuildCmd)
}

// All returns the generation commands in the order they are listed in help.
func All() []*cobra.Command {
	return []*cobra.Command{BuildCmd, ColorsCmd, ThemeCmd, TypographyCmd, ShadowsCmd}
}

func newCmd(name, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Open(cmd)
			if err != nil {
				return err
			}
			e, err := p.Emitter(name)
			if err != nil {
				return err
			}
			check, _ := cmd.Flags().GetBool("check")
			return p.Generate(cmd.OutOrStdout(), []emit.Emitter{e}, check)
		},
	}
	addFlags(cmd)
	return cmd
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "Compare with the files on disk instead of writing; fail if any are stale")
}
