/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenbuilder.
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuilder/cmd/generate"
	"bennypowers.dev/tokenbuilder/cmd/list"
	"bennypowers.dev/tokenbuilder/cmd/validate"
	"bennypowers.dev/tokenbuilder/cmd/version"
	"bennypowers.dev/tokenbuilder/cmd/watch"
	"bennypowers.dev/tokenbuilder/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenbuilder",
	Short: "Generate Tailwind v4 CSS from Adobe Spectrum design tokens",
	Long: `tokenbuilder reads the Adobe Spectrum design token files and writes CSS custom
property stylesheets: color palettes with dark and wireframe overrides, a
Tailwind v4 @theme, typography with mobile overrides, and drop shadows.

Settings are read from .config/tokenbuilder.yaml (or .yml, .json) under --root.
Flags take precedence over the config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if quiet {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(verbose && !quiet)
	},
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as watch.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("root", ".", "Project root holding .config/ and node_modules/")
	flags.String("tokens", "", "Token directory: a path or npm: specifier (default npm:@adobe/spectrum-tokens/src)")
	flags.StringP("out", "o", "", "Output directory (default dist)")
	flags.BoolP("quiet", "q", false, "Suppress warnings")
	flags.BoolP("verbose", "v", false, "Print debug output")

	rootCmd.AddCommand(generate.All()...)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
