/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for tokenbuilder.
package version

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuilder/cmd/project"
	"bennypowers.dev/tokenbuilder/fs"
	"bennypowers.dev/tokenbuilder/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information for tokenbuilder, and the version of the installed
@adobe/spectrum-tokens package when one can be found.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}

	build := version.Info()
	if p, err := project.Open(cmd); err == nil {
		build.SpectrumTokens = PackageVersion(p.FS, p.TokenDir)
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		out, err := json.MarshalIndent(build, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case "text":
		fmt.Fprintln(w, build)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// PackageVersion reads the version from the package.json above a token
// directory such as node_modules/@adobe/spectrum-tokens/src. It returns ""
// when there is none.
func PackageVersion(filesystem fs.FileSystem, tokenDir string) string {
	for _, dir := range []string{tokenDir, filepath.Dir(tokenDir)} {
		data, err := filesystem.ReadFile(filepath.Join(dir, "package.json"))
		if err != nil {
			continue
		}
		var pkg struct {
			Version string `json:"version"`
		}
		if json.Unmarshal(data, &pkg) == nil {
			return pkg.Version
		}
	}
	return ""
}
