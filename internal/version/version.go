/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the tokenbuilder CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags, e.g.
// -X bennypowers.dev/tokenbuilder/internal/version.Version=v1.2.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`

	// SpectrumTokens is the version of @adobe/spectrum-tokens the stylesheets
	// are generated from, when known.
	SpectrumTokens string `json:"spectrumTokens,omitempty"`
}

// Get returns the version string for the application.
// Precedence: ldflags Version, module version, tag plus short commit, "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "(devel)" && v != "" {
			return v
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}
	v := GitTag
	if short := shortCommit(GitCommit); short != "" && !strings.HasSuffix(GitTag, short) {
		v += "-" + short
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

// Info returns the build description.
func Info() Build {
	return Build{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the build on one line:
// "tokenbuilder v1.2.0 (commit 1a2b3c4, go1.25.5 linux/amd64)".
func (b Build) String() string {
	details := []string{}
	if short := shortCommit(b.GitCommit); short != "" && short != "unknown" {
		details = append(details, "commit "+short)
	}
	details = append(details, b.GoVersion+" "+b.Platform)
	s := fmt.Sprintf("tokenbuilder %s (%s)", b.Version, strings.Join(details, ", "))
	if b.SpectrumTokens != "" {
		s += "\nspectrum-tokens " + b.SpectrumTokens
	}
	return s
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
