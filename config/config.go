/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokenbuilder.
package config

import (
	"time"

	"bennypowers.dev/tokenbuilder/specifier"
)

// Config represents the tokenbuilder configuration.
type Config struct {
	// Tokens locates the token directory: an npm: specifier or a local path.
	Tokens string `yaml:"tokens" json:"tokens"`

	// OutDir is the directory generated stylesheets are written to.
	OutDir string `yaml:"outDir" json:"outDir"`

	// Colors, Theme, Typography and Shadows override each emitter's input files.
	Colors     []string `yaml:"colors" json:"colors"`
	Theme      []string `yaml:"theme" json:"theme"`
	Typography []string `yaml:"typography" json:"typography"`
	Shadows    []string `yaml:"shadows" json:"shadows"`

	// Watch lists doublestar patterns, relative to the token directory,
	// that trigger a rebuild in watch mode.
	Watch []string `yaml:"watch" json:"watch"`

	// Debounce is the quiet period in milliseconds before a rebuild.
	Debounce int `yaml:"debounce" json:"debounce"`
}

// Defaults.
const (
	DefaultOutDir   = "dist"
	DefaultDebounce = 100
)

// DefaultWatch matches every token file.
var DefaultWatch = []string{"**/*.json"}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Tokens:   specifier.DefaultTokens,
		OutDir:   DefaultOutDir,
		Watch:    DefaultWatch,
		Debounce: DefaultDebounce,
	}
}

// withDefaults fills unset fields from Default.
func (c *Config) withDefaults() *Config {
	d := Default()
	if c.Tokens == "" {
		c.Tokens = d.Tokens
	}
	if c.OutDir == "" {
		c.OutDir = d.OutDir
	}
	if len(c.Watch) == 0 {
		c.Watch = d.Watch
	}
	if c.Debounce <= 0 {
		c.Debounce = d.Debounce
	}
	return c
}

// DebounceDuration returns Debounce as a duration.
func (c *Config) DebounceDuration() time.Duration {
	return time.Duration(c.Debounce) * time.Millisecond
}
