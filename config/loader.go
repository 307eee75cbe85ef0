/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenbuilder/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenbuilder"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tokenbuilder.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		case ".json":
			err = json.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}

		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg.withDefaults(), nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
// A config file that fails to load is reported through the returned error
// alongside the defaults.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return Default(), err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for _, pattern := range c.Watch {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid watch pattern %q", pattern)
		}
	}
	return nil
}

// Watches reports whether a path relative to the token directory matches
// one of the watch patterns.
func (c *Config) Watches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range c.Watch {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}
