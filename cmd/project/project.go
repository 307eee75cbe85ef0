/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project resolves the configuration, token directory and output
// directory shared by the tokenbuilder commands.
package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenbuilder/config"
	"bennypowers.dev/tokenbuilder/emit"
	"bennypowers.dev/tokenbuilder/fs"
	"bennypowers.dev/tokenbuilder/internal/logger"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/specifier"
)

// Project is a resolved working environment.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config

	// TokenDir is the resolved token directory.
	TokenDir string
}

// Open loads the project rooted at the --root flag on the OS filesystem.
func Open(cmd *cobra.Command) (*Project, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = "."
	}
	return Load(fs.NewOSFileSystem(), root, cmd)
}

// Load reads .config/tokenbuilder.* under root and applies the --tokens and
// --out flags of cmd on top of it. Flags win over the config file, which
// wins over defaults.
func Load(filesystem fs.FileSystem, root string, cmd *cobra.Command) (*Project, error) {
	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	v := viper.New()
	v.SetDefault("tokens", cfg.Tokens)
	v.SetDefault("out", cfg.OutDir)
	if cmd != nil {
		for _, key := range []string{"tokens", "out"} {
			if flag := cmd.Flags().Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}
	cfg.Tokens = v.GetString("tokens")
	cfg.OutDir = v.GetString("out")

	resolved, err := specifier.NewDefaultResolver(filesystem, root).Resolve(cfg.Tokens)
	if err != nil {
		return nil, fmt.Errorf("locating tokens: %w", err)
	}
	logger.Debug("tokens: %s → %s", cfg.Tokens, resolved.Path)

	return &Project{
		FS:       filesystem,
		Root:     root,
		Config:   cfg,
		TokenDir: resolved.Path,
	}, nil
}

// Loader returns a loader for the token directory.
func (p *Project) Loader() *load.Loader {
	return load.New(p.FS, p.TokenDir)
}

// Emitters returns every emitter configured with the project's input lists.
func (p *Project) Emitters() []emit.Emitter {
	return emit.All(p.Config.Colors, p.Config.Theme, p.Config.Typography, p.Config.Shadows)
}

// Emitter returns the named emitter.
func (p *Project) Emitter(name string) (emit.Emitter, error) {
	for _, e := range p.Emitters() {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown emitter %q", name)
}

// OutDir returns the output directory. Relative directories are resolved
// against the project root.
func (p *Project) OutDir() string {
	return join(p.Root, p.Config.OutDir)
}
