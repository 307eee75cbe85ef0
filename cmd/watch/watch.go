/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package watch provides the watch command for tokenbuilder.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbuilder/cmd/project"
	"bennypowers.dev/tokenbuilder/internal/logger"
)

// Cmd is the watch cobra command.
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild stylesheets when token files change",
	Long: `Build every stylesheet, then watch the token directory and rebuild whenever a
file matching the configured watch patterns changes. Bursts of changes are
coalesced into one rebuild after the debounce period.`,
	RunE: run,
}

func init() {
	Cmd.Flags().Int("debounce", 0, "Quiet period in milliseconds before rebuilding (default from config)")
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Open(cmd)
	if err != nil {
		return err
	}
	quiet := p.Config.DebounceDuration()
	if ms, _ := cmd.Flags().GetInt("debounce"); ms > 0 {
		quiet = time.Duration(ms) * time.Millisecond
	}

	w := cmd.OutOrStdout()
	emitters := p.Emitters()
	if err := p.Generate(w, emitters, false); err != nil {
		logger.Warn("%v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, p.TokenDir); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nWatching %s for changes (Ctrl+C to stop)...\n", p.TokenDir)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	changes := make(chan string)
	go forward(ctx, watcher, p.TokenDir, p.Config.Watches, changes)

	return Debounce(ctx, changes, quiet, func(paths []string) {
		fmt.Fprintf(w, "\nChanged: %s\n", strings.Join(paths, ", "))
		if err := p.Generate(w, emitters, false); err != nil {
			logger.Warn("%v", err)
		}
	})
}

// addTree watches dir and every directory below it.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

// forward sends the path of every relevant event, relative to root, until
// ctx is done or the watcher closes. It closes changes on return.
func forward(ctx context.Context, watcher *fsnotify.Watcher, root string, match func(string) bool, changes chan<- string) {
	defer close(changes)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			rel, err := filepath.Rel(root, event.Name)
			if err != nil || !match(rel) {
				continue
			}
			logger.Debug("%s %s", event.Op, rel)
			select {
			case changes <- rel:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// Debounce calls fn with the distinct paths received on changes once no new
// change has arrived for the quiet period. Paths are passed sorted. It
// returns ctx.Err() when ctx is done, or nil after flushing pending paths
// when changes is closed.
func Debounce(ctx context.Context, changes <-chan string, quiet time.Duration, fn func([]string)) error {
	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	flush := func() {
		if len(pending) == 0 {
			return
		}
		paths := make([]string, 0, len(pending))
		for path := range pending {
			paths = append(paths, path)
		}
		slices.Sort(paths)
		clear(pending)
		fn(paths)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case path, ok := <-changes:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				flush()
				return nil
			}
			pending[path] = true
			if timer == nil {
				timer = time.NewTimer(quiet)
			} else {
				timer.Reset(quiet)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			flush()
		}
	}
}
