/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokenbuilder converts Adobe Spectrum design tokens into Tailwind v4 CSS.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bennypowers.dev/tokenbuilder/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
