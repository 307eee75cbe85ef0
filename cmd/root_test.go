/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbuilder/testutil"
)

func TestBuild_EndToEnd(t *testing.T) {
	root := t.TempDir()
	tokens := filepath.Join(root, "node_modules", "@adobe", "spectrum-tokens", "src")
	require.NoError(t, os.CopyFS(tokens, os.DirFS("../testdata/fixtures/emit/spectrum/tokens")))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"build", "--root", root, "--quiet"})
	require.NoError(t, Execute(context.Background()), out.String())

	for _, file := range []string{"spectrum-theme.css", "typography.css", "color-palette.css"} {
		got, err := os.ReadFile(filepath.Join(root, "dist", file))
		require.NoError(t, err)
		testutil.AssertGolden(t, "fixtures/emit/spectrum/expected/"+file, got)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"theme", "--root", root, "--quiet", "--check"})
	require.NoError(t, Execute(context.Background()), out.String())
	assert.Contains(t, out.String(), "spectrum-theme.css is up to date")
}
