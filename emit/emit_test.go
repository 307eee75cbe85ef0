/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbuilder/emit"
	"bennypowers.dev/tokenbuilder/internal/logger"
	"bennypowers.dev/tokenbuilder/internal/mapfs"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/testutil"
	"bennypowers.dev/tokenbuilder/token"
)

const fixture = "fixtures/emit/spectrum"

func loadFixture(t *testing.T, emitters ...emit.Emitter) *load.Set {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, fixture+"/tokens", "/tokens")
	set, err := load.New(mfs, "/tokens").LoadSet(emit.Inputs(emitters...)...)
	require.NoError(t, err)
	return set
}

func silence(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestEmitters_Golden(t *testing.T) {
	silence(t)

	tests := []struct {
		emitter emit.Emitter
		files   []string
	}{
		{&emit.Colors{}, []string{"color-palette.css", "semantic-color-palette.css", "color-aliases.css", "icons.css"}},
		{&emit.Theme{}, []string{"spectrum-theme.css"}},
		{&emit.Typography{}, []string{"typography.css"}},
		{&emit.Shadows{}, []string{"shadows.css"}},
	}

	for _, tt := range tests {
		t.Run(tt.emitter.Name(), func(t *testing.T) {
			outputs, err := tt.emitter.Emit(loadFixture(t, tt.emitter))
			require.NoError(t, err)
			require.Len(t, outputs, len(tt.files))

			for i, out := range outputs {
				assert.Equal(t, tt.files[i], out.File)
				testutil.AssertGolden(t, fixture+"/expected/"+out.File, out.CSS)
			}
		})
	}
}

func TestEmitters_Idempotent(t *testing.T) {
	silence(t)

	for _, e := range emit.All(nil, nil, nil, nil) {
		t.Run(e.Name(), func(t *testing.T) {
			first, err := e.Emit(loadFixture(t, e))
			require.NoError(t, err)
			second, err := e.Emit(loadFixture(t, e))
			require.NoError(t, err)

			require.Len(t, second, len(first))
			for i := range first {
				assert.Equal(t, first[i].CSS, second[i].CSS, first[i].File)
				assert.True(t, bytes.HasSuffix(first[i].CSS, []byte("}\n")), "%s should end with a single newline", first[i].File)
			}
		})
	}
}

func TestColors_ResolvesAcrossFiles(t *testing.T) {
	palette := token.NewFile("a.json")
	palette.Set("blue-800", &token.Record{
		Schema: "color-set.json",
		Value: token.ColorSet{
			Light: &token.Record{Schema: "color.json", Value: token.Plain{Raw: "#00f"}},
			Dark:  &token.Record{Schema: "color.json", Value: token.Plain{Raw: "#000080"}},
		},
	})
	links := token.NewFile("b.json")
	links.Set("link-color", &token.Record{
		Schema: "color-set.json",
		Value: token.ColorSet{
			Light: &token.Record{Schema: "alias.json", Value: token.Plain{Raw: "{blue-800}"}},
		},
	})

	colors := &emit.Colors{Files: []string{"a.json", "b.json"}}
	outputs, err := colors.Emit(load.NewSet(palette, links))
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	root, dark := splitBlocks(t, outputs[0].CSS)
	assert.Contains(t, root, "--blue-800: #00f;")
	assert.Contains(t, dark, "--blue-800: #000080;")

	root, dark = splitBlocks(t, outputs[1].CSS)
	assert.Contains(t, root, "--link-color: #00f;")
	assert.NotContains(t, root, "var(--blue-800)")
	// link-color has no dark member, so it follows blue-800 into dark mode.
	assert.Contains(t, dark, "--link-color: #000080;")

	assert.Equal(t, []emit.Count{
		{Label: "light", N: 1},
		{Label: "dark", N: 1},
		{Label: "wireframe", N: 0},
	}, outputs[1].Counts)
}

func TestColors_OmitsEqualOverrides(t *testing.T) {
	f := token.NewFile("c.json")
	f.Set("static", &token.Record{
		Schema: "color-set.json",
		Value: token.ColorSet{
			Light: &token.Record{Value: token.Plain{Raw: "#fff"}},
			Dark:  &token.Record{Value: token.Plain{Raw: "#fff"}},
		},
	})

	outputs, err := (&emit.Colors{Files: []string{"c.json"}}).Emit(load.NewSet(f))
	require.NoError(t, err)
	assert.Equal(t, ":root {\n    --static: #fff;\n}\n", string(outputs[0].CSS))
}

func TestEmitters_CycleIsFatal(t *testing.T) {
	f := token.NewFile("typography.json")
	f.Set("a", &token.Record{Schema: "alias.json", Value: token.Plain{Raw: "{b}"}})
	f.Set("b", &token.Record{Schema: "alias.json", Value: token.Plain{Raw: "{a}"}})
	set := load.NewSet(f)

	_, err := (&emit.Colors{Files: []string{"typography.json"}}).Emit(set)
	assert.ErrorIs(t, err, token.ErrCircularReference)

	_, err = (&emit.Typography{}).Emit(set)
	assert.ErrorIs(t, err, token.ErrCircularReference)
}

func TestEmitters_MissingInput(t *testing.T) {
	set := load.NewSet(token.NewFile("color-palette.json"))
	_, err := (&emit.Theme{}).Emit(set)
	assert.True(t, errors.Is(err, token.ErrMissingFile), "got %v", err)
}

func TestShadows_WarnsOnSpread(t *testing.T) {
	buf := silence(t)

	outputs, err := (&emit.Shadows{}).Emit(loadFixture(t, &emit.Shadows{}))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "drop-shadow-spread")
	assert.NotContains(t, string(outputs[0].CSS), "drop-shadow-spread")
	assert.Equal(t, []emit.Count{{Label: "shadows", N: 1}, {Label: "skipped", N: 1}}, outputs[0].Counts)
}

func TestWriteAndCheck(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	mfs := mapfs.New()
	outputs := []emit.Output{
		{File: "a.css", CSS: []byte(":root {\n    --a: 1;\n}\n")},
		{File: "b.css", CSS: []byte(":root {\n    --b: 2;\n}\n")},
	}

	stale, err := emit.Check(mfs, "/dist", outputs)
	require.ErrorIs(t, err, token.ErrStale)
	require.Len(t, stale, 2)
	assert.True(t, stale[0].Missing)

	paths, err := emit.Write(mfs, "/dist", outputs)
	require.NoError(t, err)
	assert.Equal(t, []string{"/dist/a.css", "/dist/b.css"}, paths)

	stale, err = emit.Check(mfs, "/dist", outputs)
	require.NoError(t, err)
	assert.Empty(t, stale)

	outputs[1].CSS = []byte(":root {\n    --b: 3;\n}\n")
	stale, err = emit.Check(mfs, "/dist", outputs)
	require.ErrorIs(t, err, token.ErrStale)
	require.Len(t, stale, 1)
	assert.Equal(t, "/dist/b.css", stale[0].Path)
	assert.Equal(t, "-    --b: 2;\n+    --b: 3;\n", stale[0].Diff)
}

func TestLineDiff(t *testing.T) {
	assert.Empty(t, emit.LineDiff("a\nb\n", "a\nb\n"))
	assert.Equal(t, "+c\n", emit.LineDiff("a\nb\n", "a\nb\nc\n"))
}

// splitBlocks returns the :root block and the .dark block of a color stylesheet.
func splitBlocks(t *testing.T, css []byte) (string, string) {
	t.Helper()
	text := string(css)
	root, rest, _ := strings.Cut(text, "\n}\n")
	_, dark, _ := strings.Cut(rest, ".dark {")
	dark, _, _ = strings.Cut(dark, "}")
	return root, dark
}
