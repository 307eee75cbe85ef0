/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbuilder/emit"
	"bennypowers.dev/tokenbuilder/load"
	"bennypowers.dev/tokenbuilder/testutil"
	"bennypowers.dev/tokenbuilder/token"
)

func TestValidate_Fixture(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/emit/spectrum/tokens", "/tokens")
	set, err := load.New(mfs, "/tokens").LoadSet(emit.ThemeFiles...)
	require.NoError(t, err)

	report := Validate(set.Files())
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{
		"negative-color-100 references undefined token {red-100}; it will be emitted as var(--red-100)",
	}, report.Warnings)
}

func TestValidate_Problems(t *testing.T) {
	f := token.NewFile("broken.json")
	f.Set("loop-a", &token.Record{Schema: "alias.json", Value: token.Plain{Raw: "{loop-b}"}})
	f.Set("loop-b", &token.Record{Schema: "alias.json", Value: token.Plain{Raw: "{loop-a}"}})
	f.Set("not-a-color", &token.Record{Schema: "color.json", Value: token.Plain{Raw: "banana"}})
	f.Set("fine-color", &token.Record{Schema: "color.json", Value: token.Plain{Raw: "rgba(0, 0, 0, 0.5)"}})
	f.Set("mystery", &token.Record{Schema: "gradient.json", Value: token.Plain{Raw: "x"}})
	f.Set("also-mystery", &token.Record{Schema: "gradient.json", Value: token.Plain{Raw: "y"}})

	report := Validate([]*token.File{f})

	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "circular reference")
	assert.Contains(t, report.Errors[0], "loop-a")
	assert.Equal(t, `broken.json: not-a-color (light) is not a valid color: "banana"`, report.Errors[1])

	assert.Equal(t, []string{`broken.json: mystery has unknown schema type "gradient"`}, report.Warnings)
}
