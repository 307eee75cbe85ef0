/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	var names []string
	for _, cmd := range All() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"build", "colors", "theme", "typography", "shadows"}, names)

	for _, cmd := range All() {
		flag := cmd.Flags().Lookup("check")
		if assert.NotNil(t, flag, "%s has no --check flag", cmd.Name()) {
			assert.Equal(t, "false", flag.DefValue)
		}
	}
}
