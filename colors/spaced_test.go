// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for i := range 40 {
		c := Spaced(i)
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "duplicate color at %d: %v", i, c)
		seen[c] = true

		m := SpacedModel(i)
		assert.Greater(t, m.L, 0.4)
		assert.Less(t, m.L, 0.9)
	}
	assert.Equal(t, Spaced(3), Spaced(-3))

	// the first colors cycle through hues at the same lightness
	assert.Equal(t, SpacedModel(0).C, SpacedModel(1).C)
	assert.NotEqual(t, SpacedModel(0).H, SpacedModel(1).H)
}
