// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaces(t *testing.T) {
	assert.Len(t, SpacesValues(), 9)
	for _, s := range SpacesValues() {
		assert.True(t, s.IsValid())
		p, err := ParseSpaces(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)

		b, err := s.MarshalText()
		require.NoError(t, err)
		var u Spaces
		require.NoError(t, u.UnmarshalText(b))
		assert.Equal(t, s, u)
	}

	assert.Equal(t, "oklch", SpaceOKLCH.String())
	assert.Equal(t, "12", Spaces(12).String())
	assert.False(t, Spaces(12).IsValid())
	assert.False(t, Spaces(-1).IsValid())

	for in, want := range map[string]Spaces{"RGB": SpaceSRGB, " hsv": SpaceHSB, "Grey": SpaceGray, "OKLab": SpaceOKLab} {
		s, err := ParseSpaces(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, s, in)
	}
	_, err := ParseSpaces("ycbcr")
	assert.Error(t, err)

	assert.Equal(t, 4, SpaceSRGB.Arity())
	assert.Equal(t, 5, SpaceCMYK.Arity())
	assert.Equal(t, 2, SpaceGray.Arity())
	assert.Equal(t, 3, Spaces(42).MinComponents())
}

func TestGrayModesEnum(t *testing.T) {
	var m GrayModes
	require.NoError(t, m.SetString("Perceptual"))
	assert.Equal(t, GrayPerceptual, m)
	assert.Equal(t, "value", GrayValue.String())
	assert.Error(t, m.SetString("sepia"))
	require.NoError(t, m.UnmarshalText([]byte("average")))
	assert.Equal(t, GrayAverage, m)
	assert.False(t, GrayModes(9).IsValid())
}
