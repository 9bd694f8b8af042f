// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"math"
	"testing"

	"cogentcore.org/colormodel/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestHueWraparound(t *testing.T) {
	a, b := NewHSL(0.95, 0.5, 0.5, 1), NewHSL(0.05, 0.5, 0.5, 1)
	h := a.Blend(0.5, b).H
	assert.Less(t, HueDistance(h, 0), 1e-9, "got hue %g", h)
	assert.Greater(t, HueDistance(h, 0.5), 0.49)

	// and the other way around
	h = b.Blend(0.5, a).H
	assert.Less(t, HueDistance(h, 0), 1e-9, "got hue %g", h)

	hb := NewHSB(0.9, 1, 1, 1).Blend(0.5, NewHSB(0.2, 1, 1, 1))
	tolassert.EqualTol(t, 0.05, hb.H, 1e-9)

	lch := NewOKLCH(0.5, 0.1, 0.95, 1).Blend(0.25, NewOKLCH(0.7, 0.2, 0.15, 1))
	assert.Less(t, HueDistance(lch.H, 0), 1e-9, "got hue %g", lch.H)
	tolassert.EqualTol(t, 0.55, lch.L, 1e-9)
	tolassert.EqualTol(t, 0.125, lch.C, 1e-9)
}

func TestInterpolateHue(t *testing.T) {
	tolassert.EqualTol(t, 0.3, InterpolateHue(0.2, 0.4, 0.5), 1e-12)
	tolassert.EqualTol(t, 0.2, InterpolateHue(0.2, 0.4, 0), 1e-12)
	tolassert.EqualTol(t, 0.4, InterpolateHue(0.2, 0.4, 1), 1e-12)
	tolassert.EqualTol(t, 0.9, InterpolateHue(0.1, 0.7, 0.5), 1e-12)
	tolassert.EqualTol(t, 0.75, InterpolateHue(0.25, 0.75, 1), 1e-12)

	assert.Equal(t, 0.25, WrapHue(1.25))
	assert.Equal(t, 0.75, WrapHue(-0.25))
	assert.Equal(t, 0.0, WrapHue(3))
	assert.Equal(t, 0.0, WrapHue(-1e-18))
	assert.Equal(t, 0.0, WrapHue(math.Inf(1)))
	tolassert.EqualTol(t, 0.1, HueDistance(0.95, 0.05), 1e-12)
}

func TestBlendLinear(t *testing.T) {
	x, y := NewSRGB(0, 0.2, 1, 1), NewSRGB(1, 0.4, 0, 0.5)

	assert.Equal(t, x, Blend(SpaceSRGB, 0, x, y))
	assert.Equal(t, y, Blend(SpaceSRGB, 1, x, y))
	mid := Blend(SpaceSRGB, 0.5, x, y).(SRGB)
	tolassert.EqualTolSlice(t, []float64{0.5, 0.3, 0.5, 0.75}, mid.Components(), 1e-12)

	// extrapolation is allowed; alpha stays clamped
	over := x.Blend(1.5, y)
	tolassert.EqualTolSlice(t, []float64{1.5, 0.5, -0.5, 0.25}, over.Components(), 1e-12)
	under := x.Blend(-1, y)
	assert.Equal(t, 1.0, under.Alpha())

	g := NewGray(0.2, 1).Blend(0.5, NewGray(0.6, 0))
	tolassert.EqualTolSlice(t, []float64{0.4, 0.5}, g.Components(), 1e-12)

	c := NewCMYK(0, 0, 0, 0, 1).Blend(0.5, NewCMYK(1, 1, 0, 0.5, 1))
	tolassert.EqualTolSlice(t, []float64{0.5, 0.5, 0, 0.25, 1}, c.Components(), 1e-12)
}

func TestBlendSpaces(t *testing.T) {
	x, y := NewSRGB(1, 0, 0, 1), NewSRGB(0, 0, 1, 1)
	for _, space := range SpacesValues() {
		b := Blend(space, 0, x, y)
		assert.Equal(t, space, b.Space())
		assert.True(t, ApproxEqual(Convert(x, space), b, 1e-9), "%v", space)

		b = Blend(space, 1, x, y)
		assert.True(t, ApproxEqual(Convert(y, space), b, 1e-9), "%v", space)
	}
	assert.Equal(t, SpaceSRGB, Blend(Spaces(99), 0.5, x, y).Space())

	// red to blue through magenta in HSB, through a dark purple in sRGB
	hsb := BlendSRGB(SpaceHSB, 0.5, x, y)
	tolassert.EqualTolSlice(t, []float64{1, 0, 1, 1}, hsb.Components(), 1e-9)
	srgb := BlendSRGB(SpaceSRGB, 0.5, x, y)
	tolassert.EqualTolSlice(t, []float64{0.5, 0, 0.5, 1}, srgb.Components(), 1e-9)

	// linear light blending is brighter than gamma encoded blending
	xyz := BlendSRGB(SpaceXYZ, 0.5, NewSRGB(0, 0, 0, 1), NewSRGB(1, 1, 1, 1))
	tolassert.EqualTol(t, 0.7354, xyz.G, 1e-3)
}

func TestTintShade(t *testing.T) {
	c := NewSRGB(0.2, 0.4, 0.6, 0.5)
	tolassert.EqualTolSlice(t, []float64{0.36, 0.52, 0.68, 0.5}, c.Tinted(0.2).Components(), 1e-12)
	tolassert.EqualTolSlice(t, []float64{0.16, 0.32, 0.48, 0.5}, c.Shaded(0.2).Components(), 1e-12)
	assert.Equal(t, c, c.Tinted(0))
	tolassert.EqualTolSlice(t, []float64{1, 1, 1, 0.5}, c.Tinted(1).Components(), 1e-12)
	tolassert.EqualTolSlice(t, []float64{0, 0, 0, 0.5}, c.Shaded(1).Components(), 1e-12)
}

func TestRotatedHue(t *testing.T) {
	c := NewHSL(0.9, 0.5, 0.4, 0.8)
	r := c.RotatedHue(0.25)
	tolassert.EqualTol(t, 0.15, r.H, 1e-12)
	assert.Equal(t, c.S, r.S)
	assert.Equal(t, c.L, r.L)
	assert.Equal(t, c.Alpha(), r.Alpha())
	tolassert.EqualTol(t, 0.65, c.RotatedHue(-0.25).H, 1e-12)
	tolassert.EqualTol(t, 0.4, c.Complement().H, 1e-12)
	tolassert.EqualTol(t, 0.9, c.Complement().Complement().H, 1e-12)
	tolassert.EqualTol(t, 0.9, c.RotatedHue(1).H, 1e-12)

	// complement of red is cyan
	cy := NewSRGB(1, 0, 0, 1).HSL().Complement().SRGB()
	tolassert.EqualTolSlice(t, []float64{0, 1, 1, 1}, cy.Components(), 1e-9)
}
