// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "fmt"

// HSL is a color as hue, saturation and lightness.
type HSL struct {

	// H is the hue as a fraction of a full turn, always in [0, 1).
	H float64

	// S is the saturation.
	S float64

	// L is the lightness, the midpoint of the largest and smallest sRGB channel.
	L float64

	alpha float64
}

// NewHSL returns a new HSL color. The hue is wrapped into
// [0, 1) and alpha is clamped to 0-1.
func NewHSL(h, s, l, a float64) HSL {
	return HSL{H: WrapHue(h), S: s, L: l, alpha: clampAlpha(a)}
}

// NewHSLDegrees returns a new HSL color with the hue given in degrees.
func NewHSLDegrees(h, s, l, a float64) HSL {
	return NewHSL(h/360, s, l, a)
}

// HSLFromComponents returns an HSL color from h, s, l and an
// optional alpha.
func HSLFromComponents(v []float64) (HSL, error) {
	if err := checkComponents(SpaceHSL, v); err != nil {
		return HSL{}, err
	}
	return NewHSL(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceHSL].
func (c HSL) Space() Spaces { return SpaceHSL }

// Alpha returns the alpha, in the 0-1 range.
func (c HSL) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c HSL) Components() []float64 { return []float64{c.H, c.S, c.L, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *HSL) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// HueDegrees returns the hue in degrees, in [0, 360).
func (c HSL) HueDegrees() float64 { return c.H * 360 }

// String returns the color in functional notation.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g, %g)", c.H, c.S, c.L, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *HSL) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewHSL(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other.
// The hue follows the shortest arc around the hue circle.
func (c HSL) Blend(fraction float64, other HSL) HSL {
	return NewHSL(
		InterpolateHue(c.H, other.H, fraction),
		lerp(c.S, other.S, fraction),
		lerp(c.L, other.L, fraction),
		lerp(c.alpha, other.alpha, fraction))
}

// RotatedHue returns the color with amount turns added to its hue,
// wrapped into [0, 1).
func (c HSL) RotatedHue(amount float64) HSL {
	c.H = WrapHue(c.H + amount)
	return c
}

// Complement returns the color with its hue rotated half a turn.
func (c HSL) Complement() HSL { return c.RotatedHue(0.5) }

// Clamped returns the color with saturation and lightness clamped to 0-1.
func (c HSL) Clamped() HSL {
	return NewHSL(c.H, clamp01(c.S), clamp01(c.L), c.alpha)
}

// SRGB converts to [SRGB].
func (c HSL) SRGB() SRGB { return c.HSB().SRGB() }

// HSB converts directly. Black has an HSB saturation of 0.
func (c HSL) HSB() HSB {
	v := c.L + c.S*min(c.L, 1-c.L)
	var s float64
	if v != 0 {
		s = 2 * (1 - c.L/v)
	}
	return NewHSB(c.H, s, v, c.alpha)
}

// HSL returns c.
func (c HSL) HSL() HSL { return c }

// OKLab converts to [OKLab].
func (c HSL) OKLab() OKLab { return c.SRGB().OKLab() }

// OKLCH converts to [OKLCH].
func (c HSL) OKLCH() OKLCH { return c.SRGB().OKLCH() }

// XYZ converts to [XYZ].
func (c HSL) XYZ() XYZ { return c.SRGB().XYZ() }

// Lab converts to [Lab].
func (c HSL) Lab() Lab { return c.SRGB().Lab() }

// CMYK converts to [CMYK].
func (c HSL) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray converts to [Gray].
func (c HSL) Gray() Gray { return c.SRGB().Gray() }
