// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/colors/cam/oklab"
)

// OKLCH is the polar form of [OKLab]: lightness, chroma and hue.
type OKLCH struct {

	// L is the perceived lightness, 0 for black and 1 for white.
	L float64

	// C is the chroma, the distance from the neutral axis.
	C float64

	// H is the hue as a fraction of a full turn, always in [0, 1).
	H float64

	alpha float64
}

// NewOKLCH returns a new OKLCH color. The hue is wrapped into
// [0, 1) and alpha is clamped to 0-1.
func NewOKLCH(l, c, h, a float64) OKLCH {
	return OKLCH{L: l, C: c, H: WrapHue(h), alpha: clampAlpha(a)}
}

// OKLCHFromComponents returns an OKLCH color from l, c, h and an
// optional alpha.
func OKLCHFromComponents(v []float64) (OKLCH, error) {
	if err := checkComponents(SpaceOKLCH, v); err != nil {
		return OKLCH{}, err
	}
	return NewOKLCH(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceOKLCH].
func (c OKLCH) Space() Spaces { return SpaceOKLCH }

// Alpha returns the alpha, in the 0-1 range.
func (c OKLCH) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c OKLCH) Components() []float64 { return []float64{c.L, c.C, c.H, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *OKLCH) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// HueDegrees returns the hue in degrees, in [0, 360).
func (c OKLCH) HueDegrees() float64 { return c.H * 360 }

// String returns the color in functional notation.
func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%g, %g, %g, %g)", c.L, c.C, c.H, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *OKLCH) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewOKLCH(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
func (c OKLCH) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other.
// The hue follows the shortest arc around the hue circle,
// like [HSB.Blend] and [HSL.Blend].
func (c OKLCH) Blend(fraction float64, other OKLCH) OKLCH {
	return NewOKLCH(
		lerp(c.L, other.L, fraction),
		lerp(c.C, other.C, fraction),
		InterpolateHue(c.H, other.H, fraction),
		lerp(c.alpha, other.alpha, fraction))
}

// SRGB converts to [SRGB].
func (c OKLCH) SRGB() SRGB { return c.OKLab().SRGB() }

// HSB converts to [HSB].
func (c OKLCH) HSB() HSB { return c.SRGB().HSB() }

// HSL converts to [HSL].
func (c OKLCH) HSL() HSL { return c.SRGB().HSL() }

// OKLab converts to [OKLab].
func (c OKLCH) OKLab() OKLab {
	l, a, b := oklab.LChToLab(c.L, c.C, c.H)
	return NewOKLab(l, a, b, c.alpha)
}

// OKLCH returns c.
func (c OKLCH) OKLCH() OKLCH { return c }

// XYZ converts to [XYZ].
func (c OKLCH) XYZ() XYZ { return c.SRGB().XYZ() }

// Lab converts to [Lab].
func (c OKLCH) Lab() Lab { return c.SRGB().Lab() }

// CMYK converts to [CMYK].
func (c OKLCH) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray converts to [Gray].
func (c OKLCH) Gray() Gray { return c.SRGB().Gray() }
