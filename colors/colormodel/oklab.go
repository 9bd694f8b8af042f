// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/colors/cam/oklab"
)

// OKLab is a color in the perceptually uniform OKLab space.
type OKLab struct {

	// L is the perceived lightness, 0 for black and 1 for white.
	L float64

	// A is the green (negative) to red (positive) axis.
	A float64

	// B is the blue (negative) to yellow (positive) axis.
	B float64

	alpha float64
}

// NewOKLab returns a new OKLab color. Alpha is clamped to 0-1.
func NewOKLab(l, a, b, alpha float64) OKLab {
	return OKLab{L: l, A: a, B: b, alpha: clampAlpha(alpha)}
}

// OKLabFromComponents returns an OKLab color from l, a, b and an
// optional alpha.
func OKLabFromComponents(v []float64) (OKLab, error) {
	if err := checkComponents(SpaceOKLab, v); err != nil {
		return OKLab{}, err
	}
	return NewOKLab(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceOKLab].
func (c OKLab) Space() Spaces { return SpaceOKLab }

// Alpha returns the alpha, in the 0-1 range.
func (c OKLab) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c OKLab) Components() []float64 { return []float64{c.L, c.A, c.B, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *OKLab) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// String returns the color in functional notation.
func (c OKLab) String() string {
	return fmt.Sprintf("oklab(%g, %g, %g, %g)", c.L, c.A, c.B, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *OKLab) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewOKLab(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
func (c OKLab) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other,
// interpolating every component linearly.
func (c OKLab) Blend(fraction float64, other OKLab) OKLab {
	v := lerpComponents(c.Components(), other.Components(), fraction)
	return NewOKLab(v[0], v[1], v[2], v[3])
}

// SRGB converts to sRGB, clipping colors outside of its gamut.
func (c OKLab) SRGB() SRGB {
	r, g, b := oklab.ToSRGB(c.L, c.A, c.B)
	return NewSRGB(r, g, b, c.alpha)
}

// HSB converts to [HSB].
func (c OKLab) HSB() HSB { return c.SRGB().HSB() }

// HSL converts to [HSL].
func (c OKLab) HSL() HSL { return c.SRGB().HSL() }

// OKLab returns c.
func (c OKLab) OKLab() OKLab { return c }

// OKLCH converts to [OKLCH].
func (c OKLab) OKLCH() OKLCH {
	l, ch, h := oklab.LabToLCh(c.L, c.A, c.B)
	return NewOKLCH(l, ch, h, c.alpha)
}

// XYZ converts to [XYZ].
func (c OKLab) XYZ() XYZ { return c.SRGB().XYZ() }

// Lab converts to [Lab].
func (c OKLab) Lab() Lab { return c.SRGB().Lab() }

// CMYK converts to [CMYK].
func (c OKLab) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray converts to [Gray].
func (c OKLab) Gray() Gray { return c.SRGB().Gray() }
