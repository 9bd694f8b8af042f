// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "fmt"

// Gray is a single white level, from 0 for black to 1 for white.
// Converting to Gray loses information; see [SRGB.GrayMode] for the
// reduction policies.
type Gray struct {
	W float64

	alpha float64
}

// NewGray returns a new gray color. Alpha is clamped to 0-1.
func NewGray(w, a float64) Gray {
	return Gray{W: w, alpha: clampAlpha(a)}
}

// GrayFromComponents returns a gray color from a white level and an
// optional alpha.
func GrayFromComponents(v []float64) (Gray, error) {
	if err := checkComponents(SpaceGray, v); err != nil {
		return Gray{}, err
	}
	return NewGray(v[0], alphaAt(v, 1)), nil
}

// Space returns [SpaceGray].
func (c Gray) Space() Spaces { return SpaceGray }

// Alpha returns the alpha, in the 0-1 range.
func (c Gray) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c Gray) Components() []float64 { return []float64{c.W, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *Gray) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// String returns the color in functional notation.
func (c Gray) String() string {
	return fmt.Sprintf("gray(%g, %g)", c.W, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *Gray) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewGray(v[0], v[1])
}

// RGBA implements the [color.Color] interface.
func (c Gray) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other,
// interpolating every component linearly.
func (c Gray) Blend(fraction float64, other Gray) Gray {
	return NewGray(lerp(c.W, other.W, fraction), lerp(c.alpha, other.alpha, fraction))
}

// Clamped returns the color with the white level clamped to 0-1.
func (c Gray) Clamped() Gray { return NewGray(clamp01(c.W), c.alpha) }

// SRGB converts to [SRGB].
func (c Gray) SRGB() SRGB { return NewSRGB(c.W, c.W, c.W, c.alpha) }

// HSB converts to [HSB].
func (c Gray) HSB() HSB { return c.SRGB().HSB() }

// HSL converts to [HSL].
func (c Gray) HSL() HSL { return c.SRGB().HSL() }

// OKLab converts to [OKLab].
func (c Gray) OKLab() OKLab { return c.SRGB().OKLab() }

// OKLCH converts to [OKLCH].
func (c Gray) OKLCH() OKLCH { return c.SRGB().OKLCH() }

// XYZ converts to [XYZ].
func (c Gray) XYZ() XYZ { return c.SRGB().XYZ() }

// Lab converts to [Lab].
func (c Gray) Lab() Lab { return c.SRGB().Lab() }

// CMYK converts to [CMYK].
func (c Gray) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray returns c.
func (c Gray) Gray() Gray { return c }
