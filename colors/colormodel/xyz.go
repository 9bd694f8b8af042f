// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/colors/cam/cie"
)

// XYZ is a color in the CIE 1931 XYZ space, referenced to the D65
// white point with Y = 1 for white.
type XYZ struct {
	X float64

	// Y is the relative luminance.
	Y float64

	Z float64

	alpha float64
}

// NewXYZ returns a new XYZ color. Alpha is clamped to 0-1.
func NewXYZ(x, y, z, a float64) XYZ {
	return XYZ{X: x, Y: y, Z: z, alpha: clampAlpha(a)}
}

// XYZFromComponents returns an XYZ color from x, y, z and an
// optional alpha.
func XYZFromComponents(v []float64) (XYZ, error) {
	if err := checkComponents(SpaceXYZ, v); err != nil {
		return XYZ{}, err
	}
	return NewXYZ(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceXYZ].
func (c XYZ) Space() Spaces { return SpaceXYZ }

// Alpha returns the alpha, in the 0-1 range.
func (c XYZ) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c XYZ) Components() []float64 { return []float64{c.X, c.Y, c.Z, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *XYZ) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// String returns the color in functional notation.
func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g, %g)", c.X, c.Y, c.Z, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *XYZ) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewXYZ(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
func (c XYZ) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other,
// interpolating every component linearly.
func (c XYZ) Blend(fraction float64, other XYZ) XYZ {
	v := lerpComponents(c.Components(), other.Components(), fraction)
	return NewXYZ(v[0], v[1], v[2], v[3])
}

// SRGB converts to sRGB, clipping colors outside of its gamut.
func (c XYZ) SRGB() SRGB {
	r, g, b := cie.XYZToSRGB(c.X, c.Y, c.Z)
	return NewSRGB(r, g, b, c.alpha)
}

// HSB converts to [HSB].
func (c XYZ) HSB() HSB { return c.SRGB().HSB() }

// HSL converts to [HSL].
func (c XYZ) HSL() HSL { return c.SRGB().HSL() }

// OKLab converts to [OKLab].
func (c XYZ) OKLab() OKLab { return c.SRGB().OKLab() }

// OKLCH converts to [OKLCH].
func (c XYZ) OKLCH() OKLCH { return c.SRGB().OKLCH() }

// XYZ returns c.
func (c XYZ) XYZ() XYZ { return c }

// Lab converts to [Lab].
func (c XYZ) Lab() Lab {
	l, a, b := cie.XYZToLAB(c.X, c.Y, c.Z)
	return NewLab(l, a, b, c.alpha)
}

// CMYK converts to [CMYK].
func (c XYZ) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray converts to [Gray].
func (c XYZ) Gray() Gray { return c.SRGB().Gray() }
