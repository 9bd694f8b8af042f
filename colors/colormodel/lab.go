// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/colors/cam/cie"
)

// Lab is a color in the CIE L*a*b* space, referenced to D65.
type Lab struct {

	// L is the lightness, from 0 for black to 100 for white.
	L float64

	// A is the green (negative) to red (positive) axis.
	A float64

	// B is the blue (negative) to yellow (positive) axis.
	B float64

	alpha float64
}

// NewLab returns a new L*a*b* color. Alpha is clamped to 0-1.
func NewLab(l, a, b, alpha float64) Lab {
	return Lab{L: l, A: a, B: b, alpha: clampAlpha(alpha)}
}

// LabFromComponents returns an L*a*b* color from l, a, b and an
// optional alpha.
func LabFromComponents(v []float64) (Lab, error) {
	if err := checkComponents(SpaceLab, v); err != nil {
		return Lab{}, err
	}
	return NewLab(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceLab].
func (c Lab) Space() Spaces { return SpaceLab }

// Alpha returns the alpha, in the 0-1 range.
func (c Lab) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c Lab) Components() []float64 { return []float64{c.L, c.A, c.B, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *Lab) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// String returns the color in functional notation.
func (c Lab) String() string {
	return fmt.Sprintf("lab(%g, %g, %g, %g)", c.L, c.A, c.B, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *Lab) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewLab(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
func (c Lab) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other,
// interpolating every component linearly.
func (c Lab) Blend(fraction float64, other Lab) Lab {
	v := lerpComponents(c.Components(), other.Components(), fraction)
	return NewLab(v[0], v[1], v[2], v[3])
}

// SRGB converts to [SRGB].
func (c Lab) SRGB() SRGB { return c.XYZ().SRGB() }

// HSB converts to [HSB].
func (c Lab) HSB() HSB { return c.SRGB().HSB() }

// HSL converts to [HSL].
func (c Lab) HSL() HSL { return c.SRGB().HSL() }

// OKLab converts to [OKLab].
func (c Lab) OKLab() OKLab { return c.SRGB().OKLab() }

// OKLCH converts to [OKLCH].
func (c Lab) OKLCH() OKLCH { return c.SRGB().OKLCH() }

// XYZ converts to [XYZ].
func (c Lab) XYZ() XYZ {
	x, y, z := cie.LABToXYZ(c.L, c.A, c.B)
	return NewXYZ(x, y, z, c.alpha)
}

// Lab returns c.
func (c Lab) Lab() Lab { return c }

// CMYK converts to [CMYK].
func (c Lab) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray converts to [Gray].
func (c Lab) Gray() Gray { return c.SRGB().Gray() }
