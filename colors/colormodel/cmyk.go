// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "fmt"

// CMYK is a color as cyan, magenta, yellow and key (black) ink coverage,
// using the naive device independent conversion from sRGB.
// Converting to CMYK loses information and does not round trip exactly.
type CMYK struct {
	C float64
	M float64
	Y float64
	K float64

	alpha float64
}

// NewCMYK returns a new CMYK color. Alpha is clamped to 0-1.
func NewCMYK(c, m, y, k, a float64) CMYK {
	return CMYK{C: c, M: m, Y: y, K: k, alpha: clampAlpha(a)}
}

// CMYKFromComponents returns a CMYK color from c, m, y, k and an
// optional alpha.
func CMYKFromComponents(v []float64) (CMYK, error) {
	if err := checkComponents(SpaceCMYK, v); err != nil {
		return CMYK{}, err
	}
	return NewCMYK(v[0], v[1], v[2], v[3], alphaAt(v, 4)), nil
}

// Space returns [SpaceCMYK].
func (c CMYK) Space() Spaces { return SpaceCMYK }

// Alpha returns the alpha, in the 0-1 range.
func (c CMYK) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c CMYK) Components() []float64 { return []float64{c.C, c.M, c.Y, c.K, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *CMYK) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// String returns the color in functional notation.
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%g, %g, %g, %g, %g)", c.C, c.M, c.Y, c.K, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *CMYK) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewCMYK(v[0], v[1], v[2], v[3], v[4])
}

// RGBA implements the [color.Color] interface.
func (c CMYK) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other,
// interpolating every component linearly.
func (c CMYK) Blend(fraction float64, other CMYK) CMYK {
	v := lerpComponents(c.Components(), other.Components(), fraction)
	return NewCMYK(v[0], v[1], v[2], v[3], v[4])
}

// Clamped returns the color with every channel clamped to 0-1.
func (c CMYK) Clamped() CMYK {
	return NewCMYK(clamp01(c.C), clamp01(c.M), clamp01(c.Y), clamp01(c.K), c.alpha)
}

// SRGB converts to [SRGB].
func (c CMYK) SRGB() SRGB {
	return NewSRGB((1-c.C)*(1-c.K), (1-c.M)*(1-c.K), (1-c.Y)*(1-c.K), c.alpha)
}

// HSB converts to [HSB].
func (c CMYK) HSB() HSB { return c.SRGB().HSB() }

// HSL converts to [HSL].
func (c CMYK) HSL() HSL { return c.SRGB().HSL() }

// OKLab converts to [OKLab].
func (c CMYK) OKLab() OKLab { return c.SRGB().OKLab() }

// OKLCH converts to [OKLCH].
func (c CMYK) OKLCH() OKLCH { return c.SRGB().OKLCH() }

// XYZ converts to [XYZ].
func (c CMYK) XYZ() XYZ { return c.SRGB().XYZ() }

// Lab converts to [Lab].
func (c CMYK) Lab() Lab { return c.SRGB().Lab() }

// CMYK returns c.
func (c CMYK) CMYK() CMYK { return c }

// Gray converts to [Gray].
func (c CMYK) Gray() Gray { return c.SRGB().Gray() }
