// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"math"
)

// HSB is a color as hue, saturation and brightness (also known as HSV).
type HSB struct {

	// H is the hue as a fraction of a full turn, always in [0, 1).
	H float64

	// S is the saturation.
	S float64

	// B is the brightness, the value of the largest sRGB channel.
	B float64

	alpha float64
}

// NewHSB returns a new HSB color. The hue is wrapped into
// [0, 1) and alpha is clamped to 0-1.
func NewHSB(h, s, b, a float64) HSB {
	return HSB{H: WrapHue(h), S: s, B: b, alpha: clampAlpha(a)}
}

// NewHSBDegrees returns a new HSB color with the hue given in degrees.
func NewHSBDegrees(h, s, b, a float64) HSB {
	return NewHSB(h/360, s, b, a)
}

// HSBFromComponents returns an HSB color from h, s, b and an
// optional alpha.
func HSBFromComponents(v []float64) (HSB, error) {
	if err := checkComponents(SpaceHSB, v); err != nil {
		return HSB{}, err
	}
	return NewHSB(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceHSB].
func (c HSB) Space() Spaces { return SpaceHSB }

// Alpha returns the alpha, in the 0-1 range.
func (c HSB) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c HSB) Components() []float64 { return []float64{c.H, c.S, c.B, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *HSB) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// HueDegrees returns the hue in degrees, in [0, 360).
func (c HSB) HueDegrees() float64 { return c.H * 360 }

// String returns the color in functional notation.
func (c HSB) String() string {
	return fmt.Sprintf("hsb(%g, %g, %g, %g)", c.H, c.S, c.B, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *HSB) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewHSB(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
func (c HSB) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

// Blend returns the color fraction of the way from c to other.
// The hue follows the shortest arc around the hue circle.
func (c HSB) Blend(fraction float64, other HSB) HSB {
	return NewHSB(
		InterpolateHue(c.H, other.H, fraction),
		lerp(c.S, other.S, fraction),
		lerp(c.B, other.B, fraction),
		lerp(c.alpha, other.alpha, fraction))
}

// Clamped returns the color with saturation and brightness clamped to 0-1.
func (c HSB) Clamped() HSB {
	return NewHSB(c.H, clamp01(c.S), clamp01(c.B), c.alpha)
}

// SRGB converts with the standard six sector algorithm.
func (c HSB) SRGB() SRGB {
	v := c.B
	if c.S <= 0 {
		return NewSRGB(v, v, v, c.alpha)
	}
	h := WrapHue(c.H) * 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - c.S)
	q := v * (1 - c.S*f)
	t := v * (1 - c.S*(1-f))
	switch int(i) % 6 {
	case 0:
		return NewSRGB(v, t, p, c.alpha)
	case 1:
		return NewSRGB(q, v, p, c.alpha)
	case 2:
		return NewSRGB(p, v, t, c.alpha)
	case 3:
		return NewSRGB(p, q, v, c.alpha)
	case 4:
		return NewSRGB(t, p, v, c.alpha)
	default:
		return NewSRGB(v, p, q, c.alpha)
	}
}

// HSB returns c.
func (c HSB) HSB() HSB { return c }

// HSL converts directly. Black and fully desaturated colors
// have an HSL saturation of 0.
func (c HSB) HSL() HSL {
	l := c.B * (1 - c.S/2)
	var s float64
	if l > 0 && l < c.B && l < 1 {
		s = (c.B - l) / min(l, 1-l)
	}
	return NewHSL(c.H, s, l, c.alpha)
}

// OKLab converts to [OKLab].
func (c HSB) OKLab() OKLab { return c.SRGB().OKLab() }

// OKLCH converts to [OKLCH].
func (c HSB) OKLCH() OKLCH { return c.SRGB().OKLCH() }

// XYZ converts to [XYZ].
func (c HSB) XYZ() XYZ { return c.SRGB().XYZ() }

// Lab converts to [Lab].
func (c HSB) Lab() Lab { return c.SRGB().Lab() }

// CMYK converts to [CMYK].
func (c HSB) CMYK() CMYK { return c.SRGB().CMYK() }

// Gray converts to [Gray].
func (c HSB) Gray() Gray { return c.SRGB().Gray() }
