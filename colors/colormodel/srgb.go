// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"image/color"

	"cogentcore.org/colormodel/colors/cam/cie"
	"cogentcore.org/colormodel/colors/cam/oklab"
)

// SRGB is a color in the standard gamma encoded sRGB space.
// Channels are nominally in the 0-1 range and are not
// premultiplied by alpha.
type SRGB struct {

	// R is the red channel.
	R float64

	// G is the green channel.
	G float64

	// B is the blue channel.
	B float64

	alpha float64
}

// NewSRGB returns a new sRGB color. Alpha is clamped to 0-1.
func NewSRGB(r, g, b, a float64) SRGB {
	return SRGB{R: r, G: g, B: b, alpha: clampAlpha(a)}
}

// NewSRGBLinear returns a new sRGB color from linear (gamma decoded)
// channels, which are clamped to 0-1 before encoding.
func NewSRGBLinear(lr, lg, lb, a float64) SRGB {
	r, g, b := cie.SRGBFromLinearClamped(lr, lg, lb)
	return NewSRGB(r, g, b, a)
}

// NewSRGBHex returns an sRGB color from a 0xRRGGBB value
// and the given alpha.
func NewSRGBHex(hex uint32, a float64) SRGB {
	return NewSRGB(
		float64((hex>>16)&0xFF)/255,
		float64((hex>>8)&0xFF)/255,
		float64(hex&0xFF)/255,
		a)
}

// SRGBFromComponents returns an sRGB color from r, g, b and an
// optional alpha.
func SRGBFromComponents(v []float64) (SRGB, error) {
	if err := checkComponents(SpaceSRGB, v); err != nil {
		return SRGB{}, err
	}
	return NewSRGB(v[0], v[1], v[2], alphaAt(v, 3)), nil
}

// Space returns [SpaceSRGB].
func (c SRGB) Space() Spaces { return SpaceSRGB }

// Alpha returns the alpha, in the 0-1 range.
func (c SRGB) Alpha() float64 { return c.alpha }

// Components returns the channels followed by alpha.
func (c SRGB) Components() []float64 { return []float64{c.R, c.G, c.B, c.alpha} }

// SetAlpha sets the alpha, clamped to 0-1.
func (c *SRGB) SetAlpha(a float64) { c.alpha = clampAlpha(a) }

// WithAlpha returns the color with the given alpha, clamped to 0-1.
func (c SRGB) WithAlpha(a float64) SRGB {
	c.SetAlpha(a)
	return c
}

// String returns the color in functional notation.
func (c SRGB) String() string {
	return fmt.Sprintf("srgb(%g, %g, %g, %g)", c.R, c.G, c.B, c.alpha)
}

// SetComponents sets the leading components from v,
// keeping any that v does not reach.
func (c *SRGB) SetComponents(v []float64) {
	v = overlay(c.Components(), v)
	*c = NewSRGB(v[0], v[1], v[2], v[3])
}

// RGBA implements the [color.Color] interface.
// Channels are clamped and then premultiplied by alpha.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	return cie.SRGBFloatToUint32(c.R, c.G, c.B, c.alpha)
}

// AsRGBA returns a standard [color.RGBA] type.
func (c SRGB) AsRGBA() color.RGBA {
	r, g, b, a := cie.SRGBFloatToUint8(c.R, c.G, c.B, c.alpha)
	return color.RGBA{r, g, b, a}
}

// Blend returns the color fraction of the way from c to other,
// interpolating every component linearly. The fraction is not clamped.
func (c SRGB) Blend(fraction float64, other SRGB) SRGB {
	v := lerpComponents(c.Components(), other.Components(), fraction)
	return NewSRGB(v[0], v[1], v[2], v[3])
}

// Clamped returns the color with every channel clamped to 0-1.
func (c SRGB) Clamped() SRGB {
	return NewSRGB(clamp01(c.R), clamp01(c.G), clamp01(c.B), c.alpha)
}

// Linear returns the gamma decoded (linear light) channels.
func (c SRGB) Linear() (lr, lg, lb float64) {
	return cie.SRGBToLinear(c.R, c.G, c.B)
}

// Luminance returns the relative luminance: the ITU-R BT.709
// weighted sum of the linear channels.
func (c SRGB) Luminance() float64 {
	return cie.Luminance(c.Linear())
}

// IsLight returns whether the relative luminance is at least 0.5.
func (c SRGB) IsLight() bool {
	return c.Luminance() >= 0.5
}

// ContrastRatio returns the WCAG contrast ratio between c and other,
// in the 1-21 range.
func (c SRGB) ContrastRatio(other SRGB) float64 {
	l1, l2 := c.Clamped().Luminance(), other.Clamped().Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Inverted returns the color with every channel inverted.
func (c SRGB) Inverted() SRGB {
	return NewSRGB(1-c.R, 1-c.G, 1-c.B, c.alpha)
}

// Tinted returns the color blended amount of the way toward white,
// keeping its alpha.
func (c SRGB) Tinted(amount float64) SRGB {
	return c.Blend(amount, NewSRGB(1, 1, 1, c.alpha))
}

// Shaded returns the color blended amount of the way toward black,
// keeping its alpha.
func (c SRGB) Shaded(amount float64) SRGB {
	return c.Blend(amount, NewSRGB(0, 0, 0, c.alpha))
}

// Hex returns the clamped color as a 0xRRGGBB value, without alpha.
func (c SRGB) Hex() uint32 {
	return uint32(to8(c.R))<<16 | uint32(to8(c.G))<<8 | uint32(to8(c.B))
}

// HexString returns the color as #RRGGBB when it is fully opaque,
// and as #RRGGBBAA otherwise.
func (c SRGB) HexString() string {
	if c.alpha == 1 {
		return fmt.Sprintf("#%06X", c.Hex())
	}
	return fmt.Sprintf("#%06X%02X", c.Hex(), to8(c.alpha))
}

// SRGB returns c.
func (c SRGB) SRGB() SRGB { return c }

// HSB converts using the largest channel as brightness.
// Achromatic colors have a hue of 0.
func (c SRGB) HSB() HSB {
	mx := max(c.R, c.G, c.B)
	mn := min(c.R, c.G, c.B)
	d := mx - mn
	var h, s float64
	if mx > 0 {
		s = d / mx
	}
	if d > 0 {
		switch mx {
		case c.R:
			h = (c.G - c.B) / d
		case c.G:
			h = (c.B-c.R)/d + 2
		default:
			h = (c.R-c.G)/d + 4
		}
		h /= 6
	}
	return NewHSB(h, s, mx, c.alpha)
}

// HSL converts to [HSL].
func (c SRGB) HSL() HSL { return c.HSB().HSL() }

// OKLab converts to [OKLab].
func (c SRGB) OKLab() OKLab {
	l, a, b := oklab.FromSRGB(c.R, c.G, c.B)
	return NewOKLab(l, a, b, c.alpha)
}

// OKLCH converts to [OKLCH].
func (c SRGB) OKLCH() OKLCH { return c.OKLab().OKLCH() }

// XYZ converts to [XYZ].
func (c SRGB) XYZ() XYZ {
	x, y, z := cie.SRGBToXYZ(c.R, c.G, c.B)
	return NewXYZ(x, y, z, c.alpha)
}

// Lab converts to [Lab].
func (c SRGB) Lab() Lab { return c.XYZ().Lab() }

// CMYK converts the clamped color. Black has no cyan, magenta or yellow.
func (c SRGB) CMYK() CMYK {
	cc := c.Clamped()
	k := 1 - max(cc.R, cc.G, cc.B)
	if k >= 1-1e-6 {
		return NewCMYK(0, 0, 0, k, c.alpha)
	}
	return NewCMYK(
		(1-cc.R-k)/(1-k),
		(1-cc.G-k)/(1-k),
		(1-cc.B-k)/(1-k),
		k, c.alpha)
}

// Gray converts using [GrayPerceptual].
func (c SRGB) Gray() Gray { return c.GrayMode(GrayPerceptual) }

// GrayMode reduces the color to a gray level using the given policy.
// Invalid modes use [GrayPerceptual].
func (c SRGB) GrayMode(mode GrayModes) Gray {
	var w float64
	switch mode {
	case GrayLuminance:
		w = c.XYZ().Y
	case GrayLightness:
		w = (max(c.R, c.G, c.B) + min(c.R, c.G, c.B)) / 2
	case GrayAverage:
		w = (c.R + c.G + c.B) / 3
	case GrayValue:
		w = max(c.R, c.G, c.B)
	default:
		w = cie.SRGBFromLinearComp(c.Luminance())
	}
	return NewGray(w, c.alpha)
}

// to8 converts a 0-1 value into a rounded 8-bit channel.
func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
