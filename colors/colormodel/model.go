// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormodel provides value types for a color in each of the
// supported color spaces (sRGB, HSB, HSL, OKLab, OKLCH, CIE XYZ,
// CIE L*a*b*, CMYK and gray), the conversions between them, and
// blending in any of them. sRGB is the hub: every other space
// converts through it unless a more direct path exists.
//
// Every type implements [image/color.Color], so values can be used
// anywhere a standard color is accepted.
package colormodel

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/colormodel/colors/cam/cie"
)

// Model is a color value in one specific color space.
// All implementations are plain value types that are safe to
// copy and to use concurrently.
type Model interface {
	color.Color
	fmt.Stringer

	// Space returns the color space of the value.
	Space() Spaces

	// Components returns the channels followed by alpha,
	// in the canonical order of the space.
	Components() []float64

	// Alpha returns the opacity, in the 0-1 range.
	Alpha() float64

	SRGB() SRGB
	HSB() HSB
	HSL() HSL
	OKLab() OKLab
	OKLCH() OKLCH
	XYZ() XYZ
	Lab() Lab
	CMYK() CMYK
	Gray() Gray
}

// DefaultEpsilon is the tolerance used for approximate comparisons
// when none is given.
const DefaultEpsilon = 1e-5

// New returns a color in the given space from a flat component vector,
// which must hold at least [Spaces.MinComponents] values. Alpha is
// optional and defaults to 1. An invalid space is treated as sRGB.
func New(space Spaces, components []float64) (Model, error) {
	switch space {
	case SpaceHSB:
		return HSBFromComponents(components)
	case SpaceHSL:
		return HSLFromComponents(components)
	case SpaceOKLab:
		return OKLabFromComponents(components)
	case SpaceOKLCH:
		return OKLCHFromComponents(components)
	case SpaceXYZ:
		return XYZFromComponents(components)
	case SpaceLab:
		return LabFromComponents(components)
	case SpaceCMYK:
		return CMYKFromComponents(components)
	case SpaceGray:
		return GrayFromComponents(components)
	default:
		return SRGBFromComponents(components)
	}
}

// Convert returns m converted into the given space.
// An invalid space converts to sRGB.
func Convert(m Model, space Spaces) Model {
	switch space {
	case SpaceHSB:
		return m.HSB()
	case SpaceHSL:
		return m.HSL()
	case SpaceOKLab:
		return m.OKLab()
	case SpaceOKLCH:
		return m.OKLCH()
	case SpaceXYZ:
		return m.XYZ()
	case SpaceLab:
		return m.Lab()
	case SpaceCMYK:
		return m.CMYK()
	case SpaceGray:
		return m.Gray()
	default:
		return m.SRGB()
	}
}

// At returns the i-th component of m. It panics if i is out of range.
func At(m Model, i int) float64 {
	return m.Components()[i]
}

// SafeAt returns the i-th component of m, and false if i is out of range.
func SafeAt(m Model, i int) (float64, bool) {
	c := m.Components()
	if i < 0 || i >= len(c) {
		return 0, false
	}
	return c[i], true
}

// ApproxEqual returns whether a and b are in the same space and every
// one of their components differs by less than epsilon.
// A non-positive epsilon uses [DefaultEpsilon].
func ApproxEqual(a, b Model, epsilon float64) bool {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	if a.Space() != b.Space() {
		return false
	}
	ac, bc := a.Components(), b.Components()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !(math.Abs(ac[i]-bc[i]) < epsilon) {
			return false
		}
	}
	return true
}

// IsVisible returns whether m has a non-zero alpha.
func IsVisible(m Model) bool {
	return m.Alpha() > 0
}

// ToPlatform returns the non-premultiplied sRGB channels and alpha
// of m, each clamped to the 0-1 range. This is the only channel data
// that needs to cross into platform color handles.
func ToPlatform(m Model) (r, g, b, a float64) {
	c := m.SRGB().Clamped()
	return c.R, c.G, c.B, c.alpha
}

// FromColor returns the sRGB value of the given standard color.
// [Model] values convert exactly; other colors are read through their
// alpha-premultiplied 16-bit RGBA values. A nil color is transparent black.
func FromColor(c color.Color) SRGB {
	switch c := c.(type) {
	case nil:
		return SRGB{}
	case Model:
		return c.SRGB()
	}
	r, g, b, a := c.RGBA()
	return NewSRGB(cie.SRGBUint32ToFloat(r, g, b, a))
}

// SRGBModel is the standard [color.Model] that converts colors to [SRGB].
var SRGBModel = color.ModelFunc(srgbModel)

func srgbModel(c color.Color) color.Color {
	if s, ok := c.(SRGB); ok {
		return s
	}
	return FromColor(c)
}

// clampAlpha clamps an alpha value to the 0-1 range.
// NaN becomes 0.
func clampAlpha(a float64) float64 {
	if !(a > 0) {
		return 0
	}
	return min(a, 1)
}

// clamp01 clamps a channel value to the 0-1 range.
func clamp01(v float64) float64 { return cie.Clamp01(v) }

// alphaAt returns v[i] if present, otherwise an opaque alpha.
func alphaAt(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 1
}

// overlay copies the leading values of v onto base and returns it.
func overlay(base, v []float64) []float64 {
	copy(base, v)
	return base
}

// lerp linearly interpolates between a and b; fraction is not clamped.
func lerp(a, b, fraction float64) float64 {
	return a + (b-a)*fraction
}

// lerpComponents interpolates each component independently.
func lerpComponents(a, b []float64, fraction float64) []float64 {
	r := make([]float64, len(a))
	for i := range a {
		r[i] = lerp(a[i], b[i], fraction)
	}
	return r
}

var (
	_ Model = SRGB{}
	_ Model = HSB{}
	_ Model = HSL{}
	_ Model = OKLab{}
	_ Model = OKLCH{}
	_ Model = XYZ{}
	_ Model = Lab{}
	_ Model = CMYK{}
	_ Model = Gray{}
)
