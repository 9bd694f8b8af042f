// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
)

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value.
// Used in converting from XYZ to sRGB.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFromLinearClamped clamps the given linear values to the
// displayable 0-1 range and then adds gamma correction.
// Values outside of the sRGB gamut are clipped, not wrapped.
func SRGBFromLinearClamped(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinear(Clamp01(rl), Clamp01(gl), Clamp01(bl))
}

// Luminance returns the relative luminance of the given linear
// sRGB components, using the ITU-R BT.709 weights.
func Luminance(rl, gl, bl float64) float64 {
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// Clamp01 clamps the given value to the 0-1 range.
func Clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// SRGBFloatToUint8 converts the given non-alpha-premultiplied sRGB float64
// values to alpha-premultiplied sRGB uint8 values.
func SRGBFloatToUint8(rf, gf, bf, af float64) (r, g, b, a uint8) {
	r = uint8(Clamp01(rf)*Clamp01(af)*255 + 0.5)
	g = uint8(Clamp01(gf)*Clamp01(af)*255 + 0.5)
	b = uint8(Clamp01(bf)*Clamp01(af)*255 + 0.5)
	a = uint8(Clamp01(af)*255 + 0.5)
	return
}

// SRGBFloatToUint32 converts the given non-alpha-premultiplied sRGB float64
// values to alpha-premultiplied sRGB uint32 values.
func SRGBFloatToUint32(rf, gf, bf, af float64) (r, g, b, a uint32) {
	r = uint32(Clamp01(rf)*Clamp01(af)*65535 + 0.5)
	g = uint32(Clamp01(gf)*Clamp01(af)*65535 + 0.5)
	b = uint32(Clamp01(bf)*Clamp01(af)*65535 + 0.5)
	a = uint32(Clamp01(af)*65535 + 0.5)
	return
}

// SRGBUint8ToFloat converts the given alpha-premultiplied sRGB uint8 values
// to non-alpha-premultiplied sRGB float64 values. A zero alpha gives zero components.
func SRGBUint8ToFloat(r, g, b, a uint8) (fr, fg, fb, fa float64) {
	fa = float64(a) / 255
	if a == 0 {
		return
	}
	fr = (float64(r) / 255) / fa
	fg = (float64(g) / 255) / fa
	fb = (float64(b) / 255) / fa
	return
}

// SRGBUint32ToFloat converts the given alpha-premultiplied sRGB uint32 values
// to non-alpha-premultiplied sRGB float64 values. A zero alpha gives zero components.
func SRGBUint32ToFloat(r, g, b, a uint32) (fr, fg, fb, fa float64) {
	fa = float64(a) / 65535
	if a == 0 {
		return
	}
	fr = (float64(r) / 65535) / fa
	fg = (float64(g) / 65535) / fa
	fb = (float64(b) / 65535) / fa
	return
}
