// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the standard white point, D65 (daylight),
// as X, Y, Z tristimulus values normalized to Y = 1.
var WhiteD65 = [3]float64{0.95047, 1.00000, 1.08883}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space,
// using the D65 reference white.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear,
// using the D65 reference white. The result is not clamped.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl = -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB,
// clipping values that fall outside of the sRGB gamut.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinearClamped(rl, gl, bl)
}
