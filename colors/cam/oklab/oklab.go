// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the OKLab perceptual color space
// and its polar form OKLCH, as defined by Björn Ottosson:
// https://bottosson.github.io/posts/oklab/
package oklab

import (
	"math"

	"cogentcore.org/colormodel/colors/cam/cie"
)

// FromLinearSRGB converts linear sRGB components into OKLab
// lightness l and the opponent axes a and b.
func FromLinearSRGB(rl, gl, bl float64) (l, a, b float64) {
	lc := math.Cbrt(0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl)
	mc := math.Cbrt(0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl)
	sc := math.Cbrt(0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return
}

// ToLinearSRGB converts OKLab components into linear sRGB.
// The result is not clamped and may fall outside of the sRGB gamut.
func ToLinearSRGB(l, a, b float64) (rl, gl, bl float64) {
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc = lc * lc * lc
	mc = mc * mc * mc
	sc = sc * sc * sc

	rl = 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	gl = -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl = -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return
}

// FromSRGB converts gamma encoded sRGB components into OKLab.
func FromSRGB(r, g, b float64) (l, a, bb float64) {
	return FromLinearSRGB(cie.SRGBToLinear(r, g, b))
}

// ToSRGB converts OKLab components into gamma encoded sRGB,
// clipping values that fall outside of the sRGB gamut.
func ToSRGB(l, a, b float64) (r, g, bb float64) {
	return cie.SRGBFromLinearClamped(ToLinearSRGB(l, a, b))
}
