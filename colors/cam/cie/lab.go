// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// labEpsilon is the (6/29)^3 breakpoint of the L*a*b* compression.
	labEpsilon = 0.008856451679

	// labSlope is the linear slope used below [labEpsilon], (29/6)^2 / 3.
	labSlope = 7.787037037

	labOffset = 16.0 / 116.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labSlope*t + labOffset
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (ft - labOffset) / labSlope
}

// XYZToLAB converts a color from XYZ to L*a*b* coordinates
// using the D65 reference white. L is in the 0-100 range.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to XYZ coordinates
// using the D65 reference white.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0]
	y = LABUncompress(fy) * WhiteD65[1]
	z = LABUncompress(fz) * WhiteD65[2]
	return
}

// LToY converts an L* lightness value (0-100) into
// a relative luminance Y value (0-1).
func LToY(l float64) float64 {
	return LABUncompress((l + 16) / 116)
}

// YToL converts a relative luminance Y value (0-1)
// into an L* lightness value (0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y) - 16
}
