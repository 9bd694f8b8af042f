// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import "math"

// LabToLCh converts rectangular OKLab coordinates into the polar
// OKLCH form: chroma c and hue h as a fraction of a full turn in [0, 1).
func LabToLCh(l, a, b float64) (lo, c, h float64) {
	lo = l
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) / (2 * math.Pi)
	if h < 0 {
		h += 1
	}
	if h >= 1 {
		h = 0
	}
	return
}

// LChToLab converts polar OKLCH coordinates, with hue h as a fraction
// of a full turn, into rectangular OKLab coordinates.
func LChToLab(l, c, h float64) (lo, a, b float64) {
	sin, cos := math.Sincos(h * 2 * math.Pi)
	return l, c * cos, c * sin
}
