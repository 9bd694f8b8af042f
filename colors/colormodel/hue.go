// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "math"

// WrapHue normalizes a hue, given as a fraction of a full turn,
// into the [0, 1) range. Non-finite hues become 0.
func WrapHue(h float64) float64 {
	if h >= 0 && h < 1 {
		return h
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	if h >= 1 {
		return 0
	}
	return h
}

// InterpolateHue interpolates from hue h1 toward hue h2 along the
// shortest arc of the hue circle, returning a wrapped hue.
// Blending 0.95 toward 0.05 passes through 0, not 0.5.
func InterpolateHue(h1, h2, fraction float64) float64 {
	d := h2 - h1
	if d > 0.5 {
		d -= 1
	} else if d < -0.5 {
		d += 1
	}
	return WrapHue(h1 + d*fraction)
}

// HueDistance returns the shortest distance between two hues
// on the hue circle, in the [0, 0.5] range.
func HueDistance(h1, h2 float64) float64 {
	d := math.Abs(WrapHue(h1) - WrapHue(h2))
	return min(d, 1-d)
}
