// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/colormodel/colors/colormodel"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the OKLCH space.
// This is useful, for example, for assigning colors in graphs.
// Colors outside of the sRGB gamut are clipped.
func Spaced(idx int) color.RGBA {
	return SpacedModel(idx).SRGB().AsRGBA()
}

// SpacedModel is like [Spaced], but returns the OKLCH value.
func SpacedModel(idx int) colormodel.OKLCH {
	if idx < 0 {
		idx = -idx
	}
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 145, 100, 340, 200, 60, 300}
	loffs := []float64{0, -0.05, 0, 0.05, 0, 0, 0.03, 0}
	lights := []float64{0.62, 0.78, 0.48, 0.68, 0.82}
	chromas := []float64{0.17, 0.14, 0.14, 0.06, 0.06}
	ncats := len(hues)
	nlc := len(lights)
	hi := idx % ncats
	hr := idx / ncats
	lci := hr % nlc
	return colormodel.NewOKLCH(lights[lci]+loffs[hi], chromas[lci], hues[hi]/360, 1)
}
