// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"log/slog"

	"cogentcore.org/colormodel/colors/colormodel"
)

// Blend returns a color that is the given fraction of the way from x
// to y, blended in the given color space: 0 gives x, 1 gives y, and
// values outside of 0-1 extrapolate. Both colors are converted into
// the space, blended there, and converted back. An unknown space is
// logged and blends in sRGB.
func Blend(space colormodel.Spaces, fraction float64, x, y color.Color) color.RGBA {
	return BlendModel(space, fraction, x, y).AsRGBA()
}

// BlendModel is like [Blend], but returns the full precision sRGB value.
func BlendModel(space colormodel.Spaces, fraction float64, x, y color.Color) colormodel.SRGB {
	if !space.IsValid() {
		slog.Warn("colors.Blend: unknown color space, using srgb", "space", space)
	}
	return colormodel.BlendSRGB(space, fraction, colormodel.FromColor(x), colormodel.FromColor(y))
}

// BlendSteps returns n colors evenly spaced from x to y, inclusive,
// blended in the given color space.
func BlendSteps(space colormodel.Spaces, n int, x, y color.Color) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{Blend(space, 0, x, y)}
	}
	res := make([]color.RGBA, n)
	for i := range res {
		res[i] = Blend(space, float64(i)/float64(n-1), x, y)
	}
	return res
}
