// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"

	"cogentcore.org/colormodel/colors/colormodel"
)

// Ramp returns a new image of the given size filled with a horizontal
// gradient from x on the left to y on the right, blended in the given
// color space.
func Ramp(space colormodel.Spaces, x, y color.Color, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cols := BlendSteps(space, width, x, y)
	for px, c := range cols {
		for py := range height {
			img.SetRGBA(px, py, c)
		}
	}
	return img
}

// ToUniform converts the given image to a uniform [color.RGBA] color,
// using its top left pixel.
func ToUniform(img image.Image) color.RGBA {
	if img == nil {
		return color.RGBA{}
	}
	b := img.Bounds()
	return AsRGBA(img.At(b.Min.X, b.Min.Y))
}
