// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
)

// CompareUint8 returns true if two numbers differ by at most tol.
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if each 8-bit channel of the two
// colors, alpha included, differs by at most tol.
func CompareColors(a, b color.Color, tol int) bool {
	cc := color.RGBAModel.Convert(a).(color.RGBA)
	ic := color.RGBAModel.Convert(b).(color.RGBA)
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

// CompareImages returns the first point at which the two images
// have colors differing by more than tol, and false if there is none.
// Images with different bounds differ at their minimum point.
func CompareImages(a, b image.Image, tol int) (image.Point, bool) {
	ab := a.Bounds()
	if ab != b.Bounds() {
		return ab.Min, true
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			if !CompareColors(a.At(x, y), b.At(x, y), tol) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}
