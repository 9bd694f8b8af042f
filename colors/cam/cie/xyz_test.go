// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colormodel/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBToXYZ(1, 1, 1)
	tolassert.EqualTol(t, WhiteD65[0], x, 1e-3)
	tolassert.EqualTol(t, WhiteD65[1], y, 1e-3)
	tolassert.EqualTol(t, WhiteD65[2], z, 1e-3)

	x, y, z = SRGBLinToXYZ(0.12, 0.34, 0.78)
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.12, rl, 1e-5)
	tolassert.EqualTol(t, 0.34, gl, 1e-5)
	tolassert.EqualTol(t, 0.78, bl, 1e-5)

	// out of gamut values are clipped
	r, g, b := XYZToSRGB(0.1, 0.8, 0.05)
	tolassert.Equal(t, 0.0, r)
	tolassert.Equal(t, 1.0, g)
	tolassert.Equal(t, 0.0, b)
}

func TestXYZColorful(t *testing.T) {
	for _, c := range [][3]float64{{0.3, 0.2, 0.6}, {1, 0, 0}, {0.05, 0.9, 0.4}, {0.5, 0.5, 0.5}} {
		x, y, z := SRGBToXYZ(c[0], c[1], c[2])
		ex, ey, ez := colorful.Color{R: c[0], G: c[1], B: c[2]}.Xyz()
		tolassert.EqualTolSlice(t, []float64{ex, ey, ez}, []float64{x, y, z}, 1e-3)
	}
}
