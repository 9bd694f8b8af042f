// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colormodel/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.887904, LABCompress(0.7))
	tolassert.Equal(t, 0.1379544, LABCompress(0.000003))
	tolassert.Equal(t, 0.21600002, LABUncompress(0.6))
	tolassert.EqualTol(t, 0.000003, LABUncompress(LABCompress(0.000003)), 1e-9)

	l, a, b := XYZToLAB(WhiteD65[0], WhiteD65[1], WhiteD65[2])
	tolassert.EqualTol(t, 100.0, l, 1e-6)
	tolassert.EqualTol(t, 0.0, a, 1e-6)
	tolassert.EqualTol(t, 0.0, b, 1e-6)

	l, a, b = XYZToLAB(SRGBToXYZ(1, 0, 0))
	tolassert.EqualTol(t, 53.24, l, 0.05)
	tolassert.EqualTol(t, 80.09, a, 0.05)
	tolassert.EqualTol(t, 67.20, b, 0.05)

	x, y, z := LABToXYZ(28, 14, 36.2)
	l, a, b = XYZToLAB(x, y, z)
	tolassert.EqualTol(t, 28.0, l, 1e-6)
	tolassert.EqualTol(t, 14.0, a, 1e-6)
	tolassert.EqualTol(t, 36.2, b, 1e-6)

	tolassert.EqualTol(t, 0.0, LToY(0), 1e-9)
	tolassert.EqualTol(t, 1.0, LToY(100), 1e-9)
	tolassert.EqualTol(t, 50.0, YToL(LToY(50)), 1e-9)
	tolassert.EqualTol(t, 3.0, YToL(LToY(3)), 1e-9)
}

func TestLABColorful(t *testing.T) {
	for _, c := range [][3]float64{{0.3, 0.2, 0.6}, {0, 1, 0}, {0.05, 0.9, 0.4}, {0.8, 0.7, 0.1}} {
		l, a, b := XYZToLAB(SRGBToXYZ(c[0], c[1], c[2]))
		el, ea, eb := colorful.Color{R: c[0], G: c[1], B: c[2]}.Lab()
		tolassert.EqualTolSlice(t, []float64{el * 100, ea * 100, eb * 100}, []float64{l, a, b}, 0.1)
	}
}
