// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"testing"

	"cogentcore.org/colormodel/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
)

// TestColorful checks the conversions against an independent implementation.
func TestColorful(t *testing.T) {
	for _, c := range testColors() {
		ref := colorful.Color{R: c.R, G: c.G, B: c.B}
		chromatic := c.HSB().S > 0.01

		h, s, v := ref.Hsv()
		hsb := c.HSB()
		tolassert.EqualTol(t, s, hsb.S, 1e-9, c.String())
		tolassert.EqualTol(t, v, hsb.B, 1e-9, c.String())
		if chromatic {
			tolassert.EqualTol(t, 0.0, HueDistance(h/360, hsb.H), 1e-9, c.String())
		}

		h, s, l := ref.Hsl()
		hsl := c.HSL()
		tolassert.EqualTol(t, l, hsl.L, 1e-9, c.String())
		if chromatic {
			tolassert.EqualTol(t, s, hsl.S, 1e-9, c.String())
			tolassert.EqualTol(t, 0.0, HueDistance(h/360, hsl.H), 1e-9, c.String())
		}

		ol, oa, ob := ref.OkLab()
		tolassert.EqualTolSlice(t, []float64{ol, oa, ob, c.Alpha()}, c.OKLab().Components(), 1e-3, c.String())

		ll, lc, lh := ref.OkLch()
		lch := c.OKLCH()
		tolassert.EqualTol(t, ll, lch.L, 1e-3, c.String())
		tolassert.EqualTol(t, lc, lch.C, 1e-3, c.String())
		if lch.C > 0.05 {
			tolassert.EqualTol(t, 0.0, HueDistance(lh/360, lch.H), 1e-3, c.String())
		}

		x, y, z := ref.Xyz()
		tolassert.EqualTolSlice(t, []float64{x, y, z, c.Alpha()}, c.XYZ().Components(), 1e-3, c.String())

		el, ea, eb := ref.Lab()
		tolassert.EqualTolSlice(t, []float64{el * 100, ea * 100, eb * 100, c.Alpha()}, c.Lab().Components(), 0.1, c.String())
	}
}
