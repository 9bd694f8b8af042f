// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"cogentcore.org/colormodel/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
)

func TestKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		l, c, h float64
	}{
		{"red", 1, 0, 0, 0.6280, 0.2577, 29.234},
		{"green", 0, 128.0 / 255, 0, 0.5198, 0.1769, 142.495},
		{"blue", 0, 0, 1, 0.4520, 0.3132, 264.052},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c, h := LabToLCh(FromSRGB(tt.r, tt.g, tt.b))
			tolassert.EqualTol(t, tt.l, l, 1e-3)
			tolassert.EqualTol(t, tt.c, c, 1e-3)
			tolassert.EqualTol(t, tt.h, h*360, 0.01)
		})
	}

	l, a, b := FromSRGB(1, 1, 1)
	tolassert.EqualTol(t, 1.0, l, 1e-6)
	tolassert.EqualTol(t, 0.0, a, 1e-6)
	tolassert.EqualTol(t, 0.0, b, 1e-6)

	l, a, b = FromSRGB(0, 0, 0)
	tolassert.EqualTol(t, 0.0, l, 1e-9)
	tolassert.EqualTol(t, 0.0, a, 1e-9)
	tolassert.EqualTol(t, 0.0, b, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range [][3]float64{{0.3, 0.2, 0.6}, {1, 0, 0}, {0.05, 0.9, 0.4}, {0.5, 0.5, 0.5}, {1, 1, 1}} {
		r, g, b := ToSRGB(FromSRGB(c[0], c[1], c[2]))
		tolassert.EqualTolSlice(t, c[:], []float64{r, g, b}, 1e-5)

		l, a, bb := FromSRGB(c[0], c[1], c[2])
		l2, a2, b2 := LChToLab(LabToLCh(l, a, bb))
		tolassert.EqualTolSlice(t, []float64{l, a, bb}, []float64{l2, a2, b2}, 1e-9)
	}
}

func TestGamutClip(t *testing.T) {
	// a very saturated OKLCH color outside of sRGB
	r, g, b := ToSRGB(LChToLab(0.7, 0.4, 0.4))
	for _, v := range []float64{r, g, b} {
		tolassert.EqualTol(t, 0.5, v, 0.5)
	}
}

func TestColorful(t *testing.T) {
	for _, c := range [][3]float64{{0.3, 0.2, 0.6}, {0, 1, 0}, {0.05, 0.9, 0.4}, {0.8, 0.7, 0.1}} {
		l, a, b := FromSRGB(c[0], c[1], c[2])
		el, ea, eb := colorful.Color{R: c[0], G: c[1], B: c[2]}.OkLab()
		tolassert.EqualTolSlice(t, []float64{el, ea, eb}, []float64{l, a, b}, 1e-3)
	}
}

func TestLCh(t *testing.T) {
	_, c, h := LabToLCh(0.5, 0, -0.1)
	tolassert.Equal(t, 0.1, c)
	tolassert.Equal(t, 0.75, h)

	_, c, h = LabToLCh(0.5, 0, 0)
	tolassert.Equal(t, 0.0, c)
	tolassert.Equal(t, 0.0, h)

	_, a, b := LChToLab(0.5, 0.2, 0.25)
	tolassert.Equal(t, 0.0, a)
	tolassert.Equal(t, 0.2, b)
}
