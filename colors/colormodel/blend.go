// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

// Blend converts x and y into the given space, blends them there, and
// returns the result in that space. A fraction of 0 gives x and 1 gives
// y; other values, including those outside of 0-1, interpolate or
// extrapolate. An invalid space blends in sRGB.
func Blend(space Spaces, fraction float64, x, y Model) Model {
	switch space {
	case SpaceHSB:
		return x.HSB().Blend(fraction, y.HSB())
	case SpaceHSL:
		return x.HSL().Blend(fraction, y.HSL())
	case SpaceOKLab:
		return x.OKLab().Blend(fraction, y.OKLab())
	case SpaceOKLCH:
		return x.OKLCH().Blend(fraction, y.OKLCH())
	case SpaceXYZ:
		return x.XYZ().Blend(fraction, y.XYZ())
	case SpaceLab:
		return x.Lab().Blend(fraction, y.Lab())
	case SpaceCMYK:
		return x.CMYK().Blend(fraction, y.CMYK())
	case SpaceGray:
		return x.Gray().Blend(fraction, y.Gray())
	default:
		return x.SRGB().Blend(fraction, y.SRGB())
	}
}

// BlendSRGB is like [Blend] but returns the result converted to sRGB.
func BlendSRGB(space Spaces, fraction float64, x, y Model) SRGB {
	return Blend(space, fraction, x, y).SRGB()
}
