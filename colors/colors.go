// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides functions for working with standard
// [color.Color] values in terms of the color models of package
// [colormodel]: parsing, hex encoding, and blending in a named space.
package colors

import (
	"fmt"
	"image/color"

	"cogentcore.org/colormodel/base/errors"
	"cogentcore.org/colormodel/colors/colormodel"
)

// AsRGBA returns the given color as an RGBA color.
// A nil color is transparent black.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as rgba(r, g, b, a) otherwise.
func AsString(c color.Color) string {
	if c == nil {
		return "nil"
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// FromHex parses the given hex color string
// and returns the resulting color. It accepts the
// 3, 4, 6 and 8 digit forms with an optional # or 0x.
// It returns any resulting error; see [MustFromHex] and
// [LogFromHex] for versions that do not return an error.
func FromHex(hex string) (color.RGBA, error) {
	c, err := colormodel.ParseHex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	return c.AsRGBA(), nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// LogFromHex parses the given hex color string
// and returns the resulting color. It logs any
// resulting error; see [FromHex] for a version
// that returns an error.
func LogFromHex(hex string) color.RGBA {
	return errors.Log1(FromHex(hex))
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string: #RRGGBB
// for opaque colors and #RRGGBBAA otherwise.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	return colormodel.FromColor(c).HexString()
}

// Inverse returns the inverse of the given color
// (255 - each component); it does not change the
// alpha channel.
func Inverse(c color.Color) color.RGBA {
	return colormodel.FromColor(c).Inverted().AsRGBA()
}

// WithAlpha returns the given color with its alpha
// set to the given 0-1 value.
func WithAlpha(c color.Color, a float64) color.RGBA {
	return colormodel.FromColor(c).WithAlpha(a).AsRGBA()
}
