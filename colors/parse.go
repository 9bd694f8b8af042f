// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/colormodel/base/errors"
	"cogentcore.org/colormodel/colors/colormodel"
)

// Parse returns a color model value from the given string,
// keeping the color space that the string names. It accepts
// the following types of strings:
//   - hex values (#RGB, #RGBA, #RRGGBB, #RRGGBBAA, 0x...)
//   - standard CSS color names, "transparent", and "none" or "off"
//   - functional notation naming any color space, such as
//     oklch(0.7, 0.1, 0.5) or hsl(210deg, 50%, 40%, 1): components are
//     separated by commas, spaces or a slash, a % suffix divides by 100,
//     a deg suffix divides by 360, and alpha is optional.
//     rgb() and rgba() take 0-255 channels, as in CSS; srgb() takes 0-1.
//   - transformations of the base color: inverse, complement, lighten-PCT,
//     darken-PCT, saturate-PCT, desaturate-PCT, clearer-PCT, opaquer-PCT,
//     tint-PCT, shade-PCT, spin-DEG and blend-PCT-color, where PCT is a
//     percentage (10 = 10%) and DEG is a hue rotation in degrees.
func Parse(str string, base color.Color) (colormodel.Model, error) {
	str = strings.TrimSpace(str)
	lstr := strings.ToLower(str)
	switch {
	case lstr == "", lstr == "none", lstr == "off", lstr == "transparent":
		return colormodel.SRGB{}, nil
	case lstr[0] == '#' || strings.HasPrefix(lstr, "0x"):
		c, err := colormodel.ParseHex(str)
		if err != nil {
			return nil, fmt.Errorf("colors.Parse: %w", err)
		}
		return c, nil
	case strings.HasSuffix(lstr, ")"):
		return parseFunc(lstr)
	case lstr == "inverse":
		if base == nil {
			return nil, errors.New("colors.Parse: base color must be provided for inverse color transformation")
		}
		return colormodel.FromColor(base).Inverted(), nil
	case lstr == "complement":
		if base == nil {
			return nil, errors.New("colors.Parse: base color must be provided for complement color transformation")
		}
		return colormodel.FromColor(base).HSL().Complement(), nil
	}
	if c, err := FromName(lstr); err == nil {
		return colormodel.FromColor(c), nil
	}
	if hidx := strings.Index(lstr, "-"); hidx > 0 {
		return parseTransform(lstr[:hidx], lstr[hidx+1:], base)
	}
	// bare hex digits, as accepted by [colormodel.ParseHex]
	if c, err := colormodel.ParseHex(str); err == nil {
		return c, nil
	}
	return nil, fmt.Errorf("colors.Parse: could not process %q", str)
}

// FromString returns a standard color value from the given string.
// See [Parse] for the accepted syntax. It returns any resulting error;
// see [MustFromString] and [LogFromString] for versions that do not
// return an error.
func FromString(str string, base color.Color) (color.RGBA, error) {
	m, err := Parse(str, base)
	if err != nil {
		return color.RGBA{}, err
	}
	return m.SRGB().AsRGBA(), nil
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string, base color.Color) color.RGBA {
	return errors.Must1(FromString(str, base))
}

// LogFromString returns a color value from the given string.
// It logs any resulting error; see [FromString] for
// more information and a version that returns an error.
func LogFromString(str string, base color.Color) color.RGBA {
	return errors.Log1(FromString(str, base))
}

// FromAny returns a color from the given value of any type.
// It handles values of types string and [color.Color].
func FromAny(val any, base color.Color) (color.RGBA, error) {
	switch valv := val.(type) {
	case string:
		return FromString(valv, base)
	case color.Color:
		return AsRGBA(valv), nil
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromAny: could not set color from value %v of type %T", val, val)
	}
}

// parseFunc parses functional notation such as oklch(0.7 0.1 0.5 / 0.5).
func parseFunc(lstr string) (colormodel.Model, error) {
	open := strings.Index(lstr, "(")
	if open <= 0 {
		return nil, fmt.Errorf("colors.Parse: missing color space name in %q", lstr)
	}
	name := strings.TrimSpace(lstr[:open])
	args := strings.NewReplacer(",", " ", "/", " ").Replace(lstr[open+1 : len(lstr)-1])
	fields := strings.Fields(args)

	scale := 1.0
	switch name {
	case "rgb", "rgba":
		name, scale = "srgb", 255
	case "hsla":
		name = "hsl"
	}
	space, err := colormodel.ParseSpaces(name)
	if err != nil {
		return nil, fmt.Errorf("colors.Parse: %w", err)
	}
	comps := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseComponent(f)
		if err != nil {
			return nil, fmt.Errorf("colors.Parse: component %d of %q: %w", i, lstr, err)
		}
		if i < space.MinComponents() && !strings.HasSuffix(f, "%") {
			v /= scale
		}
		comps[i] = v
	}
	m, err := colormodel.New(space, comps)
	if err != nil {
		return nil, fmt.Errorf("colors.Parse: %w", err)
	}
	return m, nil
}

// parseComponent parses one number with an optional %, deg or turn unit.
func parseComponent(s string) (float64, error) {
	div := 1.0
	switch {
	case strings.HasSuffix(s, "%"):
		s, div = strings.TrimSuffix(s, "%"), 100
	case strings.HasSuffix(s, "deg"):
		s, div = strings.TrimSuffix(s, "deg"), 360
	case strings.HasSuffix(s, "turn"):
		s = strings.TrimSuffix(s, "turn")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v / div, nil
}

// parseTransform applies a named transformation with a numeric
// argument to the base color. The argument is a percent, except
// for spin where it is in degrees.
func parseTransform(cmd, arg string, base color.Color) (colormodel.Model, error) {
	if base == nil {
		return nil, fmt.Errorf("colors.Parse: base color must be provided for %s color transformation", cmd)
	}
	other := ""
	if cmd == "blend" {
		idx := strings.Index(arg, "-")
		if idx < 0 {
			return nil, fmt.Errorf("colors.Parse: blend color spec not found; format is: blend-PCT-color, got: %v", arg)
		}
		arg, other = arg[:idx], arg[idx+1:]
	}
	pct, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, fmt.Errorf("colors.Parse: error getting amount from %q: %w", arg, err)
	}
	f := pct / 100
	b := colormodel.FromColor(base)
	hsl := b.HSL()
	switch cmd {
	case "lighten":
		hsl.L = min(hsl.L+f, 1)
		return hsl, nil
	case "darken":
		hsl.L = max(hsl.L-f, 0)
		return hsl, nil
	case "saturate":
		hsl.S = min(hsl.S+f, 1)
		return hsl, nil
	case "desaturate":
		hsl.S = max(hsl.S-f, 0)
		return hsl, nil
	case "clearer":
		return b.WithAlpha(b.Alpha() - f), nil
	case "opaquer":
		return b.WithAlpha(b.Alpha() + f), nil
	case "tint":
		return b.Tinted(f), nil
	case "shade":
		return b.Shaded(f), nil
	case "spin":
		return hsl.RotatedHue(pct / 360), nil
	case "blend":
		oc, err := Parse(other, base)
		if err != nil {
			return nil, err
		}
		return b.Blend(f, oc.SRGB()), nil
	}
	return nil, fmt.Errorf("colors.Parse: unknown color transformation %q", cmd)
}
