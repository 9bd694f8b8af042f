// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Spaces names one of the closed set of supported color spaces.
type Spaces int32

const (
	// SpaceSRGB is the standard gamma encoded RGB space, the hub
	// through which every other space converts.
	SpaceSRGB Spaces = iota

	// SpaceHSB is hue, saturation, brightness (also known as HSV).
	SpaceHSB

	// SpaceHSL is hue, saturation, lightness.
	SpaceHSL

	// SpaceOKLab is the perceptually uniform OKLab space.
	SpaceOKLab

	// SpaceOKLCH is the polar (lightness, chroma, hue) form of OKLab.
	SpaceOKLCH

	// SpaceXYZ is CIE 1931 XYZ referenced to D65.
	SpaceXYZ

	// SpaceLab is CIE L*a*b* referenced to D65.
	SpaceLab

	// SpaceCMYK is the naive subtractive cyan, magenta, yellow, key space.
	SpaceCMYK

	// SpaceGray is a single white level.
	SpaceGray
)

const spacesN Spaces = 9

var _SpacesValues = []Spaces{SpaceSRGB, SpaceHSB, SpaceHSL, SpaceOKLab, SpaceOKLCH, SpaceXYZ, SpaceLab, SpaceCMYK, SpaceGray}

var _SpacesNames = []string{"srgb", "hsb", "hsl", "oklab", "oklch", "xyz", "lab", "cmyk", "gray"}

var _SpacesNameToValueMap = map[string]Spaces{
	"srgb": SpaceSRGB, "rgb": SpaceSRGB,
	"hsb": SpaceHSB, "hsv": SpaceHSB,
	"hsl":   SpaceHSL,
	"oklab": SpaceOKLab,
	"oklch": SpaceOKLCH,
	"xyz":   SpaceXYZ,
	"lab":   SpaceLab,
	"cmyk":  SpaceCMYK,
	"gray":  SpaceGray, "grey": SpaceGray,
}

// minimum number of components, alpha excluded
var _SpacesArity = []int{3, 3, 3, 3, 3, 3, 3, 4, 1}

// String returns the string representation of this Spaces value.
func (i Spaces) String() string {
	if i.IsValid() {
		return _SpacesNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Spaces value from its string representation,
// and returns an error if the string is invalid. Matching is case
// insensitive and accepts the aliases rgb, hsv and grey.
func (i *Spaces) SetString(s string) error {
	if val, ok := _SpacesNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Spaces", s)
}

// ParseSpaces returns the Spaces value with the given name.
func ParseSpaces(s string) (Spaces, error) {
	var i Spaces
	err := i.SetString(s)
	return i, err
}

// SpacesValues returns all possible values for the type Spaces.
func SpacesValues() []Spaces { return _SpacesValues }

// Values returns all possible values for the type Spaces.
func (i Spaces) Values() []Spaces { return _SpacesValues }

// IsValid returns whether the value is a valid option for type Spaces.
func (i Spaces) IsValid() bool { return i >= 0 && i < spacesN }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Spaces) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Spaces) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// MinComponents returns the smallest component vector accepted
// for the space: its channel count, alpha being optional.
// Invalid values report the sRGB arity.
func (i Spaces) MinComponents() int {
	if !i.IsValid() {
		return _SpacesArity[SpaceSRGB]
	}
	return _SpacesArity[i]
}

// Arity returns the number of components, alpha included,
// that the space's Components method returns.
func (i Spaces) Arity() int { return i.MinComponents() + 1 }

// GrayModes are the policies for reducing an sRGB color to a single gray level.
type GrayModes int32

const (
	// GrayPerceptual gamma encodes the ITU-R BT.709 relative luminance
	// of the linear channels, so that the gray has the same luminance
	// as the color. It is the default.
	GrayPerceptual GrayModes = iota

	// GrayLuminance uses the linear CIE Y of the color as the gray level.
	GrayLuminance

	// GrayLightness uses the HSL lightness, the midpoint of the
	// largest and smallest channel.
	GrayLightness

	// GrayAverage is the plain mean of the three channels.
	GrayAverage

	// GrayValue uses the HSB brightness, the largest channel.
	GrayValue
)

const grayModesN GrayModes = 5

var _GrayModesNames = []string{"perceptual", "luminance", "lightness", "average", "value"}

// String returns the string representation of this GrayModes value.
func (i GrayModes) String() string {
	if i.IsValid() {
		return _GrayModesNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the GrayModes value from its string representation,
// and returns an error if the string is invalid.
func (i *GrayModes) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for j, n := range _GrayModesNames {
		if n == s {
			*i = GrayModes(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type GrayModes", s)
}

// IsValid returns whether the value is a valid option for type GrayModes.
func (i GrayModes) IsValid() bool { return i >= 0 && i < grayModesN }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i GrayModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *GrayModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
