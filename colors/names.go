// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/colormodel/base/errors"
	"golang.org/x/image/colornames"
)

// level4 are the CSS Color Module Level 4 names that
// [colornames] does not have.
var level4 = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff},
}

// Names contains the sorted CSS standard color names.
var Names = slices.Sorted(maps.Keys(names))

// names maps every name in [Names] to its color.
var names = func() map[string]color.RGBA {
	m := maps.Clone(colornames.Map)
	maps.Copy(m, level4)
	return m
}()

// FromName returns the color value specified
// by the given CSS standard color name, ignoring case.
// It returns an error if the name is not found; see [MustFromName]
// and [LogFromName] for versions that do not return an error.
func FromName(name string) (color.RGBA, error) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// MustFromName returns the color value specified
// by the given CSS standard color name. It panics
// if the name is not found; see [FromName]
// for a version that returns an error.
func MustFromName(name string) color.RGBA {
	return errors.Must1(FromName(name))
}

// LogFromName returns the color value specified
// by the given CSS standard color name. It logs an error
// if the name is not found; see [FromName]
// for a version that returns an error.
func LogFromName(name string) color.RGBA {
	return errors.Log1(FromName(name))
}

// NameOf returns the CSS standard name of the given color,
// and false if it has none.
func NameOf(c color.Color) (string, bool) {
	rc := AsRGBA(c)
	for _, n := range Names {
		if names[n] == rc {
			return n, true
		}
	}
	return "", false
}
