// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"cogentcore.org/colormodel/colors/colormodel"
	"github.com/spf13/pflag"
)

// spaceValue is a [pflag.Value] for a [colormodel.Spaces] field.
type spaceValue colormodel.Spaces

var _ pflag.Value = (*spaceValue)(nil)

func (v *spaceValue) String() string     { return colormodel.Spaces(*v).String() }
func (v *spaceValue) Set(s string) error { return (*colormodel.Spaces)(v).SetString(s) }
func (v *spaceValue) Type() string       { return "space" }

// spacesValue is a repeatable [pflag.Value] for a list of
// [colormodel.Spaces]. Each value may also be a comma separated list.
type spacesValue struct {
	spaces  *[]colormodel.Spaces
	changed bool
}

var _ pflag.Value = (*spacesValue)(nil)

func (v *spacesValue) String() string {
	names := make([]string, len(*v.spaces))
	for i, s := range *v.spaces {
		names[i] = s.String()
	}
	return strings.Join(names, ",")
}

func (v *spacesValue) Set(s string) error {
	if !v.changed {
		*v.spaces = nil
		v.changed = true
	}
	for _, name := range strings.Split(s, ",") {
		sp, err := colormodel.ParseSpaces(name)
		if err != nil {
			return err
		}
		*v.spaces = append(*v.spaces, sp)
	}
	return nil
}

func (v *spacesValue) Type() string { return "spaces" }

// grayValue is a [pflag.Value] for a [colormodel.GrayModes] field.
type grayValue colormodel.GrayModes

var _ pflag.Value = (*grayValue)(nil)

func (v *grayValue) String() string     { return colormodel.GrayModes(*v).String() }
func (v *grayValue) Set(s string) error { return (*colormodel.GrayModes)(v).SetString(s) }
func (v *grayValue) Type() string       { return "gray" }

// spaceNames returns the names of all color spaces, for help text.
func spaceNames() string {
	vals := colormodel.SpacesValues()
	names := make([]string, len(vals))
	for i, s := range vals {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
