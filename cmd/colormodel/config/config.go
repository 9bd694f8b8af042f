// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the colormodel tool.
package config

import (
	"fmt"

	"cogentcore.org/colormodel/base/iox/tomlx"
	"cogentcore.org/colormodel/colors/colormodel"
)

// Config is the main config struct that contains all of the configuration
// options for the colormodel tool. It can be loaded from one or more TOML
// files, with command line flags taking precedence over file values.
type Config struct {

	// Space is the color space used for blending and palette conversion.
	Space colormodel.Spaces `toml:"space"`

	// Fraction is the blend fraction: 0 returns the first color and 1
	// the second one. Values outside of [0, 1] extrapolate.
	Fraction float64 `toml:"fraction"`

	// Steps is the number of evenly spaced colors printed by blend.
	// If it is 0 or 1, the single color at Fraction is printed.
	Steps int `toml:"steps"`

	// Gray is the policy used when converting to grayscale.
	Gray colormodel.GrayModes `toml:"gray"`

	// Color is whether to print color swatches and colored log levels.
	Color bool `toml:"color"`

	// Verbose is whether to log info messages.
	Verbose bool `toml:"verbose"`

	// VeryVerbose is whether to log debug messages.
	VeryVerbose bool `toml:"very_verbose"`

	// Quiet is whether to only log errors.
	Quiet bool `toml:"quiet"`

	// the configuration options for the convert command
	Convert Convert `toml:"convert"`

	// the configuration options for the blend command
	Blend Blend `toml:"blend"`

	// the configuration options for the hex command
	Hex Hex `toml:"hex"`

	// the configuration options for the palette command
	Palette Palette `toml:"palette"`
}

// Convert is the config for the convert command.
type Convert struct {

	// To is the list of color spaces to convert to.
	// If it is empty, all of them are used.
	To []colormodel.Spaces `toml:"to"`
}

// Blend is the config for the blend command.
type Blend struct {

	// Image is an optional file name to save a ramp image of the blend to,
	// in the format given by its extension.
	Image string `toml:"image"`

	// Width is the width of the ramp image in pixels.
	Width int `toml:"width"`

	// Height is the height of the ramp image in pixels.
	Height int `toml:"height"`
}

// Hex is the config for the hex command.
type Hex struct {

	// Alpha is whether to always include the alpha channel.
	Alpha bool `toml:"alpha"`
}

// Palette is the config for the palette command.
type Palette struct {

	// Out is an optional file name to save the converted palette to,
	// as TOML or YAML depending on its extension.
	Out string `toml:"out"`
}

// Default returns a new [Config] with the default values.
func Default() *Config {
	return &Config{
		Space:    colormodel.SpaceOKLCH,
		Fraction: 0.5,
		Gray:     colormodel.GrayPerceptual,
		Color:    true,
		Blend: Blend{
			Width:  256,
			Height: 32,
		},
	}
}

// Open loads the given TOML config files into the config,
// in order, so that later files override earlier ones.
func (c *Config) Open(files ...string) error {
	if err := tomlx.OpenFiles(c, files...); err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	return nil
}

// Validate returns an error if any of the config values are out of range.
func (c *Config) Validate() error {
	switch {
	case !c.Space.IsValid():
		return fmt.Errorf("config: invalid color space %d", c.Space)
	case !c.Gray.IsValid():
		return fmt.Errorf("config: invalid gray mode %d", c.Gray)
	case c.Steps < 0:
		return fmt.Errorf("config: steps must not be negative, got %d", c.Steps)
	case c.Blend.Width <= 0 || c.Blend.Height <= 0:
		return fmt.Errorf("config: ramp size must be positive, got %dx%d", c.Blend.Width, c.Blend.Height)
	}
	for _, s := range c.Convert.To {
		if !s.IsValid() {
			return fmt.Errorf("config: invalid color space %d in convert.to", s)
		}
	}
	return nil
}
