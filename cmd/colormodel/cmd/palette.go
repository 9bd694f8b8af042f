// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colormodel/base/iox/tomlx"
	"cogentcore.org/colormodel/base/iox/yamlx"
	"cogentcore.org/colormodel/cmd/colormodel/config"
	"github.com/spf13/cobra"
)

func paletteCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette FILE",
		Short: "Convert a palette file to a color space",
		Long: "Palette loads a TOML or YAML file mapping names to colors, and prints\n" +
			"each color converted to --space, in name order.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Palette(c, cmd.OutOrStdout(), args[0])
		},
	}
	fs := cmd.Flags()
	fs.Var((*spaceValue)(&c.Space), "space", "color space to convert to: "+spaceNames())
	fs.Var((*grayValue)(&c.Gray), "gray", "grayscale policy: perceptual, luminance, lightness, average or value")
	fs.StringVar(&c.Palette.Out, "out", c.Palette.Out, "save the converted palette to this TOML or YAML file")
	return cmd
}

// Palette loads the given palette file, which maps color names to
// color strings, and prints each color converted to the configured
// space in name order. It also saves the converted palette if an
// output file is configured.
func Palette(c *config.Config, w io.Writer, file string) error {
	if err := expand(&file); err != nil {
		return err
	}
	pal := map[string]string{}
	if err := paletteIO(file, &pal, false); err != nil {
		return err
	}
	p := newPrinter(c, w)
	width := 0
	for name := range pal {
		width = max(width, len(name))
	}
	res := make(map[string]string, len(pal))
	for _, name := range slices.Sorted(maps.Keys(pal)) {
		m, err := parse(pal[name])
		if err != nil {
			return fmt.Errorf("palette %s: %s: %w", file, name, err)
		}
		cm := convert(c, m, c.Space)
		res[name] = format(cm)
		p.println(cm, fmt.Sprintf("%-*s", width, name), res[name])
	}
	if c.Palette.Out == "" {
		return nil
	}
	if err := paletteIO(c.Palette.Out, res, true); err != nil {
		return err
	}
	slog.Info("saved palette", "file", c.Palette.Out, "colors", len(res), "space", c.Space)
	return nil
}

// paletteIO opens or saves v from or to the given file,
// using TOML or YAML according to its extension.
func paletteIO(file string, v any, save bool) error {
	var err error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		if save {
			err = tomlx.Save(v, file)
		} else {
			err = tomlx.Open(v, file)
		}
	case ".yaml", ".yml":
		if save {
			err = yamlx.Save(v, file)
		} else {
			err = yamlx.Open(v, file)
		}
	default:
		return fmt.Errorf("palette %s: unsupported file type; must be .toml, .yaml or .yml", file)
	}
	if err != nil {
		return fmt.Errorf("palette %s: %w", file, err)
	}
	return nil
}
