// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/colormodel/base/iox/imagex"
	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/colors"
	"github.com/spf13/cobra"
)

func blendCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend A B",
		Short: "Blend two colors in a color space",
		Long: "Blend prints the blend of A and B at --fraction, or --steps evenly spaced colors from A to B.\n" +
			"The blend is computed in --space and the result is converted back to sRGB.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Blend(c, cmd.OutOrStdout(), args[0], args[1])
		},
	}
	fs := cmd.Flags()
	fs.Var((*spaceValue)(&c.Space), "space", "color space to blend in: "+spaceNames())
	fs.Float64Var(&c.Fraction, "fraction", c.Fraction, "blend fraction from A (0) to B (1)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of colors to print from A to B")
	fs.StringVar(&c.Blend.Image, "image", c.Blend.Image, "save a ramp image from A to B to this png, jpg, gif, tiff or bmp file")
	fs.IntVar(&c.Blend.Width, "width", c.Blend.Width, "width of the ramp image")
	fs.IntVar(&c.Blend.Height, "height", c.Blend.Height, "height of the ramp image")
	return cmd
}

// Blend prints the blend of the two given colors in the configured
// color space: a single color at the configured fraction, or a ramp
// of colors if more than one step is configured. It also saves a ramp
// image if an image file is configured.
func Blend(c *config.Config, w io.Writer, a, b string) error {
	x, err := parse(a)
	if err != nil {
		return err
	}
	y, err := parse(b)
	if err != nil {
		return err
	}
	p := newPrinter(c, w)
	if c.Steps > 1 {
		for _, col := range colors.BlendSteps(c.Space, c.Steps, x, y) {
			p.println(col, colors.AsHex(col))
		}
	} else {
		col := colors.BlendModel(c.Space, c.Fraction, x, y)
		p.println(col, col.HexString(), format(col))
	}
	if c.Blend.Image == "" {
		return nil
	}
	img := colors.Ramp(c.Space, x, y, c.Blend.Width, c.Blend.Height)
	if err := imagex.Save(img, c.Blend.Image); err != nil {
		return fmt.Errorf("saving ramp image: %w", err)
	}
	slog.Info("saved ramp image", "file", c.Blend.Image, "space", c.Space)
	return nil
}
