// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"image"
	"io"
	"strconv"

	"cogentcore.org/colormodel/base/iox/imagex"
	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/colors/colormodel"
	"github.com/spf13/cobra"
)

func sampleCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample IMAGE X Y",
		Short: "Print the color of an image pixel",
		Long: "Sample prints the pixel at X, Y of the image in every color space, or in the spaces given with --to.\n" +
			"X and Y are relative to the top left corner of the image. " +
			"png, jpeg, gif, tiff, bmp and webp images are supported.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}
			return Sample(c, cmd.OutOrStdout(), args[0], image.Pt(x, y))
		},
	}
	cmd.Flags().Var(&spacesValue{spaces: &c.Convert.To}, "to", "color spaces to convert to: "+spaceNames())
	cmd.Flags().Var((*grayValue)(&c.Gray), "gray", "grayscale policy: perceptual, luminance, lightness, average or value")
	return cmd
}

// Sample prints the color of the pixel at pt in the given image file,
// converted to each of the configured color spaces.
func Sample(c *config.Config, w io.Writer, file string, pt image.Point) error {
	if err := expand(&file); err != nil {
		return err
	}
	img, _, err := imagex.Open(file)
	if err != nil {
		return err
	}
	b := img.Bounds()
	pt = pt.Add(b.Min)
	if !pt.In(b) {
		return fmt.Errorf("point %v is outside of the %dx%d image %s", pt.Sub(b.Min), b.Dx(), b.Dy(), file)
	}
	m := colormodel.FromColor(img.At(pt.X, pt.Y))
	p := newPrinter(c, w)
	p.println(m, m.HexString())
	p.spaces(c, m)
	return nil
}
