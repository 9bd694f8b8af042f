// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/colormodel/cmd/colormodel/config"
	"github.com/spf13/cobra"
)

// wcagLevels are the WCAG 2 contrast ratio thresholds.
var wcagLevels = []struct {
	name  string
	ratio float64
}{
	{"AA large text", 3},
	{"AA normal text", 4.5},
	{"AAA large text", 4.5},
	{"AAA normal text", 7},
}

func contrastCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast A B",
		Short: "Print the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Contrast(c, cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

// Contrast prints the relative luminance of the two given colors,
// their contrast ratio and the WCAG levels that the ratio passes.
func Contrast(c *config.Config, w io.Writer, a, b string) error {
	x, err := parse(a)
	if err != nil {
		return err
	}
	y, err := parse(b)
	if err != nil {
		return err
	}
	p := newPrinter(c, w)
	xs, ys := x.SRGB(), y.SRGB()
	p.println(xs, xs.HexString(), fmt.Sprintf("luminance %.4f", xs.Luminance()))
	p.println(ys, ys.HexString(), fmt.Sprintf("luminance %.4f", ys.Luminance()))
	ratio := xs.ContrastRatio(ys)
	fmt.Fprintf(w, "contrast ratio %.2f:1\n", ratio)
	for _, l := range wcagLevels {
		res := "fail"
		if ratio >= l.ratio {
			res = "pass"
		}
		fmt.Fprintf(w, "%-15s %s\n", l.name, res)
	}
	return nil
}
