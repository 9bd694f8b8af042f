// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/colors/colormodel"
	"github.com/spf13/cobra"
)

func convertCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert COLOR...",
		Short: "Print colors in other color spaces",
		Long: "Convert prints each color in every color space, or in the spaces given with --to.\n" +
			"Colors can be hex values, CSS names or functional notation like oklch(0.7, 0.1, 0.5).",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Convert(c, cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().Var(&spacesValue{spaces: &c.Convert.To}, "to", "color spaces to convert to: "+spaceNames())
	cmd.Flags().Var((*grayValue)(&c.Gray), "gray", "grayscale policy: perceptual, luminance, lightness, average or value")
	return cmd
}

// Convert prints each of the given colors converted to each of
// the configured color spaces, or all of them if none are configured.
func Convert(c *config.Config, w io.Writer, args []string) error {
	p := newPrinter(c, w)
	for i, arg := range args {
		m, err := parse(arg)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			p.println(m, arg)
		}
		p.spaces(c, m)
	}
	return nil
}

// spaces prints m in each of the configured color spaces,
// or all of them if none are configured.
func (p *printer) spaces(c *config.Config, m colormodel.Model) {
	to := c.Convert.To
	if len(to) == 0 {
		to = colormodel.SpacesValues()
	}
	for _, s := range to {
		cm := convert(c, m, s)
		p.println(cm, fmt.Sprintf("%-5s", s), format(cm))
	}
}
