// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/colors"
	"github.com/spf13/cobra"
)

func spacedCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "spaced N",
		Short: "Print N maximally distinct colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("spaced: N must be a non-negative integer, got %q", args[0])
			}
			return Spaced(c, cmd.OutOrStdout(), n)
		},
	}
}

// Spaced prints the first n colors of the [colors.Spaced] sequence.
func Spaced(c *config.Config, w io.Writer, n int) error {
	p := newPrinter(c, w)
	for i := range n {
		m := colors.SpacedModel(i)
		p.println(m, fmt.Sprintf("%2d", i), m.SRGB().HexString(), format(m))
	}
	return nil
}
