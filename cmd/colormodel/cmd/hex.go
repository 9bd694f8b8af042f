// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/colors/colormodel"
	"github.com/spf13/cobra"
)

func hexCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex COLOR...",
		Short: "Print colors as hex strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Hex(c, cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().BoolVar(&c.Hex.Alpha, "alpha", c.Hex.Alpha, "include the alpha channel for translucent colors")
	return cmd
}

// Hex prints each of the given colors as a #RRGGBB hex string,
// or as #RRGGBBAA for translucent colors if alpha is configured.
func Hex(c *config.Config, w io.Writer, args []string) error {
	p := newPrinter(c, w)
	for _, arg := range args {
		m, err := parse(arg)
		if err != nil {
			return err
		}
		p.println(m, colormodel.ToHexString(m, c.Hex.Alpha))
	}
	return nil
}
