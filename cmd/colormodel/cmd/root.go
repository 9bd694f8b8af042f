// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the colormodel tool.
package cmd

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configFlags are the flags bound to [config.Config] fields.
// Values given for them on the command line take precedence
// over values loaded from config files.
var configFlags = map[string]bool{
	"space":    true,
	"fraction": true,
	"steps":    true,
	"gray":     true,
	"to":       true,
	"image":    true,
	"width":    true,
	"height":   true,
	"alpha":    true,
	"out":      true,
	"verbose":  true,
	"vv":       true,
	"quiet":    true,
}

// Root returns the root command of the colormodel tool,
// with all of its subcommands bound to the given config.
func Root(c *config.Config) *cobra.Command {
	var files []string
	noColor := false
	root := &cobra.Command{
		Use:           "colormodel",
		Short:         "Convert, blend and inspect colors in sRGB, HSB, HSL, OKLab, OKLCH, XYZ, Lab, CMYK and gray",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd.Flags(), c, files); err != nil {
				return err
			}
			if noColor {
				c.Color = false
			}
			if err := expand(&c.Blend.Image, &c.Palette.Out); err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr(), nil, c.Color)))
			slog.Debug("configured", "files", files, "space", c.Space, "fraction", c.Fraction)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringSliceVar(&files, "config", nil, "TOML config files to load, in order")
	pf.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "log info messages")
	pf.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "log debug messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "only log errors")
	pf.BoolVar(&noColor, "no-color", false, "do not print color swatches or colored log levels")

	root.AddCommand(
		convertCmd(c),
		blendCmd(c),
		contrastCmd(c),
		hexCmd(c),
		paletteCmd(c),
		sampleCmd(c),
		spacedCmd(c),
	)
	return root
}

// load opens the given config files into c, keeping the values
// of any config flags that were set on the command line.
func load(fs *pflag.FlagSet, c *config.Config, files []string) error {
	if len(files) == 0 {
		return nil
	}
	for i := range files {
		if err := expand(&files[i]); err != nil {
			return err
		}
	}
	set := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		if configFlags[f.Name] {
			set[f.Name] = f.Value.String()
		}
	})
	if err := c.Open(files...); err != nil {
		return err
	}
	for name, val := range set {
		f := fs.Lookup(name)
		if sv, ok := f.Value.(*spacesValue); ok {
			sv.changed = false
		}
		if err := f.Value.Set(val); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the colormodel tool on the command line
// arguments and returns the process exit code.
func Execute() int {
	root := Root(config.Default())
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		return 1
	}
	return 0
}
