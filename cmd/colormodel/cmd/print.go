// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/colormodel/cmd/colormodel/config"
	"cogentcore.org/colormodel/colors"
	"cogentcore.org/colormodel/colors/colormodel"
	"cogentcore.org/colormodel/logx"
	"github.com/muesli/termenv"
)

// printer writes lines of output, prefixing colors with a
// swatch when the terminal supports it.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(c *config.Config, w io.Writer) *printer {
	return &printer{w: w, out: logx.NewOutput(w, c.Color)}
}

// swatch returns a two cell block filled with the color,
// or nothing when colors are off.
func (p *printer) swatch(c color.Color) string {
	if p.out.Profile == termenv.Ascii {
		return ""
	}
	return p.out.String("  ").Background(p.out.Color(colors.AsHex(c))).String() + " "
}

// println prints the swatch of c followed by the given values.
func (p *printer) println(c color.Color, a ...any) {
	fmt.Fprint(p.w, p.swatch(c))
	fmt.Fprintln(p.w, a...)
}

// format returns m in functional notation, with components
// rounded to four decimals. The result is accepted by [colors.Parse].
func format(m colormodel.Model) string {
	comps := m.Components()
	strs := make([]string, len(comps))
	for i, v := range comps {
		v = math.Round(v*1e4) / 1e4
		if v == 0 {
			v = 0 // no -0
		}
		strs[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return m.Space().String() + "(" + strings.Join(strs, ", ") + ")"
}

// convert converts m to the given space, using the configured
// gray mode for grayscale.
func convert(c *config.Config, m colormodel.Model, space colormodel.Spaces) colormodel.Model {
	if space == colormodel.SpaceGray {
		return m.SRGB().GrayMode(c.Gray)
	}
	return colormodel.Convert(m, space)
}

// parse parses a color argument, naming the argument in any error.
func parse(arg string) (colormodel.Model, error) {
	m, err := colors.Parse(arg, nil)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", arg, err)
	}
	return m, nil
}
