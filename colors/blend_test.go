// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"testing"

	"cogentcore.org/colormodel/colors/colormodel"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestBlend(t *testing.T) {
	lb, db := colornames.Lightblue, colornames.Darkblue
	tests := []struct {
		space colormodel.Spaces
		want  color.RGBA
	}{
		{colormodel.SpaceSRGB, color.RGBA{121, 151, 203, 255}},
		{colormodel.SpaceHSB, color.RGBA{107, 157, 203, 255}},
		{colormodel.SpaceHSL, color.RGBA{99, 165, 225, 255}},
		{colormodel.SpaceOKLab, color.RGBA{110, 159, 206, 255}},
		{colormodel.SpaceOKLCH, color.RGBA{89, 164, 203, 255}},
		{colormodel.SpaceXYZ, color.RGBA{147, 184, 208, 255}},
		{colormodel.SpaceLab, color.RGBA{137, 151, 203, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.space.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Blend(tt.space, 0.3, lb, db))
			assert.Equal(t, lb, Blend(tt.space, 0, lb, db))
			assert.Equal(t, db, Blend(tt.space, 1, lb, db))
		})
	}
}

func TestBlendAlpha(t *testing.T) {
	x := color.RGBA{255, 0, 0, 255}
	y := color.RGBA{0, 0, 0, 0}
	// color.RGBA is alpha premultiplied
	assert.Equal(t, color.RGBA{64, 0, 0, 128}, Blend(colormodel.SpaceSRGB, 0.5, x, y))
	assert.Equal(t, uint8(255), Blend(colormodel.SpaceSRGB, -1, x, y).A)
}

func TestBlendUnknownSpace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	c := Blend(colormodel.Spaces(100), 0.5, color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 255})
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, c)
	assert.Contains(t, buf.String(), "unknown color space")
}

func TestBlendSteps(t *testing.T) {
	assert.Nil(t, BlendSteps(colormodel.SpaceSRGB, 0, colornames.Red, colornames.Blue))
	assert.Equal(t, []color.RGBA{colornames.Red}, BlendSteps(colormodel.SpaceSRGB, 1, colornames.Red, colornames.Blue))

	steps := BlendSteps(colormodel.SpaceSRGB, 5, color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255})
	assert.Len(t, steps, 5)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, steps[0])
	assert.Equal(t, color.RGBA{64, 64, 64, 255}, steps[1])
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, steps[2])
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, steps[4])
}

func TestRamp(t *testing.T) {
	img := Ramp(colormodel.SpaceOKLab, colornames.Red, colornames.Blue, 10, 3)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, colornames.Red, ToUniform(img))
	assert.Equal(t, colornames.Blue, img.RGBAAt(9, 2))
	assert.Equal(t, img.RGBAAt(4, 0), img.RGBAAt(4, 2))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
}

func ExampleBlend() {
	fmt.Println(Blend(colormodel.SpaceSRGB, 0.3, colornames.Lightblue, colornames.Darkblue))
	// Output: {121 151 203 255}
}

func ExampleBlend_oklch() {
	fmt.Println(Blend(colormodel.SpaceOKLCH, 0.3, colornames.Lightblue, colornames.Darkblue))
	// Output: {89 164 203 255}
}
