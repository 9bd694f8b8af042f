// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := range 8 {
		for x := range 16 {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 8), uint8(y * 16), 128, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{
		".png": PNG, "jpg": JPEG, ".JPEG": JPEG, ".gif": GIF,
		"tif": TIFF, ".tiff": TIFF, ".bmp": BMP, ".webp": WebP,
	}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "jpeg", JPEG.String())
	assert.Equal(t, "Formats(42)", Formats(42).String())
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	img := testImage()
	tols := map[string]int{"png": 0, "tiff": 0, "bmp": 0, "jpg": 24}
	for ext, tol := range tols {
		file := filepath.Join(dir, "ramp."+ext)
		require.NoError(t, Save(img, file), ext)
		got, f, err := Open(file)
		require.NoError(t, err, ext)
		want, _ := ExtToFormat(ext)
		assert.Equal(t, want, f)
		pt, differ := CompareImages(img, got, tol)
		assert.False(t, differ, "%s differs at %v", ext, pt)
	}
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	assert.Error(t, Write(testImage(), &b, WebP))
	assert.Error(t, Write(testImage(), &b, None))
	require.NoError(t, Write(testImage(), &b, GIF))
	_, f, err := Read(&b)
	require.NoError(t, err)
	assert.Equal(t, GIF, f)
	assert.Error(t, Save(testImage(), filepath.Join(t.TempDir(), "ramp.svg")))
}

func TestCompare(t *testing.T) {
	assert.True(t, CompareUint8(10, 12, 2))
	assert.False(t, CompareUint8(10, 13, 2))
	assert.True(t, CompareColors(color.RGBA{10, 20, 30, 255}, color.RGBA{11, 19, 30, 255}, 1))
	assert.False(t, CompareColors(color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 250}, 1))

	a := testImage()
	b := testImage()
	_, differ := CompareImages(a, b, 0)
	assert.False(t, differ)
	b.SetRGBA(3, 5, color.RGBA{A: 255})
	pt, differ := CompareImages(a, b, 0)
	assert.True(t, differ)
	assert.Equal(t, image.Pt(3, 5), pt)
	_, differ = CompareImages(a, image.NewRGBA(image.Rect(0, 0, 1, 1)), 0)
	assert.True(t, differ)
}
