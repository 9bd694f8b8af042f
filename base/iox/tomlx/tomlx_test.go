// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Space    string
	Fraction float64
	Colors   map[string]string
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.toml")
	in := testStruct{Space: "oklch", Fraction: 0.25, Colors: map[string]string{"accent": "#336699"}}
	require.NoError(t, Save(&in, file))

	var out testStruct
	require.NoError(t, Open(&out, file))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Space = \"hsl\"\nFraction = 0.5\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("Fraction = 0.75\n"), 0666))

	var out testStruct
	require.NoError(t, OpenFiles(&out, a, b))
	assert.Equal(t, "hsl", out.Space)
	assert.Equal(t, 0.75, out.Fraction)

	assert.Error(t, OpenFiles(&out, filepath.Join(dir, "missing.toml")))
}

func TestOpenErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(file, []byte("Space = "), 0666))
	var out testStruct
	assert.Error(t, Open(&out, file))
	assert.Error(t, Save(&out, filepath.Join(t.TempDir(), "missing", "out.toml")))
}
