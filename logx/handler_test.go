// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	l := slog.New(NewHandler(buf, slog.LevelInfo, false))

	l.Debug("hidden")
	l.Info("converted", "space", "oklch", "fraction", 0.5)
	l.With("cmd", "blend").WithGroup("in").Warn("clipped", "r", 1.2)
	l.Error("failed", slog.Group("color", "hex", "#FF0000"))

	assert.Equal(t, "INFO converted space=oklch fraction=0.5\n"+
		"WARN clipped cmd=blend in.r=1.2\n"+
		"ERROR failed color.hex=#FF0000\n", buf.String())
}

func TestUserLevel(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	buf := &bytes.Buffer{}
	l := slog.New(NewHandler(buf, nil, false))

	UserLevel = slog.LevelError
	l.Warn("hidden")
	assert.Empty(t, buf.String())

	UserLevel = slog.LevelDebug
	l.Debug("shown")
	assert.Equal(t, "DEBUG shown\n", buf.String())
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}
