// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// level colors
var (
	DebugColor = "#8C8C8C"
	InfoColor  = "#2E7D32"
	WarnColor  = "#F9A825"
	ErrorColor = "#C62828"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored for the terminal it writes to.
type Handler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	level slog.Leveler
	attrs []byte
	group string
}

// NewHandler returns a new [Handler] writing to w. If level is nil,
// the current [UserLevel] is used. Colors are used only if useColor is
// set and w is a terminal that supports them.
func NewHandler(w io.Writer, level slog.Leveler, useColor bool) *Handler {
	if level == nil {
		level = userLeveler{}
	}
	return &Handler{out: NewOutput(w, useColor), mu: &sync.Mutex{}, level: level}
}

// NewOutput returns a [termenv.Output] for w, using the color
// profile of the terminal, or no colors at all if useColor is off.
func NewOutput(w io.Writer, useColor bool) *termenv.Output {
	if !useColor || termenv.EnvNoColor() {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to stderr at the current [UserLevel].
func SetDefaultLogger(useColor bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil, useColor)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	buf := &bytes.Buffer{}
	buf.WriteString(h.levelString(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.Write(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	buf := bytes.NewBuffer(append([]byte{}, h.attrs...))
	for _, a := range attrs {
		appendAttr(buf, h.group, a)
	}
	nh.attrs = buf.Bytes()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

// levelString returns the level name colored for its severity.
func (h *Handler) levelString(l slog.Level) string {
	var clr string
	switch {
	case l >= slog.LevelError:
		clr = ErrorColor
	case l >= slog.LevelWarn:
		clr = WarnColor
	case l >= slog.LevelInfo:
		clr = InfoColor
	default:
		clr = DebugColor
	}
	return h.out.String(l.String()).Foreground(h.out.Color(clr)).Bold().String()
}

// appendAttr writes a key=value pair, flattening groups.
func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, gp, ga)
		}
		return
	}
	fmt.Fprintf(buf, " %s%s=%v", prefix, a.Key, a.Value)
}
