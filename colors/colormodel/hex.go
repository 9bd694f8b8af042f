// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex decodes a hex color string into sRGB. The string may have
// a leading # or 0x and surrounding whitespace, and must have 3 (RGB),
// 4 (RGBA), 6 (RRGGBB) or 8 (RRGGBBAA) hex digits. Alpha defaults to 1.
// Malformed strings return a [*HexError] that matches [ErrInvalidHexString].
func ParseHex(hex string) (SRGB, error) {
	s := strings.TrimSpace(hex)
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return SRGB{}, &HexError{Hex: hex, Reason: fmt.Sprintf("invalid length %d; must be 3, 4, 6 or 8 digits", len(s))}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return SRGB{}, &HexError{Hex: hex, Reason: "invalid hex digit"}
	}
	n := uint32(v)
	switch len(s) {
	case 3:
		return NewSRGB(nibble(n, 2), nibble(n, 1), nibble(n, 0), 1), nil
	case 4:
		return NewSRGB(nibble(n, 3), nibble(n, 2), nibble(n, 1), nibble(n, 0)), nil
	case 6:
		return NewSRGBHex(n, 1), nil
	default:
		return NewSRGBHex(n>>8, float64(n&0xFF)/255), nil
	}
}

// nibble returns the i-th 4-bit digit of n (0 is the least significant)
// scaled to 0-1.
func nibble(n uint32, i int) float64 {
	return float64((n>>(4*i))&0xF) / 15
}

// ToHexString returns the hex encoding of m in sRGB. With includeAlpha
// it is #RRGGBB when alpha is exactly 1 and #RRGGBBAA otherwise;
// without it the alpha is never encoded.
func ToHexString(m Model, includeAlpha bool) string {
	c := m.SRGB()
	if !includeAlpha {
		return fmt.Sprintf("#%06X", c.Hex())
	}
	return c.HexString()
}
