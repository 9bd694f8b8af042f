// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/base/errors"
)

var (
	// ErrInvalidComponents is matched by every error returned when a
	// color is constructed from too few components.
	ErrInvalidComponents = errors.New("invalid components")

	// ErrInvalidHexString is matched by every error returned when
	// a hex string can not be decoded.
	ErrInvalidHexString = errors.New("invalid hex string")
)

// ComponentsError is returned when a component vector is too short
// for the color space it is being decoded into.
type ComponentsError struct {

	// Space is the color space the components were meant for.
	Space Spaces

	// Need is the minimum number of components for Space.
	Need int

	// Got is the number of components that were given.
	Got int
}

func (e *ComponentsError) Error() string {
	return fmt.Sprintf("colormodel.New: %s needs at least %d components, got %d", e.Space, e.Need, e.Got)
}

func (e *ComponentsError) Unwrap() error { return ErrInvalidComponents }

// HexError is returned by [ParseHex] for malformed input.
type HexError struct {

	// Hex is the string that could not be parsed.
	Hex string

	// Reason describes what is wrong with it.
	Reason string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("colormodel.ParseHex: could not process %q: %s", e.Hex, e.Reason)
}

func (e *HexError) Unwrap() error { return ErrInvalidHexString }

// checkComponents returns a [ComponentsError] if v is too short for space.
func checkComponents(space Spaces, v []float64) error {
	if need := space.MinComponents(); len(v) < need {
		return &ComponentsError{Space: space, Need: need, Got: len(v)}
	}
	return nil
}
