// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides functions for the CIE standard color spaces
// (XYZ and L*a*b*) and the sRGB gamma functions they are built on,
// all referenced to the D65 white point and computed in float64.
package cie
