// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colormodel converts, blends and inspects colors in
// sRGB, HSB, HSL, OKLab, OKLCH, XYZ, Lab, CMYK and gray.
package main

import (
	"os"

	"cogentcore.org/colormodel/cmd/colormodel/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
