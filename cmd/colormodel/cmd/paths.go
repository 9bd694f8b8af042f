// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

// expand expands a leading ~ in each of the given file paths
// to the home directory, in place.
func expand(paths ...*string) error {
	for _, p := range paths {
		if *p == "" {
			continue
		}
		ep, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = ep
	}
	return nil
}
