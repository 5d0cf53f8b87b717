// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package device

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal describes the terminal attached to a file descriptor, the
// Go rendition of a mobile screen-metrics query. A redirected or
// closed descriptor yields the zero value: not attached, 0×0.
type Terminal struct {
	// Attached reports whether the descriptor is an interactive
	// terminal.
	Attached bool
	// Width and Height are the terminal cell dimensions, 0 when
	// detached or unmeasurable.
	Width  int
	Height int
}

// ProbeTerminal inspects f (typically os.Stdout). A nil f probes
// stdout. The probe never fails: anything unmeasurable comes back as
// the zero value.
func ProbeTerminal(f *os.File) Terminal {
	if f == nil {
		f = os.Stdout
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return Terminal{}
	}

	t := Terminal{Attached: true}
	t.Width, t.Height = winSize(f)
	return t
}
