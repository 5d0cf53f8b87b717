// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package layout

// Breakpoint is a named terminal width class for responsive rendering.
type Breakpoint int

const (
	// Compact is anything under 80 columns, including a detached
	// surface reporting zero width.
	Compact Breakpoint = iota
	// Cozy is a standard 80-column terminal up to 120.
	Cozy
	// Comfortable is 120 up to 160 columns.
	Comfortable
	// Wide is 160 columns and beyond.
	Wide
)

// Width thresholds between breakpoint classes.
const (
	cozyMin        = 80
	comfortableMin = 120
	wideMin        = 160
)

func (b Breakpoint) String() string {
	switch b {
	case Compact:
		return "compact"
	case Cozy:
		return "cozy"
	case Comfortable:
		return "comfortable"
	default:
		return "wide"
	}
}

// ClassFor classifies a width in cells.
func ClassFor(w int) Breakpoint {
	switch {
	case w >= wideMin:
		return Wide
	case w >= comfortableMin:
		return Comfortable
	case w >= cozyMin:
		return Cozy
	default:
		return Compact
	}
}

// Sized is any surface that can report attachment and dimensions.
// feedback.Surface satisfies it.
type Sized interface {
	Attached() bool
	Size() (w, h int)
}

// ForSurface classifies an attached surface's width. A detached
// surface is Compact, the safe narrow default.
func ForSurface(s Sized) Breakpoint {
	if s == nil || !s.Attached() {
		return Compact
	}
	w, _ := s.Size()
	return ClassFor(w)
}
