// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package layout provides read-only geometry helpers for terminal UIs:
// measuring rendered blocks, clamping sizes to constraints, coordinate
// boxes, and width breakpoints for responsive rendering.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Measure returns the visible cell width and line count of a rendered
// block. Width is the widest line; ANSI escape sequences are not
// counted and wide characters count as two cells. An empty string
// measures 0×0.
func Measure(s string) (w, h int) {
	if s == "" {
		return 0, 0
	}
	return lipgloss.Width(s), strings.Count(s, "\n") + 1
}

// StringWidth returns the display cell width of a single line. Unlike
// Measure it does not strip ANSI sequences; use it on plain text.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
