// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package strutil

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ErrNegativeLength is returned when a truncation length is negative.
var ErrNegativeLength = errors.New("max length cannot be negative")

// defaultSuffix marks truncated text.
const defaultSuffix = "..."

// Truncate shortens s to at most max runes, appending "..." when
// truncation occurs. See TruncateWith for the exact rules.
func Truncate(s string, max int) (string, error) {
	return TruncateWith(s, max, defaultSuffix)
}

// TruncateWith shortens s to at most max runes, appending suffix when
// truncation occurs.
//
// Rules, applied in order:
//   - max < 0 returns ErrNegativeLength.
//   - If s has at most max runes it is returned unchanged.
//   - If max is not greater than the suffix length, the suffix alone is
//     returned.
//   - Otherwise the first max-len(suffix) runes of s plus the suffix are
//     returned, so the result is exactly max runes long.
//
// Lengths are counted in runes, not bytes, so multi-byte characters are
// never split.
func TruncateWith(s string, max int, suffix string) (string, error) {
	if max < 0 {
		return "", fmt.Errorf("truncate: %w: %d", ErrNegativeLength, max)
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s, nil
	}

	sfx := []rune(suffix)
	if max <= len(sfx) {
		return suffix, nil
	}
	return string(runes[:max-len(sfx)]) + suffix, nil
}

// TruncateANSI shortens a styled terminal string to at most max visible
// cells, appending an ellipsis when truncation occurs. ANSI escape
// sequences are preserved and never counted toward the width, so styled
// output keeps its colors after being cut.
//
// A negative max is treated as zero. Unlike TruncateWith this measures
// display cells (wide characters count as two), which is what matters
// when fitting text into a terminal column.
func TruncateANSI(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "…")
}
