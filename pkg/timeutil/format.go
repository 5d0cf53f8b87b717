// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
)

// DefaultPattern is used by Format when the caller passes an empty
// pattern string.
const DefaultPattern = "yyyy-MM-dd HH:mm"

// tokenLayouts maps a maximal run of one pattern letter to its Go
// reference-time fragment. Runs longer than the longest key fall back
// to the longest key's fragment; unknown letters pass through verbatim.
var tokenLayouts = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"E":    "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"a":    "PM",
}

// layoutCache memoizes compiled layouts by pattern. Patterns are
// immutable strings, so entries never need invalidation; the cache is
// purely a way to skip re-scanning hot patterns.
var layoutCache sync.Map

// Format renders t using a user-friendly date pattern. Supported tokens
// include yyyy/yy (year), MMMM/MMM/MM/M (month), dd/d (day), EEEE/EEE
// (weekday), HH (24-hour), hh/h (12-hour), mm (minute), ss (second),
// and a (AM/PM). Everything else, separators included, is copied into
// the output verbatim. An empty pattern means DefaultPattern.
//
//	timeutil.Format(t, "dd/MM/yyyy")    // "02/01/2025"
//	timeutil.Format(t, "EEE, d MMM yyyy") // "Thu, 2 Jan 2025"
func Format(t time.Time, pattern string) string {
	return t.Format(Layout(pattern))
}

// Layout compiles a date pattern into the equivalent Go time layout.
// Compiled layouts are cached by pattern; equal patterns always yield
// the same layout.
func Layout(pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if cached, ok := layoutCache.Load(pattern); ok {
		return cached.(string)
	}
	layout := compileLayout(pattern)
	layoutCache.Store(pattern, layout)
	return layout
}

// compileLayout scans pattern into maximal same-letter runs and maps
// each run through tokenLayouts, matching the longest known prefix
// greedily until the run is consumed. Letters the table does not know
// are copied through unchanged, as are all non-letter separators.
func compileLayout(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		run := string(runes[i:j])

		for len(run) > 0 {
			matched := false
			for l := min(len(run), 4); l >= 1; l-- {
				if frag, ok := tokenLayouts[run[:l]]; ok {
					b.WriteString(frag)
					run = run[l:]
					matched = true
					break
				}
			}
			if !matched {
				b.WriteString(run)
				break
			}
		}
		i = j
	}
	return b.String()
}

// flexibleLayouts are the shapes ParseFlexible tries, most common
// first. RFC 3339 leads because it is what other tools emit.
var flexibleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"20060102",
}

// ParseFlexible parses s against a fixed list of common date and
// datetime shapes, returning the first success. The error from a full
// miss names the accepted shapes so CLI users can correct their input.
func ParseFlexible(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"unrecognized time %q (accepted shapes include %s)",
		s, strings.Join(flexibleLayouts[:5], ", "))
}
