// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package strutil provides string helpers for user-facing text.
//
// All functions are pure and allocation-light: they never panic, never
// mutate their input, and treat text as sequences of runes or grapheme
// clusters rather than bytes, so multi-byte and combining characters
// survive every transformation intact.
package strutil

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// nonSlugPattern matches a maximal run of characters that cannot appear
// in a slug. Each run collapses to a single hyphen.
var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// spaceRunPattern matches internal whitespace runs for normalization.
var spaceRunPattern = regexp.MustCompile(`\s+`)

// Capitalize uppercases the first user-perceived character of s and
// leaves the rest untouched. The first character is the first extended
// grapheme cluster, not the first byte, so strings starting with
// accented or combining characters come back well-formed.
//
// Empty and whitespace-only strings are returned unchanged.
//
// Example:
//
//	strutil.Capitalize("hello world") // "Hello world"
//	strutil.Capitalize("ñandú")       // "Ñandú"
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return s
	}
	first := g.Str()
	return strings.ToUpper(first) + s[len(first):]
}

// Initials returns the uppercased first grapheme of up to n
// whitespace-separated fields of s. Useful for avatar monograms.
//
//	strutil.Initials("ada lovelace", 2) // "AL"
func Initials(s string, n int) string {
	if n <= 0 {
		return ""
	}
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	var b strings.Builder
	for _, f := range fields {
		g := uniseg.NewGraphemes(f)
		if g.Next() {
			b.WriteString(strings.ToUpper(g.Str()))
		}
	}
	return b.String()
}

// Slugify converts s into a URL- and filename-safe slug.
//
// The transformation lowercases the string, trims surrounding
// whitespace, collapses every run of non-alphanumeric characters into a
// single hyphen, and then strips at most one leading and one trailing
// hyphen. The edge strip intentionally removes only the outermost
// hyphen rather than re-scanning, which keeps the operation idempotent:
// Slugify(Slugify(x)) == Slugify(x) for all x.
//
// Example:
//
//	strutil.Slugify("Hello World!")     // "hello-world"
//	strutil.Slugify("  --Already-- ")   // "already"
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = nonSlugPattern.ReplaceAllString(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, "-")
	return s
}

// NormalizeWhitespace trims s and collapses every internal whitespace
// run (spaces, tabs, newlines) to a single space.
func NormalizeWhitespace(s string) string {
	return spaceRunPattern.ReplaceAllString(strings.TrimSpace(s), " ")
}
