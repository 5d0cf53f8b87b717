// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package strutil

import (
	"strings"
	"testing"
)

// =============================================================================
// Capitalize Tests
// =============================================================================

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple word", "hello", "Hello"},
		{"sentence keeps rest untouched", "hello World", "Hello World"},
		{"already capitalized", "Hello", "Hello"},
		{"empty string", "", ""},
		{"single rune", "a", "A"},
		{"multi-byte first rune", "ñandú", "Ñandú"},
		{"combining accent stays attached", "étude", "Étude"},
		{"digit first is unchanged", "9 lives", "9 lives"},
		{"whitespace only", "   ", "   "},
		{"leading space is not skipped", " hello", " hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Capitalize(tt.input)
			if got != tt.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Slugify Tests
// =============================================================================

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple phrase", "Hello World!", "hello-world"},
		{"surrounding whitespace", "  Hello World  ", "hello-world"},
		{"punctuation run collapses", "rock & roll", "rock-roll"},
		{"digits survive", "Top 10 Tips", "top-10-tips"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"unicode drops out", "café crème", "caf-cr-me"},
		{"leading and trailing symbols", "--trim me--", "trim-me"},
		{"empty string", "", ""},
		{"symbols only", "!!!", ""},
		{"mixed case", "CamelCaseInput", "camelcaseinput"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello World!",
		"  spaced   out  ",
		"--edges--",
		"déjà vu",
		"",
		"plain",
	}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSlugify_OutputAlphabet(t *testing.T) {
	inputs := []string{"Hello, World!", "a&b|c", "  x  ", "100% natural"}

	for _, input := range inputs {
		got := Slugify(input)
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			if !valid {
				t.Errorf("Slugify(%q) = %q contains invalid rune %q", input, got, r)
			}
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has an edge hyphen", input, got)
		}
	}
}

// =============================================================================
// Initials / NormalizeWhitespace Tests
// =============================================================================

func TestInitials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"two names", "ada lovelace", 2, "AL"},
		{"limit below fields", "one two three", 2, "OT"},
		{"limit above fields", "solo", 3, "S"},
		{"zero limit", "ada lovelace", 0, ""},
		{"negative limit", "ada", -1, ""},
		{"empty string", "", 2, ""},
		{"accented name", "élodie durand", 2, "ÉD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Initials(tt.input, tt.n)
			if got != tt.want {
				t.Errorf("Initials(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"internal runs collapse", "a   b\t\tc", "a b c"},
		{"newlines collapse", "a\nb\n\nc", "a b c"},
		{"surrounding trim", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWhitespace(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
