// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numutil

import (
	"errors"
	"math"
	"testing"
)

// =============================================================================
// FormatCurrency Tests
// =============================================================================

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		symbol   string
		decimals int
		want     string
	}{
		{"grouped with cents", 1234.5, "$", 2, "$1,234.50"},
		{"millions", 1234567.891, "$", 2, "$1,234,567.89"},
		{"no decimals", 99.99, "€", 0, "€100"},
		{"negative before symbol", -99, "€", 0, "-€99"},
		{"zero", 0, "$", 2, "$0.00"},
		{"small amount", 0.5, "£", 2, "£0.50"},
		{"negative decimals treated as zero", 12.7, "$", -3, "$13"},
		{"empty symbol", 1000, "", 0, "1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCurrency(tt.v, tt.symbol, tt.decimals)
			if got != tt.want {
				t.Errorf("FormatCurrency(%v, %q, %d) = %q, want %q",
					tt.v, tt.symbol, tt.decimals, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Compact Tests
// =============================================================================

func TestCompact(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"plain under a thousand", 999, "999"},
		{"thousands", 1500, "1.5K"},
		{"round thousand strips decimal", 2000, "2K"},
		{"millions", 2000000, "2M"},
		{"fractional millions", 2500000, "2.5M"},
		{"billions", 3200000000, "3.2B"},
		{"trillions", 1400000000000, "1.4T"},
		{"zero", 0, "0"},
		{"negative carries sign", -1500, "-1.5K"},
		{"fraction stays plain", 0.5, "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.v); got != tt.want {
				t.Errorf("Compact(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Percent Tests
// =============================================================================

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, total float64
		decimals    int
		want        string
	}{
		{"simple", 45, 100, 1, "45.0%"},
		{"no decimals", 1, 3, 0, "33%"},
		{"two decimals", 1, 3, 2, "33.33%"},
		{"over a hundred", 150, 100, 0, "150%"},
		{"zero part", 0, 10, 1, "0.0%"},
		{"zero total sentinel", 5, 0, 2, "0%"},
		{"negative decimals treated as zero", 50, 200, -1, "25%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.part, tt.total, tt.decimals)
			if got != tt.want {
				t.Errorf("Percent(%v, %v, %d) = %q, want %q",
					tt.part, tt.total, tt.decimals, got, tt.want)
			}
		})
	}
}

// =============================================================================
// RoundTo Tests
// =============================================================================

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		places int
		want   float64
	}{
		{"two places", 3.14159, 2, 3.14},
		{"rounds up", 3.146, 2, 3.15},
		{"half away from zero", 2.5, 0, 3},
		{"negative half away from zero", -2.5, 0, -3},
		{"zero places", 7.4, 0, 7},
		{"already exact", 1.25, 2, 1.25},
		{"many places", 1.0/3.0, 4, 0.3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoundTo(tt.v, tt.places)
			if err != nil {
				t.Fatalf("RoundTo(%v, %d) error: %v", tt.v, tt.places, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
			}
		})
	}
}

func TestRoundTo_NegativePrecision(t *testing.T) {
	_, err := RoundTo(3.14, -1)
	if !errors.Is(err, ErrNegativePrecision) {
		t.Errorf("error = %v, want ErrNegativePrecision", err)
	}
}

// =============================================================================
// RandomInt Tests
// =============================================================================

func TestRandomInt_StaysInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		got, err := RandomInt(-5, 5)
		if err != nil {
			t.Fatalf("RandomInt error: %v", err)
		}
		if got < -5 || got > 5 {
			t.Fatalf("RandomInt(-5, 5) = %d out of range", got)
		}
	}
}

func TestRandomInt_DegenerateRange(t *testing.T) {
	got, err := RandomInt(7, 7)
	if err != nil || got != 7 {
		t.Errorf("RandomInt(7, 7) = %d, %v", got, err)
	}
}

func TestRandomInt_InvertedRange(t *testing.T) {
	_, err := RandomInt(10, 1)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

func TestRandomInt_FullIntDomain(t *testing.T) {
	if _, err := RandomInt(math.MinInt, math.MaxInt); err != nil {
		t.Errorf("full-domain range errored: %v", err)
	}
}

// =============================================================================
// FormatBytes / Ordinal / Clamp Tests
// =============================================================================

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{1024, "1.0 KiB"},
		{2621440, "2.5 MiB"},
		{1073741824, "1.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {21, "21st"}, {112, "112th"},
	}
	for _, tt := range tests {
		if got := Ordinal(tt.n); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
