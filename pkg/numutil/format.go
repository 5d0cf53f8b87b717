// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package numutil provides display formatting and small numeric helpers.
//
// Formatting functions return strings meant for humans (grouped digits,
// compact magnitudes, percentages); they are not locale-negotiated and
// always use English digit grouping.
package numutil

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// groupedPrinter renders numbers with English thousands separators.
var groupedPrinter = message.NewPrinter(language.English)

// FormatCurrency renders v as a currency amount: sign, symbol, grouped
// integer digits, and a fixed number of decimals. Negative amounts put
// the minus sign before the symbol. A negative decimals count is
// treated as zero.
//
//	numutil.FormatCurrency(1234.5, "$", 2) // "$1,234.50"
//	numutil.FormatCurrency(-99, "€", 0)    // "-€99"
func FormatCurrency(v float64, symbol string, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	verb := fmt.Sprintf("%%.%df", decimals)
	return sign + symbol + groupedPrinter.Sprintf(verb, v)
}

// Compact renders v in compact magnitude notation with at most one
// decimal digit: thousands as K, millions as M, billions as B,
// trillions as T. Trailing ".0" is stripped. The ladder applies to the
// absolute value; the sign is carried through.
//
//	numutil.Compact(1500)    // "1.5K"
//	numutil.Compact(2000000) // "2M"
//	numutil.Compact(999)     // "999"
func Compact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	switch {
	case abs >= 1e12:
		return sign + humanize.FtoaWithDigits(abs/1e12, 1) + "T"
	case abs >= 1e9:
		return sign + humanize.FtoaWithDigits(abs/1e9, 1) + "B"
	case abs >= 1e6:
		return sign + humanize.FtoaWithDigits(abs/1e6, 1) + "M"
	case abs >= 1e3:
		return sign + humanize.FtoaWithDigits(abs/1e3, 1) + "K"
	default:
		return sign + humanize.FtoaWithDigits(abs, 1)
	}
}

// Percent renders part as a percentage of total with a fixed number of
// decimals. A zero total yields "0%" rather than dividing; a negative
// decimals count is treated as zero.
//
//	numutil.Percent(45, 100, 1) // "45.0%"
func Percent(part, total float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if total == 0 {
		return "0%"
	}
	return strconv.FormatFloat(part/total*100, 'f', decimals, 64) + "%"
}

// FormatBytes renders a byte count in IEC units (KiB, MiB, GiB).
//
//	numutil.FormatBytes(2621440) // "2.5 MiB"
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th.
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}
