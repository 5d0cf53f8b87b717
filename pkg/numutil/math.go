// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package numutil

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrNegativePrecision is returned when a rounding precision is negative.
var ErrNegativePrecision = errors.New("decimal places cannot be negative")

// ErrInvalidRange is returned when a random range has min > max.
var ErrInvalidRange = errors.New("min cannot be greater than max")

// RoundTo rounds v to the given number of decimal places, halves away
// from zero. A negative places count returns ErrNegativePrecision.
//
//	numutil.RoundTo(3.14159, 2) // 3.14
//	numutil.RoundTo(2.5, 0)     // 3
//	numutil.RoundTo(-2.5, 0)    // -3
func RoundTo(v float64, places int) (float64, error) {
	if places < 0 {
		return 0, fmt.Errorf("round: %w: %d", ErrNegativePrecision, places)
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p, nil
}

// RandomInt returns a uniformly distributed integer in the inclusive
// range [min, max]. min > max returns ErrInvalidRange; min == max
// returns min without consuming randomness.
//
// The span arithmetic runs in uint64 so the function stays correct for
// ranges covering the full int domain.
func RandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("random: %w: [%d, %d]", ErrInvalidRange, min, max)
	}
	if min == max {
		return min, nil
	}

	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// The range covers every representable int.
		return int(rand.Uint64()), nil
	}
	return min + int(rand.Uint64N(span)), nil
}

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
