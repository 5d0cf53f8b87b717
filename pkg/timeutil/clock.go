// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package timeutil provides human-readable date and time formatting:
// relative phrases ("15 mins ago"), smart day labels ("Today 6:00 PM"),
// a user-friendly pattern language compiled to Go layouts, calendar-day
// comparisons, and compact duration summaries ("2d 5h 10m").
//
// Every function that depends on the current moment has an ...At
// variant taking an explicit reference instant, so callers and tests
// can pin "now" instead of racing the wall clock.
package timeutil

import "time"

// Clock provides the current time. Production code uses RealClock;
// tests substitute a fixed instant through the ...At variants or a
// stub Clock.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system wall clock.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time { return time.Now() }
