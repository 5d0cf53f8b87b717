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

import "time"

// IsToday reports whether t falls on the current calendar day.
// The comparison is field-wise on year/month/day, not duration-based:
// 23:59 yesterday is not today even though it was a minute ago.
func IsToday(t time.Time) bool {
	return IsTodayAt(t, time.Now())
}

// IsTodayAt reports whether t and now share a calendar day.
func IsTodayAt(t, now time.Time) bool {
	return calendarDays(now, t) == 0
}

// IsYesterday reports whether t falls on the calendar day before today.
func IsYesterday(t time.Time) bool {
	return IsYesterdayAt(t, time.Now())
}

// IsYesterdayAt reports whether t falls on the calendar day before now's.
func IsYesterdayAt(t, now time.Time) bool {
	return calendarDays(now, t) == -1
}

// IsTomorrow reports whether t falls on the calendar day after today.
func IsTomorrow(t time.Time) bool {
	return IsTomorrowAt(t, time.Now())
}

// IsTomorrowAt reports whether t falls on the calendar day after now's.
func IsTomorrowAt(t, now time.Time) bool {
	return calendarDays(now, t) == 1
}

// StartOfDay returns midnight at the start of t's calendar day, in t's
// location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day,
// in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// calendarDays returns the signed number of calendar days from ref's
// day to t's day: 0 for the same day, -1 when t is the day before, +1
// the day after. Both instants are flattened to UTC midnights first, so
// the count ignores time of day and is immune to daylight-saving
// changes in the source locations.
func calendarDays(ref, t time.Time) int {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	tu := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	ru := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	return int(tu.Sub(ru).Hours() / 24)
}
