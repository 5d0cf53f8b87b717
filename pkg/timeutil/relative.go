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
	"time"
)

// TimeAgo renders how long ago t was, relative to the current time.
// See TimeAgoAt for the exact ladder.
func TimeAgo(t time.Time) string {
	return TimeAgoAt(t, time.Now())
}

// TimeAgoAt renders how long ago t was, relative to now. The first
// matching rung wins:
//
//	under a minute     "just now"
//	under an hour      "1 min ago", "15 mins ago"
//	under a day        "1 hour ago", "5 hours ago"
//	one whole day      "yesterday"
//	under a week       "3 days ago"
//	otherwise          the absolute date, "2 Jan 2006"
//
// Counts are floored, never rounded up. Instants in the future land on
// the first rung and render "just now": a negative elapsed duration is
// treated as clock skew, not an error.
func TimeAgoAt(t, now time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "min") + " ago"
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour") + " ago"
	case int(d.Hours()/24) == 1:
		return "yesterday"
	case int(d.Hours()/24) < 7:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return t.Format("2 Jan 2006")
	}
}

// SmartDateTime renders t with a day label relative to the current
// calendar day. See SmartDateTimeAt.
func SmartDateTime(t time.Time) string {
	return SmartDateTimeAt(t, time.Now())
}

// SmartDateTimeAt renders t as "<DayLabel> <h>:<mm> <AM|PM>", where the
// day label depends on the calendar-day distance between t and now:
// "Today", "Yesterday", "Tomorrow", or an absolute "Mon, 2 Jan" for
// anything further out. The comparison uses year/month/day fields only,
// so a 2 AM instant is still "Today" at 11 PM even though far less than
// a day has elapsed, and daylight-saving transitions cannot shift the
// label.
//
//	SmartDateTimeAt(6pm, 10am same day) // "Today 6:00 PM"
func SmartDateTimeAt(t, now time.Time) string {
	var label string
	switch calendarDays(now, t) {
	case 0:
		label = "Today"
	case -1:
		label = "Yesterday"
	case 1:
		label = "Tomorrow"
	default:
		label = t.Format("Mon, 2 Jan")
	}
	return label + t.Format(" 3:04 PM")
}

// DiffSummary renders the elapsed time between start and end as a
// compact breakdown of whole days, remaining hours, and remaining
// minutes, emitting only the nonzero components in "d h m" order:
// "2d 5h 10m", "5h", "45m". Seconds are discarded, not rounded. When
// everything is zero the result is "0m".
//
// The summary is a magnitude: operand order does not matter and no
// sign is ever rendered, so DiffSummary(a, b) == DiffSummary(b, a).
func DiffSummary(start, end time.Time) string {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60

	out := ""
	if days > 0 {
		out = fmt.Sprintf("%dd", days)
	}
	if hours > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%dh", hours)
	}
	if mins > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%dm", mins)
	}
	if out == "" {
		return "0m"
	}
	return out
}

// plural renders "1 min" or "5 mins".
func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
