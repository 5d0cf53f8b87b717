// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

//go:build unix

package device

import "golang.org/x/sys/unix"

// unameMeta fills the kernel fields from uname(2). A failed syscall
// leaves every field at the Unknown sentinel.
func unameMeta() Meta {
	m := Meta{Kernel: Unknown, Release: Unknown, Machine: Unknown}

	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return m
	}
	if s := bytesToString(u.Sysname[:]); s != "" {
		m.Kernel = s
	}
	if s := bytesToString(u.Release[:]); s != "" {
		m.Release = s
	}
	if s := bytesToString(u.Machine[:]); s != "" {
		m.Machine = s
	}
	return m
}

// bytesToString trims a NUL-terminated utsname field.
func bytesToString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
