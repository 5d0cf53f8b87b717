// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package device answers questions about the machine a program is
// running on: platform family, kernel metadata, network reachability,
// and the geometry of the attached terminal.
//
// Every probe degrades instead of failing. A capability that cannot be
// queried reports a sentinel ("unknown" strings, false, zero sizes)
// rather than an error, so callers can render whatever they got without
// guarding each field.
package device

import "runtime"

// Unknown is the sentinel for any metadata field that could not be
// determined.
const Unknown = "unknown"

// Family is a coarse platform classification.
type Family string

const (
	FamilyLinux   Family = "linux"
	FamilyDarwin  Family = "darwin"
	FamilyWindows Family = "windows"
	FamilyBSD     Family = "bsd"
	FamilyOther   Family = "other"
)

// Info identifies the platform a binary was built for.
type Info struct {
	// OS is the raw runtime.GOOS value.
	OS string
	// Arch is the raw runtime.GOARCH value.
	Arch string
	// Family classifies OS into a coarse bucket.
	Family Family
}

// Platform reports the current platform. It never fails; the values
// are compiled in.
func Platform() Info {
	return Info{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Family: classify(runtime.GOOS),
	}
}

// IsLinux reports whether the binary runs on Linux.
func IsLinux() bool { return runtime.GOOS == "linux" }

// IsDarwin reports whether the binary runs on macOS.
func IsDarwin() bool { return runtime.GOOS == "darwin" }

// IsWindows reports whether the binary runs on Windows.
func IsWindows() bool { return runtime.GOOS == "windows" }

func classify(goos string) Family {
	switch goos {
	case "linux", "android":
		return FamilyLinux
	case "darwin", "ios":
		return FamilyDarwin
	case "windows":
		return FamilyWindows
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return FamilyBSD
	default:
		return FamilyOther
	}
}
