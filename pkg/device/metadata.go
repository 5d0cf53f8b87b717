// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package device

import "os"

// Meta describes the host machine. Fields that cannot be determined
// hold the Unknown sentinel; the struct is always fully populated.
type Meta struct {
	// Hostname is the machine's reported host name.
	Hostname string
	// Kernel is the kernel name, e.g. "Linux".
	Kernel string
	// Release is the kernel release string, e.g. "6.8.0-45-generic".
	Release string
	// Machine is the hardware identifier, e.g. "x86_64".
	Machine string
}

// Metadata collects host metadata. Each field degrades to Unknown
// independently; the call itself never fails.
func Metadata() Meta {
	m := unameMeta()
	if host, err := os.Hostname(); err == nil && host != "" {
		m.Hostname = host
	} else {
		m.Hostname = Unknown
	}
	return m
}
