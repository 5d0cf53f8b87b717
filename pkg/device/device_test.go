// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package device

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// =============================================================================
// Platform Tests
// =============================================================================

func TestPlatform(t *testing.T) {
	info := Platform()

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
	if info.Family == "" {
		t.Error("Family is empty")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"linux", FamilyLinux},
		{"android", FamilyLinux},
		{"darwin", FamilyDarwin},
		{"ios", FamilyDarwin},
		{"windows", FamilyWindows},
		{"freebsd", FamilyBSD},
		{"openbsd", FamilyBSD},
		{"plan9", FamilyOther},
		{"js", FamilyOther},
	}
	for _, tt := range tests {
		if got := classify(tt.goos); got != tt.want {
			t.Errorf("classify(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestPlatformPredicatesAgree(t *testing.T) {
	if IsLinux() != (runtime.GOOS == "linux") {
		t.Error("IsLinux disagrees with runtime.GOOS")
	}
	if IsDarwin() != (runtime.GOOS == "darwin") {
		t.Error("IsDarwin disagrees with runtime.GOOS")
	}
	if IsWindows() != (runtime.GOOS == "windows") {
		t.Error("IsWindows disagrees with runtime.GOOS")
	}
}

// =============================================================================
// Metadata Tests
// =============================================================================

// Metadata never errors and never leaves a field empty: every field is
// either real data or the Unknown sentinel.
func TestMetadata_FullyPopulated(t *testing.T) {
	m := Metadata()

	fields := map[string]string{
		"Hostname": m.Hostname,
		"Kernel":   m.Kernel,
		"Release":  m.Release,
		"Machine":  m.Machine,
	}
	for name, v := range fields {
		if v == "" {
			t.Errorf("%s is empty, want data or %q", name, Unknown)
		}
	}
}

// =============================================================================
// Online Tests
// =============================================================================

// Against a local listener the probe must answer true quickly.
func TestOnline_ReachableListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	orig := probeAddrs
	probeAddrs = []string{ln.Addr().String()}
	defer func() { probeAddrs = orig }()

	if !Online(context.Background()) {
		t.Error("Online = false against a live local listener")
	}
}

// A dead endpoint degrades to false, never to an error or a panic.
func TestOnline_UnreachableReportsFalse(t *testing.T) {
	// A listener that was closed frees its port; dialing it refuses.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	orig := probeAddrs
	probeAddrs = []string{addr}
	defer func() { probeAddrs = orig }()

	if Online(context.Background()) {
		t.Error("Online = true against a closed port")
	}
}

func TestOnline_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	got := Online(ctx)
	if elapsed := time.Since(start); elapsed > probeTimeout {
		t.Errorf("cancelled probe took %v", elapsed)
	}
	if got {
		t.Error("Online = true under a cancelled context")
	}
}

// =============================================================================
// Terminal Tests
// =============================================================================

// A regular file is not a terminal; the probe must report the zero
// value rather than failing.
func TestProbeTerminal_NonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	probe := ProbeTerminal(f)
	if probe.Attached {
		t.Error("regular file reported as attached terminal")
	}
	if probe.Width != 0 || probe.Height != 0 {
		t.Errorf("detached probe = %dx%d, want 0x0", probe.Width, probe.Height)
	}
}

func TestProbeTerminal_NilProbesStdout(t *testing.T) {
	// Must not panic regardless of whether tests run under a TTY.
	probe := ProbeTerminal(nil)
	if probe.Attached && (probe.Width < 0 || probe.Height < 0) {
		t.Errorf("attached probe with negative size: %+v", probe)
	}
}
