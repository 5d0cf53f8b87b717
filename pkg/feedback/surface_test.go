// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feedback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TermSurface Tests
// =============================================================================

// A regular file is not a terminal: the surface reports detached,
// sizes to zero, and refuses inserts with ErrDetached.
func TestTermSurface_DetachedFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "sink"))
	require.NoError(t, err)
	defer f.Close()

	s := NewTermSurface(f)

	assert.False(t, s.Attached())
	w, h := s.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	err = s.Insert(Overlay{ID: uuid.New(), Kind: KindToast, Text: "x"})
	assert.ErrorIs(t, err, ErrDetached)

	// Nothing reached the file.
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

// Removing on a surface with no loader running must not block or
// panic, whatever the ID.
func TestTermSurface_RemoveUnknownIsNoop(t *testing.T) {
	s := NewTermSurface(nil)

	assert.NotPanics(t, func() {
		s.Remove(uuid.New())
		s.Remove(uuid.Nil)
	})
}

func TestNewTermSurface_NilDefaultsToStdout(t *testing.T) {
	assert.NotPanics(t, func() {
		s := NewTermSurface(nil)
		_ = s.Attached()
		_, _ = s.Size()
	})
}

// =============================================================================
// Overlay Rendering Tests
// =============================================================================

func TestOverlayRender(t *testing.T) {
	tests := []struct {
		name string
		o    Overlay
		want string
	}{
		{"info toast", Overlay{Kind: KindToast, Level: LevelInfo, Text: "hello"}, "• hello"},
		{"success toast", Overlay{Kind: KindToast, Level: LevelSuccess, Text: "done"}, "✓ done"},
		{"warning toast", Overlay{Kind: KindToast, Level: LevelWarning, Text: "careful"}, "! careful"},
		{"error toast", Overlay{Kind: KindToast, Level: LevelError, Text: "failed"}, "✗ failed"},
		{"snackbar action", Overlay{Kind: KindSnackbar, Level: LevelInfo, Text: "deleted", Action: "UNDO"}, "• deleted  [UNDO]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Styles may degrade to plain text off-terminal; the
			// content must survive either way.
			assert.Contains(t, tt.o.Render(), tt.want)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "toast", KindToast.String())
	assert.Equal(t, "snackbar", KindSnackbar.String())
	assert.Equal(t, "loader", KindLoader.String())
}
