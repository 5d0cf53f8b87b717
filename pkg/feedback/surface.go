// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package feedback

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vkashegde/smart-utils/pkg/device"
)

// ErrDetached is returned by Insert on a surface with nothing to draw
// on. Callers that checked Attached first never see it.
var ErrDetached = errors.New("surface is not attached")

// Surface is the capability handle for a place overlays can appear.
// The Notifier checks Attached before every visual operation and
// treats a detached surface as a silent no-op.
type Surface interface {
	// Attached reports whether the surface can currently display
	// anything.
	Attached() bool
	// Size returns the surface dimensions in cells, 0×0 when
	// detached.
	Size() (w, h int)
	// Insert displays an overlay. Re-inserting an existing ID
	// refreshes its text (the loader uses this).
	Insert(o Overlay) error
	// Remove takes an overlay down. Unknown IDs are ignored.
	Remove(id uuid.UUID)
}

// spinnerFrames animate the loader line.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerInterval is the loader frame period.
const spinnerInterval = 80 * time.Millisecond

// TermSurface renders overlays as styled lines on a terminal. Toasts
// and snackbars print once and scroll away; the terminal has no true
// overlay layer, so Remove on them is bookkeeping only. The loader is
// a live line, rewritten in place by a spinner goroutine and cleared
// on removal.
type TermSurface struct {
	f *os.File

	mu       sync.Mutex
	loaderID uuid.UUID
	text     string
	stop     chan struct{}
	done     chan struct{}
}

// NewTermSurface wraps f, typically os.Stdout. A nil f means stdout.
func NewTermSurface(f *os.File) *TermSurface {
	if f == nil {
		f = os.Stdout
	}
	return &TermSurface{f: f}
}

// Attached reports whether the wrapped descriptor is an interactive
// terminal. Probed per call: a terminal can detach mid-run.
func (s *TermSurface) Attached() bool {
	return device.ProbeTerminal(s.f).Attached
}

// Size returns the terminal dimensions, 0×0 when detached.
func (s *TermSurface) Size() (w, h int) {
	t := device.ProbeTerminal(s.f)
	return t.Width, t.Height
}

// Insert displays o. Loader overlays start (or retext) the spinner
// line; everything else prints one styled line.
func (s *TermSurface) Insert(o Overlay) error {
	if !s.Attached() {
		return ErrDetached
	}
	if o.Kind == KindLoader {
		s.startSpinner(o)
		return nil
	}
	fmt.Fprintln(s.f, o.Render())
	return nil
}

// Remove takes down the loader line when id matches it; printed lines
// have already scrolled and are ignored.
func (s *TermSurface) Remove(id uuid.UUID) {
	s.mu.Lock()
	if id == uuid.Nil || id != s.loaderID {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.loaderID = uuid.Nil
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	close(stop)
	<-done
}

// startSpinner launches the loader goroutine, or just swaps the
// message when one is already running.
func (s *TermSurface) startSpinner(o Overlay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaderID != uuid.Nil {
		s.loaderID = o.ID
		s.text = o.Text
		return
	}

	s.loaderID = o.ID
	s.text = o.Text
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func(stop, done chan struct{}) {
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		frame := 0

		for {
			select {
			case <-stop:
				fmt.Fprint(s.f, "\r\033[K")
				close(done)
				return
			case <-ticker.C:
				s.mu.Lock()
				text := s.text
				s.mu.Unlock()
				glyph := levelStyles[LevelInfo].Render(spinnerFrames[frame])
				fmt.Fprintf(s.f, "\r%s %s", glyph, text)
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}(s.stop, s.done)
}
