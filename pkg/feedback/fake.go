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
	"sync"

	"github.com/google/uuid"
)

// FakeSurface is an in-memory Surface for tests. It records every
// Insert and Remove and can be flipped between attached and detached
// mid-test.
type FakeSurface struct {
	mu       sync.Mutex
	attached bool
	w, h     int
	inserts  []Overlay
	removes  []uuid.UUID
}

// NewFakeSurface returns an attached 80×24 fake.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{attached: true, w: 80, h: 24}
}

// Detach makes the surface report as detached.
func (s *FakeSurface) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
}

// Attach makes the surface report as attached again.
func (s *FakeSurface) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = true
}

// Resize changes the reported dimensions.
func (s *FakeSurface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h = w, h
}

// Attached implements Surface.
func (s *FakeSurface) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// Size implements Surface.
func (s *FakeSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return 0, 0
	}
	return s.w, s.h
}

// Insert implements Surface, recording o.
func (s *FakeSurface) Insert(o Overlay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return ErrDetached
	}
	s.inserts = append(s.inserts, o)
	return nil
}

// Remove implements Surface, recording id.
func (s *FakeSurface) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removes = append(s.removes, id)
}

// Inserts returns a copy of the recorded insertions.
func (s *FakeSurface) Inserts() []Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Overlay, len(s.inserts))
	copy(out, s.inserts)
	return out
}

// Removes returns a copy of the recorded removals.
func (s *FakeSurface) Removes() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.removes))
	copy(out, s.removes)
	return out
}
