// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package layout

// Constraints bounds a width and height, in cells. The zero value of a
// max field means unbounded.
type Constraints struct {
	MinW, MaxW int
	MinH, MaxH int
}

// Constrain clamps w and h into the constraint box. Mins win over
// maxes when the two conflict, matching how layout engines resolve
// over-constrained children.
func (c Constraints) Constrain(w, h int) (int, int) {
	if c.MaxW > 0 && w > c.MaxW {
		w = c.MaxW
	}
	if w < c.MinW {
		w = c.MinW
	}
	if c.MaxH > 0 && h > c.MaxH {
		h = c.MaxH
	}
	if h < c.MinH {
		h = c.MinH
	}
	return w, h
}

// Fits reports whether a w×h block satisfies the constraints as-is.
func (c Constraints) Fits(w, h int) bool {
	cw, ch := c.Constrain(w, h)
	return cw == w && ch == h
}

// Box is a rectangle in cell coordinates. X and Y locate the top-left
// corner; a Box may be expressed in a parent's local coordinates.
type Box struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Center returns the box's center point, rounding toward the origin.
func (b Box) Center() (int, int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Inset shrinks the box by n cells on every side. Over-insetting
// collapses to a zero-sized box at the center rather than going
// negative.
func (b Box) Inset(n int) Box {
	if 2*n >= b.W || 2*n >= b.H {
		cx, cy := b.Center()
		return Box{X: cx, Y: cy}
	}
	return Box{X: b.X + n, Y: b.Y + n, W: b.W - 2*n, H: b.H - 2*n}
}

// Global converts child, expressed in b's local coordinates, to the
// surface coordinates b itself is expressed in.
func (b Box) Global(child Box) Box {
	child.X += b.X
	child.Y += b.Y
	return child
}

// Orient describes which way a surface is longer.
type Orient string

const (
	Portrait  Orient = "portrait"
	Landscape Orient = "landscape"
)

// Orientation classifies a w×h surface. Width strictly greater than
// height is Landscape; everything else, squares included, is Portrait.
func Orientation(w, h int) Orient {
	if w > h {
		return Landscape
	}
	return Portrait
}
