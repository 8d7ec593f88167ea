// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/vec.go
// Summary: Integer 2D vectors and rectangles used for sizes, offsets and clips.

package core

// Vec2 is a pair of non-negative cell counts. It is used both as a size and as
// an offset; APIs name which one they expect.
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y int) Vec2 { return Vec2{X: x, Y: y} }

// Min returns the component-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub subtracts o, saturating each component at zero.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: max(v.X-o.X, 0), Y: max(v.Y-o.Y, 0)}
}

// Rect is an absolute rectangle in buffer cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Intersect returns the overlap of r and o; the result is empty when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Unbounded is used as a size request component when a container offers as
// much room as the view wants, e.g. the height inside a scroll pane.
const Unbounded = 1 << 30
