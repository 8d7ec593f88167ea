// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/state.go
// Summary: Immutable scroll state for a vertical viewport over taller content.

package scroll

// State is the position of a viewport over content. Methods return updated
// copies; every result satisfies 0 <= Offset <= MaxOffset().
type State struct {
	ContentHeight  int
	ViewportHeight int
	Offset         int
}

// NewState returns a state at the top of the content.
func NewState(contentHeight, viewportHeight int) State {
	return State{
		ContentHeight:  max(contentHeight, 0),
		ViewportHeight: max(viewportHeight, 0),
	}
}

// MaxOffset is the largest valid offset.
func (s State) MaxOffset() int {
	return max(s.ContentHeight-s.ViewportHeight, 0)
}

func (s State) clamp() State {
	s.Offset = min(max(s.Offset, 0), s.MaxOffset())
	return s
}

// WithContentHeight changes the content height, keeping the offset when it
// is still valid.
func (s State) WithContentHeight(h int) State {
	s.ContentHeight = max(h, 0)
	return s.clamp()
}

// WithViewportHeight changes the viewport height, keeping the offset when it
// is still valid.
func (s State) WithViewportHeight(h int) State {
	s.ViewportHeight = max(h, 0)
	return s.clamp()
}

// ScrollBy moves the offset by delta rows (positive is down), saturating at
// both ends.
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.clamp()
}

func (s State) ScrollToTop() State {
	s.Offset = 0
	return s
}

func (s State) ScrollToBottom() State {
	s.Offset = s.MaxOffset()
	return s
}

// CanScroll reports whether the content is taller than the viewport.
func (s State) CanScroll() bool { return s.ContentHeight > s.ViewportHeight }

// CanScrollUp reports whether there is content above the viewport.
func (s State) CanScrollUp() bool { return s.Offset > 0 }

// CanScrollDown reports whether there is content below the viewport.
func (s State) CanScrollDown() bool { return s.Offset+s.ViewportHeight < s.ContentHeight }

// VisibleRange returns the half-open range of visible content rows.
func (s State) VisibleRange() (int, int) {
	return s.Offset, min(s.Offset+s.ViewportHeight, s.ContentHeight)
}
