// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/base.go
// Summary: Scroll viewport that renders only the visible rows of tall content.

package scroll

import (
	"github.com/framegrace/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// Base tracks a viewport over a number of content rows and draws the visible
// slice through a caller-supplied row renderer. The zero value is an empty,
// non-scrollable viewport.
type Base struct {
	state State

	ThumbStyle tcell.Style
	TrackStyle tcell.Style
}

// SetHeights updates both heights. The offset is clamped, not reset, so the
// scroll position survives a reflow when it still can.
func (b *Base) SetHeights(viewportHeight, contentHeight int) {
	b.state = b.state.WithViewportHeight(viewportHeight).WithContentHeight(contentHeight)
}

func (b *Base) State() State { return b.state }

func (b *Base) Offset() int { return b.state.Offset }

// Scrollable reports whether the content is taller than the viewport.
func (b *Base) Scrollable() bool { return b.state.CanScroll() }

func (b *Base) CanScrollUp() bool { return b.state.CanScrollUp() }

func (b *Base) CanScrollDown() bool { return b.state.CanScrollDown() }

func (b *Base) ScrollUp(n int) { b.state = b.state.ScrollBy(-n) }

func (b *Base) ScrollDown(n int) { b.state = b.state.ScrollBy(n) }

func (b *Base) ScrollTop() { b.state = b.state.ScrollToTop() }

func (b *Base) ScrollBottom() { b.state = b.state.ScrollToBottom() }

// Draw calls rowFn once for each visible row index, in order, with a painter
// for that single line. When the content is scrollable the rightmost
// ScrollbarWidth columns are reserved for the scrollbar.
func (b *Base) Draw(p *core.Painter, rowFn func(p *core.Painter, i int)) {
	size := p.Size()
	rowWidth := size.X
	if b.Scrollable() {
		rowWidth = max(size.X-ScrollbarWidth, 0)
	}

	start, end := b.state.VisibleRange()
	for i := start; i < end; i++ {
		rowFn(p.Sub(core.V(0, i-start), core.V(rowWidth, 1)), i)
	}

	if b.Scrollable() && size.X > 0 {
		DrawScrollbar(p, size.X-1, b.state, b.ThumbStyle, b.TrackStyle)
	}
}
