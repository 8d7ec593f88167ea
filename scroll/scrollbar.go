// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/scrollbar.go
// Summary: Proportional scrollbar geometry and rendering.

package scroll

import (
	"github.com/framegrace/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// ScrollbarWidth is the number of columns a scrollbar reserves on the right
// of a viewport: one blank gap and the bar itself.
const ScrollbarWidth = 2

// Default scrollbar glyphs.
const (
	DefaultThumbGlyph = '█'
	DefaultTrackGlyph = '│'
)

// Thumb returns the top row and height of the scrollbar thumb on a track of
// trackHeight rows. The thumb covers trackHeight*ViewportHeight/ContentHeight
// rows (at least one) and its position maps Offset onto the free track.
// Content that fits gets a full-height thumb.
func Thumb(s State, trackHeight int) (top, height int) {
	if trackHeight <= 0 {
		return 0, 0
	}
	if !s.CanScroll() || s.ContentHeight == 0 {
		return 0, trackHeight
	}
	height = trackHeight * s.ViewportHeight / s.ContentHeight
	height = min(max(height, 1), trackHeight)

	free := trackHeight - height
	if maxOffset := s.MaxOffset(); free > 0 && maxOffset > 0 {
		top = s.Offset * free / maxOffset
	}
	return min(max(top, 0), free), height
}

// DrawScrollbar draws a vertical scrollbar in column x of p, as tall as the
// smaller of the viewport and the painter.
func DrawScrollbar(p *core.Painter, x int, s State, thumb, track tcell.Style) {
	trackHeight := min(s.ViewportHeight, p.Size().Y)
	top, height := Thumb(s, trackHeight)
	for y := 0; y < trackHeight; y++ {
		if y >= top && y < top+height {
			p.SetCell(x, y, DefaultThumbGlyph, thumb)
		} else {
			p.SetCell(x, y, DefaultTrackGlyph, track)
		}
	}
}
