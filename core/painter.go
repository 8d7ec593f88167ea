// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/painter.go
// Summary: Clipped, offset-aware drawing surface over a Buffer.
// Views draw in local coordinates; sub-painters add an offset and shrink the clip.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Painter draws into a region of a Buffer. Coordinates passed to its methods
// are local: (0,0) is the top-left corner of the region. Anything outside the
// clip rectangle is silently dropped.
type Painter struct {
	buf    *Buffer
	ox, oy int // absolute position of local (0,0); negative when scrolled out of view
	clip   Rect
	size   Vec2
}

// Size returns the logical size of the region.
func (p *Painter) Size() Vec2 { return p.size }

func (p *Painter) abs(x, y int) (int, int) {
	return p.ox + x, p.oy + y
}

// Sub returns a painter for the region starting at offset with the given
// size. The size is clamped to what remains of this painter's region.
func (p *Painter) Sub(offset, size Vec2) *Painter {
	size = size.Min(p.size.Sub(offset))
	ax, ay := p.abs(offset.X, offset.Y)
	region := Rect{X: ax, Y: ay, W: size.X, H: size.Y}
	return &Painter{
		buf:  p.buf,
		ox:   ax,
		oy:   ay,
		clip: p.clip.Intersect(region),
		size: size,
	}
}

// Translate returns a painter with the same clip whose local origin is moved
// by (dx, dy) and whose logical size is size. It is used to draw content that
// is taller than the visible region, shifted up by a scroll offset.
func (p *Painter) Translate(dx, dy int, size Vec2) *Painter {
	return &Painter{
		buf:  p.buf,
		ox:   p.ox + dx,
		oy:   p.oy + dy,
		clip: p.clip,
		size: size,
	}
}

// SetCell writes a single rune at local (x, y).
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	ax, ay := p.abs(x, y)
	p.put(ax, ay, ch, nil, runewidth.RuneWidth(ch), style)
}

func (p *Painter) put(ax, ay int, ch rune, comb []rune, w int, style tcell.Style) {
	if p.buf == nil || w <= 0 || p.clip.Empty() {
		return
	}
	if !p.clip.Contains(ax, ay) || !p.clip.Contains(ax+w-1, ay) {
		return
	}
	row := p.buf.Cells[ay]
	row[ax] = Cell{Ch: ch, Comb: comb, Style: style}
	for i := 1; i < w; i++ {
		row[ax+i] = Cell{Style: style}
	}
}

// Print writes text starting at local (x, y) on a single line and returns the
// number of columns it advanced. Grapheme clusters are kept in one cell; wide
// clusters occupy two.
func (p *Painter) Print(x, y int, text string, style tcell.Style) int {
	ax, ay := p.abs(x, y)
	start := ax
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		p.put(ax, ay, runes[0], comb, w, style)
		ax += w
	}
	return ax - start
}

// Fill paints every cell of the local rectangle r.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// Clear fills the whole region with blanks.
func (p *Painter) Clear(style tcell.Style) {
	p.Fill(Rect{W: p.size.X, H: p.size.Y}, ' ', style)
}

// DrawBorder draws a frame around the local rectangle r.
// charset order is h, v, tl, tr, bl, br.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		p.SetCell(x, r.Y, charset[0], style)
		p.SetCell(x, bottom, charset[0], style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		p.SetCell(r.X, y, charset[1], style)
		p.SetCell(right, y, charset[1], style)
	}
	p.SetCell(r.X, r.Y, charset[2], style)
	p.SetCell(right, r.Y, charset[3], style)
	p.SetCell(r.X, bottom, charset[4], style)
	p.SetCell(right, bottom, charset[5], style)
}
