// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/buffer.go
// Summary: Cell buffer that views render into, and its transfer to a tcell screen.

package core

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell. A cell whose Ch is 0 is covered by the wide
// character to its left.
type Cell struct {
	Ch    rune
	Comb  []rune
	Style tcell.Style
}

// Buffer is a fixed-size grid of cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell
}

// NewBuffer returns a buffer filled with blank cells in the given style.
func NewBuffer(w, h int, style tcell.Style) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: style}
		}
		b.Cells[y] = row
	}
	return b
}

// Painter returns a painter covering the whole buffer.
func (b *Buffer) Painter() *Painter {
	return &Painter{
		buf:  b,
		clip: Rect{W: b.W, H: b.H},
		size: Vec2{X: b.W, Y: b.H},
	}
}

// Line returns row y as plain text with trailing blanks removed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.H {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.Cells[y] {
		if c.Ch == 0 {
			continue
		}
		sb.WriteRune(c.Ch)
		for _, r := range c.Comb {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Lines returns every row as produced by Line.
func (b *Buffer) Lines() []string {
	out := make([]string, b.H)
	for y := range out {
		out[y] = b.Line(y)
	}
	return out
}

// Blit copies the buffer onto screen at its origin. The caller is responsible
// for calling Show.
func (b *Buffer) Blit(screen tcell.Screen) {
	for y, row := range b.Cells {
		for x, c := range row {
			if c.Ch == 0 {
				continue
			}
			screen.SetContent(x, y, c.Ch, c.Comb, c.Style)
		}
	}
}
