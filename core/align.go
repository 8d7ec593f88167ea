// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/align.go
// Summary: Horizontal and vertical alignment of content inside a region.

package core

// HAlign is a horizontal alignment.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is a vertical alignment.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Align combines both axes.
type Align struct {
	H HAlign
	V VAlign
}

func AlignTopLeft() Align { return Align{H: AlignLeft, V: AlignTop} }

func AlignCentered() Align { return Align{H: AlignCenter, V: AlignMiddle} }

// Offset returns the column at which content of the given width starts inside
// a region of the given width. Content wider than the region starts at 0.
func (h HAlign) Offset(content, container int) int {
	free := container - content
	if free <= 0 {
		return 0
	}
	switch h {
	case AlignCenter:
		return free / 2
	case AlignRight:
		return free
	default:
		return 0
	}
}

// Offset returns the row at which content of the given height starts.
func (v VAlign) Offset(content, container int) int {
	free := container - content
	if free <= 0 {
		return 0
	}
	switch v {
	case AlignMiddle:
		return free / 2
	case AlignBottom:
		return free
	default:
		return 0
	}
}
