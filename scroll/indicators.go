// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/indicators.go
// Summary: Scroll indicator rendering for scrollable views.
// Provides reusable scroll indicator glyphs (▲/▼) that show when content overflows.

package scroll

import (
	"github.com/framegrace/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// IndicatorPosition specifies where scroll indicators are rendered.
type IndicatorPosition int

const (
	// IndicatorRight places indicators at the right edge of the viewport (default).
	IndicatorRight IndicatorPosition = iota
	// IndicatorLeft places indicators at the left edge of the viewport.
	IndicatorLeft
)

// Default indicator glyphs.
const (
	DefaultUpGlyph   = '▲'
	DefaultDownGlyph = '▼'
)

// IndicatorConfig configures the appearance of scroll indicators.
type IndicatorConfig struct {
	Position  IndicatorPosition
	Style     tcell.Style
	UpGlyph   rune
	DownGlyph rune
}

// DefaultIndicatorConfig returns a default configuration with standard glyphs.
func DefaultIndicatorConfig(style tcell.Style) IndicatorConfig {
	return IndicatorConfig{
		Position:  IndicatorRight,
		Style:     style,
		UpGlyph:   DefaultUpGlyph,
		DownGlyph: DefaultDownGlyph,
	}
}

// DrawIndicators renders scroll indicators over the whole region of painter.
// Shows an up indicator if state.CanScrollUp() and a down indicator if state.CanScrollDown().
func DrawIndicators(painter *core.Painter, state State, config IndicatorConfig) {
	size := painter.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	x := size.X - 1
	if config.Position == IndicatorLeft {
		x = 0
	}

	if state.CanScrollUp() {
		glyph := config.UpGlyph
		if glyph == 0 {
			glyph = DefaultUpGlyph
		}
		painter.SetCell(x, 0, glyph, config.Style)
	}

	if state.CanScrollDown() {
		glyph := config.DownGlyph
		if glyph == 0 {
			glyph = DefaultDownGlyph
		}
		painter.SetCell(x, size.Y-1, glyph, config.Style)
	}
}
