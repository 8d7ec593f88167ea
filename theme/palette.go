// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/palette.go
// Summary: Style tokens shared by widgets, resolved from the "ui" config section.

package theme

import (
	"sync"

	"github.com/framegrace/texelui/config"
	"github.com/gdamore/tcell/v2"
)

// Palette holds the styles widgets pick from.
type Palette struct {
	// Normal is used for unfocused content.
	Normal tcell.Style
	// Highlight is used for the focused view.
	Highlight tcell.Style
	// ScrollThumb and ScrollTrack draw scrollbars.
	ScrollThumb tcell.Style
	ScrollTrack tcell.Style
}

// Style returns Highlight when focused, Normal otherwise.
func (p Palette) Style(focused bool) tcell.Style {
	if focused {
		return p.Highlight
	}
	return p.Normal
}

// Default returns the built-in palette.
func Default() Palette {
	return Palette{
		Normal:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Highlight:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		ScrollThumb: tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
		ScrollTrack: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	}
}

// Load resolves a palette from the "ui" section of cfg. Unknown color names
// keep the built-in value.
func Load(cfg config.Config) Palette {
	def := Default()
	fg := color(cfg, "text_fg", tcell.ColorWhite)
	bg := color(cfg, "text_bg", tcell.ColorBlack)
	return Palette{
		Normal:      tcell.StyleDefault.Foreground(fg).Background(bg),
		Highlight:   tcell.StyleDefault.Foreground(color(cfg, "focus_fg", tcell.ColorBlack)).Background(color(cfg, "focus_bg", tcell.ColorSilver)),
		ScrollThumb: def.ScrollThumb.Foreground(color(cfg, "scrollbar_thumb", tcell.ColorSilver)).Background(bg),
		ScrollTrack: def.ScrollTrack.Foreground(color(cfg, "scrollbar_track", tcell.ColorGray)).Background(bg),
	}
}

func color(cfg config.Config, key string, fallback tcell.Color) tcell.Color {
	name := cfg.GetString("ui", key, "")
	if name == "" {
		return fallback
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

var (
	mu      sync.RWMutex
	current *Palette
)

// Get returns the process palette, loading it from the system config on
// first use.
func Get() Palette {
	mu.RLock()
	p := current
	mu.RUnlock()
	if p != nil {
		return *p
	}
	loaded := Load(config.System())
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = &loaded
	}
	return *current
}

// Set replaces the process palette.
func Set(p Palette) {
	mu.Lock()
	defer mu.Unlock()
	current = &p
}
