// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/framegrace/texelui/config"
	"github.com/gdamore/tcell/v2"
)

func TestLoadResolvesColorNames(t *testing.T) {
	cfg := config.Config{
		"ui": map[string]interface{}{
			"focus_bg": "navy",
			"text_fg":  "#ff0000",
		},
	}
	p := Load(cfg)

	_, bg, _ := p.Highlight.Decompose()
	if bg != tcell.ColorNavy {
		t.Fatalf("expected navy focus background, got %v", bg)
	}
	fg, _, _ := p.Normal.Decompose()
	if fg != tcell.NewHexColor(0xff0000) {
		t.Fatalf("expected red text, got %v", fg)
	}
}

func TestLoadUnknownColorFallsBack(t *testing.T) {
	p := Load(config.Config{"ui": map[string]interface{}{"focus_bg": "no-such-color"}})
	_, bg, _ := p.Highlight.Decompose()
	if bg != tcell.ColorSilver {
		t.Fatalf("expected fallback silver, got %v", bg)
	}
}

func TestStyleSelectsByFocus(t *testing.T) {
	p := Default()
	if p.Style(true) != p.Highlight || p.Style(false) != p.Normal {
		t.Fatalf("Style did not select by focus")
	}
}

func TestSetOverridesGet(t *testing.T) {
	want := Default()
	want.Normal = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	Set(want)
	if Get().Normal != want.Normal {
		t.Fatalf("Get did not return the palette passed to Set")
	}
}
