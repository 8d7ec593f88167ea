// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"testing"

	"github.com/framegrace/texelui/core"
	"github.com/gdamore/tcell/v2"
)

func TestPainterPrintClipsToSubRegion(t *testing.T) {
	buf := core.NewBuffer(10, 3, tcell.StyleDefault)
	sub := buf.Painter().Sub(core.V(2, 1), core.V(4, 1))
	if got := sub.Size(); got != core.V(4, 1) {
		t.Fatalf("sub size = %v", got)
	}
	sub.Print(0, 0, "abcdefgh", tcell.StyleDefault)
	sub.Print(0, 1, "zzz", tcell.StyleDefault)

	if got := buf.Line(1); got != "  abcd" {
		t.Fatalf("line 1 = %q", got)
	}
	if got := buf.Line(2); got != "" {
		t.Fatalf("line 2 = %q, expected clip below sub region", got)
	}
}

func TestPainterSubSizeClamped(t *testing.T) {
	p := core.NewBuffer(5, 5, tcell.StyleDefault).Painter()
	if got := p.Sub(core.V(3, 4), core.V(10, 10)).Size(); got != core.V(2, 1) {
		t.Fatalf("clamped size = %v", got)
	}
	if got := p.Sub(core.V(7, 7), core.V(1, 1)).Size(); got != core.V(0, 0) {
		t.Fatalf("out of range size = %v", got)
	}
}

func TestPainterWideAndCombining(t *testing.T) {
	buf := core.NewBuffer(6, 1, tcell.StyleDefault)
	p := buf.Painter()
	adv := p.Print(0, 0, "あe\u0301x", tcell.StyleDefault)
	if adv != 4 {
		t.Fatalf("advance = %d, want 4", adv)
	}
	if buf.Cells[0][1].Ch != 0 {
		t.Fatalf("expected continuation cell after wide rune")
	}
	if c := buf.Cells[0][2]; c.Ch != 'e' || len(c.Comb) != 1 {
		t.Fatalf("expected e with combining mark, got %+v", c)
	}
	if got := buf.Line(0); got != "あe\u0301x" {
		t.Fatalf("line = %q", got)
	}
}

func TestPainterWideRuneNotSplitAtClip(t *testing.T) {
	buf := core.NewBuffer(3, 1, tcell.StyleDefault)
	buf.Painter().Sub(core.V(0, 0), core.V(2, 1)).Print(0, 0, "bあ", tcell.StyleDefault)
	if got := buf.Line(0); got != "b" {
		t.Fatalf("line = %q", got)
	}
}

func TestPainterTranslateKeepsClip(t *testing.T) {
	buf := core.NewBuffer(4, 2, tcell.StyleDefault)
	shifted := buf.Painter().Translate(0, -3, core.V(4, 5))
	for y := 0; y < 5; y++ {
		shifted.Print(0, y, string(rune('0'+y)), tcell.StyleDefault)
	}
	if got := buf.Lines(); got[0] != "3" || got[1] != "4" {
		t.Fatalf("lines = %q", got)
	}
}

func TestPainterBorder(t *testing.T) {
	buf := core.NewBuffer(4, 3, tcell.StyleDefault)
	buf.Painter().DrawBorder(core.Rect{W: 4, H: 3}, tcell.StyleDefault, [6]rune{'-', '|', '+', '+', '+', '+'})
	want := []string{"+--+", "|  |", "+--+"}
	for i, line := range buf.Lines() {
		if line != want[i] {
			t.Fatalf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestBufferBlitToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(5, 1)

	buf := core.NewBuffer(5, 1, tcell.StyleDefault)
	buf.Painter().Print(0, 0, "hey", tcell.StyleDefault)
	buf.Blit(screen)
	screen.Show()

	cells, w, _ := screen.GetContents()
	var got []rune
	for i := 0; i < 3 && i < w; i++ {
		got = append(got, cells[i].Runes...)
	}
	if string(got) != "hey" {
		t.Fatalf("screen shows %q", string(got))
	}
}
