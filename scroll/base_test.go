// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"fmt"
	"testing"

	"github.com/framegrace/texelui/core"
	"github.com/gdamore/tcell/v2"
)

func TestBaseDrawDelegatesVisibleRows(t *testing.T) {
	var b Base
	b.SetHeights(3, 10)
	b.ScrollDown(4)

	buf := core.NewBuffer(6, 3, tcell.StyleDefault)
	var seen []int
	b.Draw(buf.Painter(), func(p *core.Painter, i int) {
		seen = append(seen, i)
		if p.Size() != core.V(6-ScrollbarWidth, 1) {
			t.Fatalf("row painter size = %v", p.Size())
		}
		p.Print(0, 0, fmt.Sprintf("row%d", i), tcell.StyleDefault)
	})

	if len(seen) != 3 || seen[0] != 4 || seen[2] != 6 {
		t.Fatalf("visible rows = %v", seen)
	}
	// Row text is clipped to leave room for the scrollbar.
	if got := buf.Line(0); got[:4] != "row4" || []rune(got)[5] == ' ' {
		t.Fatalf("line 0 = %q", got)
	}
}

func TestBaseDrawWithoutScrollbarWhenContentFits(t *testing.T) {
	var b Base
	b.SetHeights(5, 2)

	buf := core.NewBuffer(4, 5, tcell.StyleDefault)
	var seen []int
	b.Draw(buf.Painter(), func(p *core.Painter, i int) {
		seen = append(seen, i)
		if p.Size().X != 4 {
			t.Fatalf("full width expected, got %v", p.Size())
		}
	})
	if len(seen) != 2 {
		t.Fatalf("visible rows = %v", seen)
	}
	for y := 0; y < 5; y++ {
		if buf.Cells[y][3].Ch != ' ' {
			t.Fatalf("unexpected scrollbar cell at row %d", y)
		}
	}
}
