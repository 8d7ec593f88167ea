package widgets_test

import (
	"testing"

	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
	"github.com/framegrace/texelui/widgets"
	"github.com/gdamore/tcell/v2"
)

func TestButtonEnterFiresCallback(t *testing.T) {
	fired := 0
	b := widgets.NewButton("OK", func(*core.Context) { fired++ })

	res := b.OnEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !res.Consumed || res.Callback == nil {
		t.Fatalf("Enter should be consumed with a callback, got %+v", res)
	}
	if fired != 0 {
		t.Fatal("callback must not run during event handling")
	}
	res.Callback(nil)
	if fired != 1 {
		t.Fatalf("fired = %d", fired)
	}
}

func TestButtonIgnoresOtherInput(t *testing.T) {
	b := widgets.NewButton("OK", func(*core.Context) {})
	if res := b.OnEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); res.Consumed {
		t.Fatal("rune key should be ignored")
	}
	if res := b.OnEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)); res.Consumed {
		t.Fatal("mouse should be ignored")
	}
}

func TestButtonSizeAndDraw(t *testing.T) {
	b := widgets.NewButton("Go on", nil)
	if got := b.MinSize(core.V(80, 24)); got != core.V(7, 1) {
		t.Fatalf("MinSize = %v", got)
	}
	if b.NeedsRelayout() {
		t.Fatal("no relayout after MinSize")
	}

	pal := theme.Default()
	b.SetPalette(pal)
	buf := core.NewBuffer(7, 1, tcell.StyleDefault)
	b.Draw(buf.Painter(), true)
	if got := buf.Line(0); got != "<Go on>" {
		t.Fatalf("drawn %q", got)
	}
	if buf.Cells[0][6].Style != pal.Highlight {
		t.Fatal("focused button should use the highlight style")
	}

	// A wider region keeps the closing bracket at its right edge.
	buf = core.NewBuffer(10, 1, tcell.StyleDefault)
	b.Draw(buf.Painter(), false)
	if got := buf.Line(0); got != "<Go on   >" {
		t.Fatalf("drawn %q", got)
	}
	if buf.Cells[0][9].Style != pal.Normal {
		t.Fatal("unfocused button should use the normal style")
	}

	b.SetLabel("Stop")
	if !b.NeedsRelayout() || b.Label() != "Stop" {
		t.Fatal("SetLabel should request relayout")
	}
}
