package widgets_test

import (
	"testing"

	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
	"github.com/framegrace/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestBorderFramesChild(t *testing.T) {
	b := widgets.NewBorder(widgets.NewButton("OK", nil))
	assert.Equal(t, core.V(6, 3), b.MinSize(core.V(20, 10)))
	b.Layout(core.V(6, 3))

	pal := theme.Default()
	b.SetPalette(pal)
	buf := core.NewBuffer(6, 3, tcell.StyleDefault)
	b.Draw(buf.Painter(), true)
	assert.Equal(t, []string{"┌────┐", "│<OK>│", "└────┘"}, buf.Lines())
	assert.Equal(t, pal.Highlight, buf.Cells[0][0].Style)
	assert.True(t, b.TakeFocus())
}

func TestBorderShrinksChildRequest(t *testing.T) {
	tv := widgets.NewTextView("abcdefgh")
	b := widgets.NewBorder(tv)
	assert.Equal(t, core.V(6, 4), b.MinSize(core.V(6, 10)))
	assert.False(t, b.TakeFocus())
}
