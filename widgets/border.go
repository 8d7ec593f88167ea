package widgets

import (
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
	"github.com/gdamore/tcell/v2"
)

var frame = core.V(2, 2)

// Border draws a frame around a child rendered inside it.
type Border struct {
	Child   core.View
	Charset [6]rune // h, v, tl, tr, bl, br
	palette theme.Palette
}

func NewBorder(child core.View) *Border {
	return &Border{
		Child:   child,
		Charset: [6]rune{'─', '│', '┌', '┐', '└', '┘'},
		palette: theme.Get(),
	}
}

// SetPalette overrides the theme palette.
func (b *Border) SetPalette(p theme.Palette) { b.palette = p }

func (b *Border) MinSize(req core.Vec2) core.Vec2 {
	return b.Child.MinSize(req.Sub(frame)).Add(frame)
}

func (b *Border) Layout(size core.Vec2) {
	b.Child.Layout(size.Sub(frame))
}

// Draw uses the highlight style for the frame while focused.
func (b *Border) Draw(p *core.Painter, focused bool) {
	size := p.Size()
	p.DrawBorder(core.Rect{W: size.X, H: size.Y}, b.palette.Style(focused), b.Charset)
	b.Child.Draw(p.Sub(core.V(1, 1), size.Sub(frame)), focused)
}

func (b *Border) OnEvent(ev tcell.Event) core.EventResult { return b.Child.OnEvent(ev) }

func (b *Border) TakeFocus() bool { return b.Child.TakeFocus() }

func (b *Border) NeedsRelayout() bool { return b.Child.NeedsRelayout() }

// VisitChildren implements core.ChildContainer.
func (b *Border) VisitChildren(f func(core.View)) { f(b.Child) }
