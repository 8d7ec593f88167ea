package widgets

import (
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Button is a single-line label that fires a callback when Enter is pressed.
// Format: <Label>
type Button struct {
	core.ViewBase
	label    string
	callback core.Callback
	palette  theme.Palette
	stale    bool
}

// NewButton creates a button; cb runs against the application context after
// the event that activated it has been handled.
func NewButton(label string, cb core.Callback) *Button {
	return &Button{
		label:    label,
		callback: cb,
		palette:  theme.Get(),
		stale:    true,
	}
}

func (b *Button) Label() string { return b.label }

func (b *Button) SetLabel(label string) {
	b.label = label
	b.stale = true
}

// SetPalette overrides the theme palette.
func (b *Button) SetPalette(p theme.Palette) { b.palette = p }

// Draw frames the label with '<' in the first column and '>' in the last,
// highlighted when focused.
func (b *Button) Draw(p *core.Painter, focused bool) {
	style := b.palette.Style(focused)
	p.Print(1, 0, b.label, style)
	p.SetCell(0, 0, '<', style)
	p.SetCell(p.Size().X-1, 0, '>', style)
}

// MinSize is fixed: the label plus its two brackets, on one line.
func (b *Button) MinSize(core.Vec2) core.Vec2 {
	b.stale = false
	return core.V(2+runewidth.StringWidth(b.label), 1)
}

// OnEvent fires on Enter and ignores everything else.
func (b *Button) OnEvent(ev tcell.Event) core.EventResult {
	if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyEnter {
		return core.Consumed(b.callback)
	}
	return core.Ignored()
}

func (b *Button) TakeFocus() bool { return true }

func (b *Button) NeedsRelayout() bool { return b.stale }
