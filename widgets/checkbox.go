package widgets

import (
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Checkbox is a toggleable single-line view.
// Format: "  [X] Label", with a "> " cursor instead of the blanks when focused.
type Checkbox struct {
	core.ViewBase
	label    string
	checked  bool
	onChange func(ctx *core.Context, checked bool)
	palette  theme.Palette
	stale    bool
}

// NewCheckbox creates an unchecked checkbox. onChange, if set, runs after the
// toggling event with the new state.
func NewCheckbox(label string, onChange func(ctx *core.Context, checked bool)) *Checkbox {
	return &Checkbox{
		label:    label,
		onChange: onChange,
		palette:  theme.Get(),
		stale:    true,
	}
}

func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked changes the state without firing onChange.
func (c *Checkbox) SetChecked(checked bool) { c.checked = checked }

// SetPalette overrides the theme palette.
func (c *Checkbox) SetPalette(p theme.Palette) { c.palette = p }

func (c *Checkbox) Draw(p *core.Painter, focused bool) {
	style := c.palette.Style(focused)
	p.Fill(core.Rect{W: p.Size().X, H: 1}, ' ', style)

	cursor := "  "
	if focused {
		cursor = "> "
	}
	mark := "[ ] "
	if c.checked {
		mark = "[X] "
	}
	p.Print(0, 0, cursor+mark+c.label, style)
}

// MinSize: cursor, mark and label on one line.
func (c *Checkbox) MinSize(core.Vec2) core.Vec2 {
	c.stale = false
	return core.V(6+runewidth.StringWidth(c.label), 1)
}

// OnEvent toggles on Space, Enter or a left click.
func (c *Checkbox) OnEvent(ev tcell.Event) core.EventResult {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			return c.toggle()
		}
	case *tcell.EventMouse:
		if ev.Buttons() == tcell.Button1 {
			return c.toggle()
		}
	}
	return core.Ignored()
}

func (c *Checkbox) toggle() core.EventResult {
	c.checked = !c.checked
	if c.onChange == nil {
		return core.Consumed(nil)
	}
	checked, fn := c.checked, c.onChange
	return core.Consumed(func(ctx *core.Context) { fn(ctx, checked) })
}

func (c *Checkbox) TakeFocus() bool { return true }

func (c *Checkbox) NeedsRelayout() bool { return c.stale }
