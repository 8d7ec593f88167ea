package widgets

import (
	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/scroll"
	"github.com/framegrace/texelui/theme"
	"github.com/framegrace/texelui/wrap"
	"github.com/gdamore/tcell/v2"
)

// TextView shows a fixed text, wrapped to the width it is given. When the
// text is taller than its viewport and scrolling is enabled it reserves a
// scrollbar and responds to navigation keys.
type TextView struct {
	content string
	rows    []wrap.Row

	align core.Align

	// If false, never scroll and always ask for the full height.
	scrollable bool
	scrollbase scroll.Base

	lastSize *core.XYCache
	width    *int

	// PageSize is the number of rows PgUp/PgDn move.
	PageSize int
	palette  theme.Palette
}

// NewTextView creates a text view. A single trailing newline is dropped.
func NewTextView(content string) *TextView {
	cfg := config.System()
	t := &TextView{
		content:    stripLastNewline(content),
		align:      core.AlignTopLeft(),
		scrollable: cfg.GetBool("textview", "scrollable", true),
		PageSize:   cfg.GetInt("textview", "page_size", 10),
	}
	t.SetPalette(theme.Get())
	return t
}

func stripLastNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}

// SetPalette overrides the theme palette.
func (t *TextView) SetPalette(p theme.Palette) {
	t.palette = p
	t.scrollbase.ThumbStyle = p.ScrollThumb
	t.scrollbase.TrackStyle = p.ScrollTrack
}

// SetScrollable enables or disables scrolling. When disabled the view never
// scrolls and always asks for its full height.
func (t *TextView) SetScrollable(scrollable bool) {
	t.scrollable = scrollable
	t.invalidate()
}

func (t *TextView) IsScrollable() bool { return t.scrollable }

func (t *TextView) SetAlign(a core.Align) {
	t.align = a
	t.invalidate()
}

func (t *TextView) SetHAlign(h core.HAlign) {
	t.align.H = h
	t.invalidate()
}

func (t *TextView) SetVAlign(v core.VAlign) {
	t.align.V = v
	t.invalidate()
}

// Center centers the text on both axes and returns the view for chaining.
func (t *TextView) Center() *TextView {
	t.SetAlign(core.AlignCentered())
	return t
}

// SetContent replaces the text. A single trailing newline is dropped.
func (t *TextView) SetContent(content string) {
	t.content = stripLastNewline(content)
	t.invalidate()
}

// Content returns the current text.
func (t *TextView) Content() string { return t.content }

// Rows returns the rows of the last layout.
func (t *TextView) Rows() []wrap.Row { return t.rows }

// Scroll exposes the viewport.
func (t *TextView) Scroll() *scroll.Base { return &t.scrollbase }

// invalidate drops the size cache so the next size query rewraps.
func (t *TextView) invalidate() {
	t.lastSize = nil
}

func (t *TextView) computeRows(size core.Vec2) {
	if t.lastSize.Accept(size) {
		return
	}
	t.lastSize = nil
	t.rows = nil
	t.width = nil

	if size.X == 0 {
		// No room at all; an empty layout is exact for this request.
		t.lastSize = core.BuildCache(core.Vec2{}, size)
		return
	}

	t.rows = wrap.Rows(t.content, size.X)
	scrollbar := 0
	if t.scrollable && len(t.rows) > size.Y {
		scrollbar = scroll.ScrollbarWidth
		if size.X < scrollbar {
			// Not even room for the scrollbar. Leave the cache empty so the
			// next pass tries again.
			t.rows = nil
			return
		}
		t.rows = wrap.Rows(t.content, size.X-scrollbar)
		if len(t.rows) == 0 && t.content != "" {
			// The scrollbar took every column. Same as above.
			return
		}
	}

	if len(t.rows) > 0 {
		w := 0
		for _, row := range t.rows {
			w = max(w, row.Width)
		}
		w += scrollbar
		t.width = &w
	}

	t.lastSize = core.BuildCache(t.ideal(size), size)
}

// ideal is the size the current rows need under req: the widest row (plus
// the scrollbar) by the row count, the latter capped by req when scrolling.
func (t *TextView) ideal(req core.Vec2) core.Vec2 {
	size := core.V(0, len(t.rows))
	if t.width != nil {
		size.X = *t.width
	}
	if t.scrollable && size.Y > req.Y {
		size.Y = req.Y
	}
	return size
}

// MinSize wraps the text for req (or reuses the cached wrap) and returns
// the size it needs.
func (t *TextView) MinSize(req core.Vec2) core.Vec2 {
	t.computeRows(req)
	return t.ideal(req)
}

// Layout finalizes rows for size and sizes the viewport.
func (t *TextView) Layout(size core.Vec2) {
	t.computeRows(size)
	if !t.scrollable {
		t.scrollbase.SetHeights(len(t.rows), len(t.rows))
		return
	}
	t.scrollbase.SetHeights(size.Y, len(t.rows))
}

// Draw renders the visible rows with the configured alignment.
func (t *TextView) Draw(p *core.Painter, focused bool) {
	style := t.palette.Normal
	p.Clear(style)

	size := p.Size()
	offset := t.align.V.Offset(len(t.rows), size.Y)
	sub := p.Sub(core.V(0, offset), size)

	viewport := t.scrollbase
	if focused {
		viewport.ThumbStyle = t.palette.Highlight
	}
	viewport.Draw(sub, func(rp *core.Painter, i int) {
		row := t.rows[i]
		x := t.align.H.Offset(row.Width, rp.Size().X)
		rp.Print(x, 0, row.Text(t.content), style)
	})
}

// OnEvent scrolls on navigation keys and the mouse wheel. Everything is
// ignored while the view cannot scroll.
func (t *TextView) OnEvent(ev tcell.Event) core.EventResult {
	if !t.scrollable || !t.scrollbase.Scrollable() {
		return core.Ignored()
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyHome:
			t.scrollbase.ScrollTop()
		case tcell.KeyEnd:
			t.scrollbase.ScrollBottom()
		case tcell.KeyUp:
			if !t.scrollbase.CanScrollUp() {
				return core.Ignored()
			}
			t.scrollbase.ScrollUp(1)
		case tcell.KeyDown:
			if !t.scrollbase.CanScrollDown() {
				return core.Ignored()
			}
			t.scrollbase.ScrollDown(1)
		case tcell.KeyPgDn:
			t.scrollbase.ScrollDown(t.PageSize)
		case tcell.KeyPgUp:
			t.scrollbase.ScrollUp(t.PageSize)
		default:
			return core.Ignored()
		}
	case *tcell.EventMouse:
		switch ev.Buttons() {
		case tcell.WheelUp:
			if !t.scrollbase.CanScrollUp() {
				return core.Ignored()
			}
			t.scrollbase.ScrollUp(3)
		case tcell.WheelDown:
			if !t.scrollbase.CanScrollDown() {
				return core.Ignored()
			}
			t.scrollbase.ScrollDown(3)
		default:
			return core.Ignored()
		}
	default:
		return core.Ignored()
	}
	return core.Consumed(nil)
}

// TakeFocus accepts focus only while there is something to scroll, so static
// text is skipped by focus traversal.
func (t *TextView) TakeFocus() bool {
	return t.scrollable && t.scrollbase.Scrollable()
}

func (t *TextView) NeedsRelayout() bool { return t.lastSize == nil }
