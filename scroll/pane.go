// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/pane.go
// Summary: Pane view that scrolls a child whose content exceeds the viewport.
// Composes State and Indicators primitives.

package scroll

import (
	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
	"github.com/gdamore/tcell/v2"
)

// Pane gives its child all the height it asks for and shows a window of it.
// It handles vertical scrolling with keyboard and mouse wheel input.
type Pane struct {
	child           core.View
	childHeight     int // Total height of the child content
	state           State
	showIndicators  bool
	indicatorConfig IndicatorConfig
}

// NewPane wraps child in a scroll pane. Indicators follow the
// scroll.indicators config key.
func NewPane(child core.View) *Pane {
	tm := theme.Get()
	return &Pane{
		child:           child,
		showIndicators:  config.System().GetBool("scroll", "indicators", true),
		indicatorConfig: DefaultIndicatorConfig(tm.ScrollThumb),
	}
}

// Child returns the scrolled view.
func (sp *Pane) Child() core.View { return sp.child }

// State returns the current scroll state.
func (sp *Pane) State() State { return sp.state }

// ShowIndicators enables or disables scroll indicators.
func (sp *Pane) ShowIndicators(show bool) { sp.showIndicators = show }

// SetIndicatorConfig sets the indicator configuration.
func (sp *Pane) SetIndicatorConfig(cfg IndicatorConfig) { sp.indicatorConfig = cfg }

// MinSize asks the child for its size with unbounded height and reports at
// most the requested height.
func (sp *Pane) MinSize(req core.Vec2) core.Vec2 {
	want := sp.child.MinSize(core.V(req.X, core.Unbounded))
	return core.V(want.X, min(want.Y, req.Y))
}

// Layout gives the child its full height, at least the viewport's.
func (sp *Pane) Layout(size core.Vec2) {
	want := sp.child.MinSize(core.V(size.X, core.Unbounded))
	sp.childHeight = max(want.Y, size.Y)
	sp.child.Layout(core.V(size.X, sp.childHeight))
	sp.state = sp.state.WithViewportHeight(size.Y).WithContentHeight(sp.childHeight)
}

// Draw renders the child shifted up by the scroll offset and clipped to the
// viewport.
func (sp *Pane) Draw(p *core.Painter, focused bool) {
	size := p.Size()
	shifted := p.Translate(0, -sp.state.Offset, core.V(size.X, sp.childHeight))
	sp.child.Draw(shifted, focused)

	if sp.showIndicators {
		DrawIndicators(p, sp.state, sp.indicatorConfig)
	}
}

func (sp *Pane) ScrollBy(delta int) { sp.state = sp.state.ScrollBy(delta) }

func (sp *Pane) ScrollToTop() { sp.state = sp.state.ScrollToTop() }

func (sp *Pane) ScrollToBottom() { sp.state = sp.state.ScrollToBottom() }

// OnEvent handles page and wheel scrolling, routes other events to the child
// and falls back to line scrolling with Up/Down.
func (sp *Pane) OnEvent(ev tcell.Event) core.EventResult {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyPgUp:
			sp.ScrollBy(-sp.state.ViewportHeight)
			return core.Consumed(nil)
		case tcell.KeyPgDn:
			sp.ScrollBy(sp.state.ViewportHeight)
			return core.Consumed(nil)
		case tcell.KeyHome:
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				sp.ScrollToTop()
				return core.Consumed(nil)
			}
		case tcell.KeyEnd:
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				sp.ScrollToBottom()
				return core.Consumed(nil)
			}
		}

		if res := sp.child.OnEvent(ev); res.Consumed {
			return res
		}

		switch ev.Key() {
		case tcell.KeyUp:
			if sp.state.CanScrollUp() {
				sp.ScrollBy(-1)
				return core.Consumed(nil)
			}
		case tcell.KeyDown:
			if sp.state.CanScrollDown() {
				sp.ScrollBy(1)
				return core.Consumed(nil)
			}
		}
		return core.Ignored()

	case *tcell.EventMouse:
		switch ev.Buttons() {
		case tcell.WheelUp:
			if sp.state.CanScrollUp() {
				sp.ScrollBy(-3)
				return core.Consumed(nil)
			}
		case tcell.WheelDown:
			if sp.state.CanScrollDown() {
				sp.ScrollBy(3)
				return core.Consumed(nil)
			}
		}
	}
	return sp.child.OnEvent(ev)
}

// TakeFocus accepts focus when the child does or there is anything to scroll.
func (sp *Pane) TakeFocus() bool {
	return sp.child.TakeFocus() || sp.state.CanScroll()
}

func (sp *Pane) NeedsRelayout() bool { return sp.child.NeedsRelayout() }

// VisitChildren implements core.ChildContainer.
func (sp *Pane) VisitChildren(f func(core.View)) { f(sp.child) }
