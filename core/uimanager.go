// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/uimanager.go
// Summary: Host for a view tree: drives layout passes, rendering, event dispatch
// and deferred callbacks against the application context.

package core

import (
	"github.com/framegrace/texelui/theme"
	"github.com/gdamore/tcell/v2"
)

// Context is handed to every deferred callback. App is the application's own
// state; the UI never inspects it.
type Context struct {
	App  any
	ui   *UIManager
	quit bool
}

// Quit asks the host loop to stop after the current event.
func (c *Context) Quit() { c.quit = true }

// Quitting reports whether Quit was called.
func (c *Context) Quitting() bool { return c.quit }

// Relayout forces a layout pass before the next render.
func (c *Context) Relayout() {
	if c.ui != nil {
		c.ui.laidOut = false
	}
}

// UIManager owns the root view. It is single-threaded: all methods must be
// called from the goroutine running the event loop.
type UIManager struct {
	W, H    int
	root    View
	ctx     *Context
	bgStyle tcell.Style

	keys    map[tcell.Key]Callback
	runes   map[rune]Callback
	pending []Callback

	laidOut  bool
	lastSize Vec2
}

// NewUIManager creates a host whose callbacks receive app.
func NewUIManager(app any) *UIManager {
	u := &UIManager{
		bgStyle: theme.Get().Normal,
		keys:    make(map[tcell.Key]Callback),
		runes:   make(map[rune]Callback),
	}
	u.ctx = &Context{App: app, ui: u}
	return u
}

// Context returns the context passed to callbacks.
func (u *UIManager) Context() *Context { return u.ctx }

// SetRoot replaces the root view.
func (u *UIManager) SetRoot(v View) {
	u.root = v
	u.laidOut = false
}

// Resize records the new screen size; layout runs on the next Render.
func (u *UIManager) Resize(w, h int) {
	u.W, u.H = max(w, 0), max(h, 0)
}

// AddGlobalCallback binds a key that is handled when the view tree ignores
// it. Use tcell.KeyRune with r for printable keys.
func (u *UIManager) AddGlobalCallback(key tcell.Key, r rune, cb Callback) {
	if key == tcell.KeyRune {
		u.runes[r] = cb
		return
	}
	u.keys[key] = cb
}

// Layout runs a layout pass if the size changed or the tree reports stale
// state. It returns whether a pass ran.
func (u *UIManager) Layout() bool {
	if u.root == nil {
		return false
	}
	size := Vec2{X: u.W, Y: u.H}
	if u.laidOut && size == u.lastSize && !u.root.NeedsRelayout() {
		return false
	}
	u.root.MinSize(size)
	u.root.Layout(size)
	u.laidOut = true
	u.lastSize = size
	return true
}

// Render lays out if needed and draws the tree into a fresh buffer.
func (u *UIManager) Render() *Buffer {
	buf := NewBuffer(u.W, u.H, u.bgStyle)
	if u.root == nil {
		return buf
	}
	u.Layout()
	u.root.Draw(buf.Painter(), true)
	return buf
}

// HandleEvent dispatches ev to the tree, falls back to global bindings, then
// runs the callbacks collected during the pass. It reports whether anything
// handled the event.
func (u *UIManager) HandleEvent(ev tcell.Event) bool {
	if rs, ok := ev.(*tcell.EventResize); ok {
		u.Resize(rs.Size())
		return true
	}

	handled := false
	if u.root != nil {
		res := u.root.OnEvent(ev)
		if res.Consumed {
			handled = true
			u.enqueue(res.Callback)
		}
	}
	if !handled {
		if key, ok := ev.(*tcell.EventKey); ok {
			if cb := u.binding(key); cb != nil {
				handled = true
				u.enqueue(cb)
			}
		}
	}
	u.runPending()
	return handled
}

func (u *UIManager) binding(ev *tcell.EventKey) Callback {
	if ev.Key() == tcell.KeyRune {
		return u.runes[ev.Rune()]
	}
	return u.keys[ev.Key()]
}

func (u *UIManager) enqueue(cb Callback) {
	if cb != nil {
		u.pending = append(u.pending, cb)
	}
}

func (u *UIManager) runPending() {
	pending := u.pending
	u.pending = nil
	for _, cb := range pending {
		cb(u.ctx)
	}
}

// Run drives the tree on screen until a callback calls Context.Quit or the
// screen stops delivering events. The screen must already be initialized.
func (u *UIManager) Run(screen tcell.Screen) error {
	u.Resize(screen.Size())
	for !u.ctx.quit {
		u.Render().Blit(screen)
		screen.Show()
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		u.HandleEvent(ev)
	}
	return nil
}
