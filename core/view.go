// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/view.go
// Summary: The View protocol every widget implements, event results and deferred callbacks.

package core

import "github.com/gdamore/tcell/v2"

// View is the contract between a widget and its container.
//
// A layout pass always calls MinSize (possibly several times, with
// different requests) before Layout, and Layout before the next Draw.
type View interface {
	// Draw renders the view into p. It must not change layout state.
	// focused selects the focus-distinct style.
	Draw(p *Painter, focused bool)

	// MinSize returns the smallest size the view needs under req, the
	// maximum room offered on each axis. A zero component is valid and
	// means no room at all.
	//
	// MinSize is a side-effecting query: views memoize row layouts and
	// size caches here so the following Layout is cheap.
	MinSize(req Vec2) Vec2

	// Layout finalizes internal state for the size the container actually
	// granted, which may be larger than the minimum.
	Layout(size Vec2)

	// OnEvent handles input. Unrecognized events must be reported as
	// ignored so the caller can try another handler.
	OnEvent(ev tcell.Event) EventResult

	// TakeFocus reports whether the view accepts keyboard focus.
	TakeFocus() bool

	// NeedsRelayout reports whether cached layout is stale.
	NeedsRelayout() bool
}

// ViewBase provides defaults for the optional parts of View.
type ViewBase struct{}

func (ViewBase) Layout(Vec2)                    {}
func (ViewBase) OnEvent(tcell.Event) EventResult { return Ignored() }
func (ViewBase) TakeFocus() bool                 { return false }
func (ViewBase) NeedsRelayout() bool             { return true }

// Callback is a deferred action produced by event handling. The host runs
// it after the event pass completes.
type Callback func(ctx *Context)

// EventResult reports what a view did with an event.
type EventResult struct {
	Consumed bool
	// Callback is optional and only meaningful when Consumed is set.
	Callback Callback
}

// Ignored is the result for events a view did not handle.
func Ignored() EventResult { return EventResult{} }

// Consumed is the result for handled events; cb may be nil.
func Consumed(cb Callback) EventResult {
	return EventResult{Consumed: true, Callback: cb}
}

// FocusCycler is implemented by containers that move focus among children.
type FocusCycler interface {
	// CycleFocus moves focus forward or backward and reports whether
	// focus stayed inside the container.
	CycleFocus(forward bool) bool
	// FocusEdge focuses the first focusable child (forward) or the last
	// one, and reports whether there was any.
	FocusEdge(forward bool) bool
}

// ChildContainer allows recursive operations over view trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(View))
}

// EnterFocus resets the focus of the containers inside v so that focus
// arriving in direction forward lands on the nearest edge. Wrappers that
// are only ChildContainers are looked through; the search stops at the
// first FocusCycler on each path.
func EnterFocus(v View, forward bool) {
	if fc, ok := v.(FocusCycler); ok {
		fc.FocusEdge(forward)
		return
	}
	if cc, ok := v.(ChildContainer); ok {
		cc.VisitChildren(func(child View) { EnterFocus(child, forward) })
	}
}
