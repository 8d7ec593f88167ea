package widgets

import (
	"github.com/framegrace/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// Stack lays its children out top to bottom. Each child gets the height it
// asked for when everything fits; the last child absorbs any slack. Tab and Backtab move focus
// among the children that accept it.
type Stack struct {
	children   []core.View
	heights    []int
	focus      int // index of the focused child, -1 for none
	trapsFocus bool
}

// NewStack creates a stack with the given children.
func NewStack(children ...core.View) *Stack {
	return &Stack{children: children, focus: -1}
}

// Add appends a child.
func (s *Stack) Add(v core.View) {
	s.children = append(s.children, v)
}

// SetTrapsFocus sets whether this Stack wraps focus at its ends instead of
// letting the parent move it elsewhere. Set it on the root container.
func (s *Stack) SetTrapsFocus(trap bool) { s.trapsFocus = trap }

// Focused returns the focused child, or nil.
func (s *Stack) Focused() core.View {
	if s.focus < 0 || s.focus >= len(s.children) {
		return nil
	}
	return s.children[s.focus]
}

// distribute asks every child for its height under the full request. When
// the total overflows, rows are taken from the tallest children first.
func (s *Stack) distribute(req core.Vec2) []int {
	heights := make([]int, len(s.children))
	total := 0
	for i, c := range s.children {
		heights[i] = c.MinSize(req).Y
		total += heights[i]
	}
	for over := total - req.Y; over > 0; {
		tallest, second := 0, 0
		for i, h := range heights {
			if h > heights[tallest] {
				tallest = i
			}
		}
		for i, h := range heights {
			if i != tallest && h > second {
				second = h
			}
		}
		cut := min(over, max(heights[tallest]-second, 1))
		heights[tallest] -= cut
		over -= cut
	}
	return heights
}

// MinSize stacks the children's minimum sizes, shrinking the tallest ones
// when they do not all fit in req.
func (s *Stack) MinSize(req core.Vec2) core.Vec2 {
	var total core.Vec2
	for i, h := range s.distribute(req) {
		sz := s.children[i].MinSize(core.V(req.X, h))
		total.X = max(total.X, sz.X)
		total.Y += min(sz.Y, h)
	}
	return total
}

// Layout assigns final heights and lays every child out. The last child
// gets whatever height is left.
func (s *Stack) Layout(size core.Vec2) {
	s.heights = s.distribute(size)
	used := 0
	for _, h := range s.heights {
		used += h
	}
	if n := len(s.heights); n > 0 && used < size.Y {
		s.heights[n-1] += size.Y - used
	}
	for i, c := range s.children {
		child := core.V(size.X, s.heights[i])
		c.MinSize(child)
		c.Layout(child)
	}
	if s.Focused() == nil || !s.Focused().TakeFocus() {
		s.focus = s.first(0, 1)
	}
}

// Draw draws each child in its band; only the focused child is drawn
// focused.
func (s *Stack) Draw(p *core.Painter, focused bool) {
	width := p.Size().X
	y := 0
	for i, c := range s.children {
		if i >= len(s.heights) {
			break
		}
		h := s.heights[i]
		c.Draw(p.Sub(core.V(0, y), core.V(width, h)), focused && i == s.focus)
		y += h
	}
}

// OnEvent offers the event to the focused child, then handles focus
// movement.
func (s *Stack) OnEvent(ev tcell.Event) core.EventResult {
	if c := s.Focused(); c != nil {
		if res := c.OnEvent(ev); res.Consumed {
			return res
		}
	}
	if key, ok := ev.(*tcell.EventKey); ok {
		switch key.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			forward := key.Key() == tcell.KeyTab && key.Modifiers()&tcell.ModShift == 0
			if s.CycleFocus(forward) {
				return core.Consumed(nil)
			}
		}
	}
	return core.Ignored()
}

// CycleFocus implements core.FocusCycler. It returns false at either end
// unless the stack traps focus.
func (s *Stack) CycleFocus(forward bool) bool {
	step := 1
	if !forward {
		step = -1
	}
	if next := s.first(s.focus+step, step); next >= 0 {
		s.enter(next, forward)
		return true
	}
	if !s.trapsFocus {
		return false
	}
	if next := s.edge(forward); next >= 0 {
		s.enter(next, forward)
		return true
	}
	return false
}

// edge returns the first focusable child from the start (forward) or the
// end, or -1.
func (s *Stack) edge(forward bool) int {
	if forward {
		return s.first(0, 1)
	}
	return s.first(len(s.children)-1, -1)
}

// FocusEdge implements core.FocusCycler.
func (s *Stack) FocusEdge(forward bool) bool {
	next := s.edge(forward)
	if next < 0 {
		return false
	}
	s.enter(next, forward)
	return true
}

// enter focuses child i. Containers inside it start at the end focus
// arrives from.
func (s *Stack) enter(i int, forward bool) {
	s.focus = i
	core.EnterFocus(s.children[i], forward)
}

// first returns the first index from i, moving by step, whose child accepts
// focus, or -1.
func (s *Stack) first(i, step int) int {
	for ; i >= 0 && i < len(s.children); i += step {
		if s.children[i].TakeFocus() {
			return i
		}
	}
	return -1
}

// TakeFocus accepts focus if any child does.
func (s *Stack) TakeFocus() bool {
	return s.first(0, 1) >= 0
}

// NeedsRelayout reports whether any child needs relayout.
func (s *Stack) NeedsRelayout() bool {
	if len(s.heights) != len(s.children) {
		return true
	}
	for _, c := range s.children {
		if c.NeedsRelayout() {
			return true
		}
	}
	return false
}

// VisitChildren implements core.ChildContainer.
func (s *Stack) VisitChildren(f func(core.View)) {
	for _, c := range s.children {
		f(c)
	}
}
