// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateScrollClamp(t *testing.T) {
	var b Base
	b.SetHeights(3, 10)

	b.ScrollDown(100)
	if b.Offset() != 7 {
		t.Fatalf("expected offset 7 after ScrollDown(100), got %d", b.Offset())
	}
	if b.CanScrollDown() || !b.CanScrollUp() {
		t.Fatalf("unexpected predicates at bottom: %+v", b.State())
	}

	b.ScrollUp(100)
	if b.Offset() != 0 {
		t.Fatalf("expected offset 0 after ScrollUp(100), got %d", b.Offset())
	}
}

func TestStateOffsetSurvivesResize(t *testing.T) {
	var b Base
	b.SetHeights(3, 10)
	b.ScrollDown(4)

	b.SetHeights(5, 10)
	if b.Offset() != 4 {
		t.Fatalf("offset should be kept when still valid, got %d", b.Offset())
	}
	b.SetHeights(8, 10)
	if b.Offset() != 2 {
		t.Fatalf("offset should be clamped to 2, got %d", b.Offset())
	}
	b.SetHeights(10, 4)
	if b.Offset() != 0 || b.Scrollable() {
		t.Fatalf("content that fits must not scroll: %+v", b.State())
	}
}

func TestStateTopBottom(t *testing.T) {
	s := NewState(20, 5).ScrollToBottom()
	if s.Offset != 15 {
		t.Fatalf("bottom offset = %d", s.Offset)
	}
	if s = s.ScrollToTop(); s.Offset != 0 {
		t.Fatalf("top offset = %d", s.Offset)
	}
}

func TestStateVisibleRange(t *testing.T) {
	s := NewState(4, 10)
	if start, end := s.VisibleRange(); start != 0 || end != 4 {
		t.Fatalf("range = [%d,%d)", start, end)
	}
	s = NewState(10, 3).ScrollBy(5)
	if start, end := s.VisibleRange(); start != 5 || end != 8 {
		t.Fatalf("range = [%d,%d)", start, end)
	}
}

func TestViewportClampInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	var b Base
	for i := 0; i < 2000; i++ {
		switch r.IntN(5) {
		case 0:
			b.ScrollUp(r.IntN(30))
		case 1:
			b.ScrollDown(r.IntN(30))
		case 2:
			b.SetHeights(r.IntN(20), r.IntN(40))
		case 3:
			b.ScrollTop()
		case 4:
			b.ScrollBottom()
		}
		s := b.State()
		require.GreaterOrEqual(t, s.Offset, 0, "step %d: %+v", i, s)
		require.LessOrEqual(t, s.Offset, max(0, s.ContentHeight-s.ViewportHeight), "step %d: %+v", i, s)
		require.Equal(t, s.Offset > 0, b.CanScrollUp())
		require.Equal(t, s.Offset+s.ViewportHeight < s.ContentHeight, b.CanScrollDown())
		require.Equal(t, s.ContentHeight > s.ViewportHeight, b.Scrollable())
	}
}
