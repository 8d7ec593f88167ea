// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/sizecache.go
// Summary: Memoized minimum sizes keyed on the size request that produced them.

package core

// SizeCache remembers, for one axis, the size a view computed and the request
// it was computed under.
type SizeCache struct {
	Value   int
	Request int
	// Constrained is set when the view used all the room it was offered.
	Constrained bool
}

// NewSizeCache builds the cache entry for value computed under request.
func NewSizeCache(value, request int) SizeCache {
	return SizeCache{Value: value, Request: request, Constrained: value >= request}
}

// Accept reports whether the cached value is still valid under request.
// An identical request is always accepted. A larger-or-equal request is
// accepted only when the cached request left room to spare, since the
// view's minimum would not change.
//
// This assumes the minimum size is monotonic in the available room, which
// wrapped text with force-broken words does not strictly guarantee.
func (c SizeCache) Accept(request int) bool {
	if request == c.Request {
		return true
	}
	return !c.Constrained && request >= c.Value
}

// XYCache pairs the caches for both axes.
type XYCache struct {
	X, Y SizeCache
}

// BuildCache returns the cache for size computed under request.
func BuildCache(size, request Vec2) *XYCache {
	return &XYCache{
		X: NewSizeCache(size.X, request.X),
		Y: NewSizeCache(size.Y, request.Y),
	}
}

// Accept is nil-safe: a missing cache accepts nothing.
func (c *XYCache) Accept(request Vec2) bool {
	if c == nil {
		return false
	}
	return c.X.Accept(request.X) && c.Y.Accept(request.Y)
}

// Value returns the cached size.
func (c *XYCache) Value() Vec2 {
	if c == nil {
		return Vec2{}
	}
	return Vec2{X: c.X.Value, Y: c.Y.Value}
}
