// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wrap/wrap.go
// Summary: Splits text into display rows no wider than a column limit.

// Package wrap breaks a text buffer into rows for display. Rows are byte
// ranges into the original text, measured in terminal columns.
package wrap

import (
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Row is one displayed line: the half-open byte range [Start, End) of the
// source text and its width in columns.
type Row struct {
	Start int
	End   int
	Width int
}

// Text returns the row's slice of content.
func (r Row) Text(content string) string { return content[r.Start:r.End] }

// Iterator yields the rows of a text one at a time. It cannot be restarted.
type Iterator struct {
	content string
	width   int
	start   int
	// lineEnd is the byte offset of the newline (or end of text) closing
	// the logical line that contains start.
	lineEnd int
}

// New returns an iterator over the rows of content wrapped at width columns.
func New(content string, width int) *Iterator {
	return &Iterator{content: content, width: width, lineEnd: -1}
}

// Next returns the next row, or false once the text is exhausted.
//
// Explicit newlines always end a row and belong to no row. A line that does
// not fit is broken after the last space that keeps the row within width;
// that space is dropped, and so is a newline that directly follows it. A line
// with no usable space is cut on a grapheme boundary, always keeping at least
// one cluster so every call makes progress.
func (it *Iterator) Next() (Row, bool) {
	if it.width <= 0 || it.start >= len(it.content) {
		return Row{}, false
	}

	if it.start > it.lineEnd {
		if i := strings.IndexByte(it.content[it.start:], '\n'); i >= 0 {
			it.lineEnd = it.start + i
		} else {
			it.lineEnd = len(it.content)
		}
	}
	hard := it.lineEnd < len(it.content)
	line := it.content[it.start:it.lineEnd]

	n, w, all := fit(line, it.width)
	if all {
		row := Row{Start: it.start, End: it.lineEnd, Width: w}
		it.start = it.lineEnd
		if hard {
			it.start++
		}
		return row, true
	}

	// line[n] is the first byte that does not fit; a space there still
	// allows a break right before it.
	if i := strings.LastIndexByte(line[:n+1], ' '); i > 0 {
		_, w, _ := fit(line[:i], it.width)
		row := Row{Start: it.start, End: it.start + i, Width: w}
		it.start += i + 1
		if hard && it.start == it.lineEnd {
			it.start++
		}
		return row, true
	}

	if n == 0 {
		n, w = firstCluster(line)
	}
	row := Row{Start: it.start, End: it.start + n, Width: w}
	it.start += n
	return row, true
}

// All exposes the remaining rows as a sequence.
func (it *Iterator) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for {
			row, ok := it.Next()
			if !ok || !yield(row) {
				return
			}
		}
	}
}

// Rows collects every row of content wrapped at width.
func Rows(content string, width int) []Row {
	var rows []Row
	for row := range New(content, width).All() {
		rows = append(rows, row)
	}
	return rows
}

// fit returns the byte length and width of the longest run of whole
// grapheme clusters from the start of line that fits in width, and whether
// that run is the whole line. Measuring stops at the first cluster that
// overflows.
func fit(line string, width int) (n, w int, all bool) {
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, st := uniseg.FirstGraphemeClusterInString(rest, state)
		cw := runewidth.StringWidth(cluster)
		if w+cw > width {
			return n, w, false
		}
		n += len(cluster)
		w += cw
		rest, state = next, st
	}
	return n, w, true
}

// firstCluster returns the byte length and width of line's first grapheme
// cluster.
func firstCluster(line string) (int, int) {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line, -1)
	return len(cluster), runewidth.StringWidth(cluster)
}
