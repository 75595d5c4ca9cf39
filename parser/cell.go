// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/cell.go
// Summary: Cell and row primitives for the transcript screen buffer.
// Usage: Consumed by the screen model when interpreting VT sequences.
// Notes: Keeps buffer concerns isolated from rendering.

package parser

// Cell is a single character cell in the screen buffer. Style is the literal
// concatenation of every SGR escape sequence applied since the last reset,
// in application order. An empty Style means the cell is unstyled.
type Cell struct {
	Rune  rune
	Style string
}

// BlankCell is the cell written when a row is padded or blanked.
func BlankCell() Cell {
	return Cell{Rune: ' ', Style: ""}
}

// Row is an ordered sequence of cells. Rows grow on demand; a row is never
// shorter than the highest column written through it.
type Row []Cell

// padTo extends the row with blank unstyled cells until it is at least
// width cells long.
func (r Row) padTo(width int) Row {
	for len(r) < width {
		r = append(r, BlankCell())
	}
	return r
}

// clone returns an independent copy of the row.
func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// text returns the row's characters as a string. Zero runes read as spaces.
func (r Row) text() string {
	runes := make([]rune, len(r))
	for i, c := range r {
		if c.Rune == 0 {
			runes[i] = ' '
		} else {
			runes[i] = c.Rune
		}
	}
	return string(runes)
}
