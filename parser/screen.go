// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/screen.go
// Summary: Mutable screen buffer model: grid, cursor, current style.
// Usage: Driven by the interpreter; read by the style-run renderer.
// Notes: The grid grows downward on demand and is never resized up-front.

package parser

// Screen holds the state of a transcript parse pass: the cell grid, the
// cursor, and the current accumulated style. A fresh Screen is created for
// every pass; there is no state shared between passes.
type Screen struct {
	rows    []Row
	cursorX int
	cursorY int
	style   string
}

// NewScreen returns a screen with a single empty row and the cursor at the
// origin.
func NewScreen() *Screen {
	return &Screen{rows: []Row{{}}}
}

// Rows returns the grid. Callers must not mutate it.
func (s *Screen) Rows() []Row { return s.rows }

// Cursor returns the cursor position as (column, row).
func (s *Screen) Cursor() (int, int) { return s.cursorX, s.cursorY }

// Style returns the current accumulated style string.
func (s *Screen) Style() string { return s.style }

// ensureRow extends the grid with empty rows until row y exists.
func (s *Screen) ensureRow(y int) {
	for len(s.rows) <= y {
		s.rows = append(s.rows, Row{})
	}
}

// row returns the row under the cursor. The cursor row always exists.
func (s *Screen) row() Row { return s.rows[s.cursorY] }

// setRow replaces the row under the cursor.
func (s *Screen) setRow(r Row) { s.rows[s.cursorY] = r }

// PlaceRune writes r at the cursor with the current style and advances the
// cursor one column, padding the row with blank cells if the cursor sits
// past its end.
func (s *Screen) PlaceRune(r rune) {
	row := s.row().padTo(s.cursorX)
	if s.cursorX < len(row) {
		row[s.cursorX] = Cell{Rune: r, Style: s.style}
	} else {
		row = append(row, Cell{Rune: r, Style: s.style})
	}
	s.setRow(row)
	s.cursorX++
}

// LineFeed moves the cursor to column 0 of the next row, creating it if
// needed. The current style is deliberately left alone: style persists
// across line breaks until reset, as on a real terminal.
func (s *Screen) LineFeed() {
	s.cursorY++
	s.cursorX = 0
	s.ensureRow(s.cursorY)
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() { s.cursorX = 0 }

// Backspace moves the cursor one column left, clamped at 0.
func (s *Screen) Backspace() {
	if s.cursorX > 0 {
		s.cursorX--
	}
}

// MoveUp moves the cursor up n rows, clamped at row 0.
func (s *Screen) MoveUp(n int) {
	s.cursorY -= n
	if s.cursorY < 0 {
		s.cursorY = 0
	}
}

// MoveDown moves the cursor down n rows, extending the grid as needed.
func (s *Screen) MoveDown(n int) {
	s.cursorY += n
	s.ensureRow(s.cursorY)
}

// MoveForward moves the cursor right n columns. The row is not padded; any
// gap is materialized only when a rune is written through it.
func (s *Screen) MoveForward(n int) { s.cursorX += n }

// MoveBackward moves the cursor left n columns, clamped at 0.
func (s *Screen) MoveBackward(n int) {
	s.cursorX -= n
	if s.cursorX < 0 {
		s.cursorX = 0
	}
}

// EraseLine implements erase-in-line (CSI K) for modes 0, 1 and 2.
func (s *Screen) EraseLine(mode int) {
	switch mode {
	case 0:
		// Cursor to end of line: drop the tail.
		row := s.row()
		if s.cursorX < len(row) {
			s.setRow(row[:s.cursorX])
		}
	case 1:
		// Start of line to cursor: blank cells, keep the row length.
		row := s.row()
		for x := 0; x < s.cursorX && x < len(row); x++ {
			row[x] = BlankCell()
		}
	case 2:
		s.setRow(Row{})
	}
}

// EraseDisplay implements erase-in-display (CSI J) for modes 0 and 2.
// Mode 2 clears the whole grid, homes the cursor and resets the current
// style, matching a full-screen clear on a live terminal.
func (s *Screen) EraseDisplay(mode int) {
	switch mode {
	case 0:
		s.EraseLine(0)
		for y := s.cursorY + 1; y < len(s.rows); y++ {
			s.rows[y] = Row{}
		}
	case 2:
		s.rows = []Row{{}}
		s.cursorX, s.cursorY = 0, 0
		s.style = ""
	}
}

// DeleteChars removes n cells at the cursor column, shifting the rest of the
// row left.
func (s *Screen) DeleteChars(n int) {
	row := s.row()
	if s.cursorX >= len(row) {
		return
	}
	end := s.cursorX + n
	if end > len(row) {
		end = len(row)
	}
	s.setRow(append(row[:s.cursorX], row[end:]...))
}

// SetStyle appends an SGR sequence to the current accumulated style.
func (s *Screen) SetStyle(seq string) { s.style += seq }

// ResetStyle clears the current accumulated style.
func (s *Screen) ResetStyle() { s.style = "" }
