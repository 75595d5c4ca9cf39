// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/helpers_test.go
// Summary: Shared assertion helpers for the parser tests.

package parser

import "testing"

// ESC is the escape character.
const ESC = "\x1b"

// gridChars renders every row of a screen as a plain string.
func gridChars(s *Screen) []string {
	lines := make([]string, len(s.Rows()))
	for y, row := range s.Rows() {
		lines[y] = row.text()
	}
	return lines
}

// assertGrid asserts that the screen's rows match the expected strings.
func assertGrid(t *testing.T, s *Screen, expected []string) {
	t.Helper()
	actual := gridChars(s)
	if len(actual) != len(expected) {
		t.Fatalf("row count: expected %d rows %q, got %d rows %q",
			len(expected), expected, len(actual), actual)
	}
	for y := range expected {
		if actual[y] != expected[y] {
			t.Errorf("row %d: expected %q, got %q", y, expected[y], actual[y])
		}
	}
}

// assertCell asserts the rune and style of a single grid cell.
func assertCell(t *testing.T, s *Screen, y, x int, r rune, style string) {
	t.Helper()
	rows := s.Rows()
	if y >= len(rows) || x >= len(rows[y]) {
		t.Fatalf("cell (%d,%d) out of range (grid %v)", y, x, gridChars(s))
	}
	cell := rows[y][x]
	if cell.Rune != r || cell.Style != style {
		t.Errorf("cell (%d,%d): expected {%q %q}, got {%q %q}",
			y, x, r, style, cell.Rune, cell.Style)
	}
}

// assertCursor asserts the cursor position as (column, row).
func assertCursor(t *testing.T, s *Screen, x, y int) {
	t.Helper()
	cx, cy := s.Cursor()
	if cx != x || cy != y {
		t.Errorf("cursor: expected (%d,%d), got (%d,%d)", x, y, cx, cy)
	}
}
