// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/interp_test.go
// Summary: Tests for the buffer interpreter against full transcripts.

package parser

import "testing"

func TestParseStyledCells(t *testing.T) {
	s := Parse("A" + ESC + "[31mB" + ESC + "[0mC")

	assertGrid(t, s, []string{"ABC"})
	assertCell(t, s, 0, 0, 'A', "")
	assertCell(t, s, 0, 1, 'B', ESC+"[31m")
	assertCell(t, s, 0, 2, 'C', "")
}

func TestParseCarriageReturnOverwrites(t *testing.T) {
	s := Parse("A\rB")
	assertGrid(t, s, []string{"B"})
	assertCell(t, s, 0, 0, 'B', "")
}

func TestParseBackCursorEraseWrite(t *testing.T) {
	s := Parse("AB" + ESC + "[2D" + ESC + "[0KC")
	assertGrid(t, s, []string{"C"})
}

func TestParseLines(t *testing.T) {
	s := Parse("Line1\nLine2")
	assertGrid(t, s, []string{"Line1", "Line2"})
}

func TestParseEraseDisplayAll(t *testing.T) {
	s := Parse(ESC + "[31mRed" + ESC + "[2J")
	assertGrid(t, s, []string{""})
	assertCursor(t, s, 0, 0)
	if s.Style() != "" {
		t.Errorf("expected current style cleared by 2J, got %q", s.Style())
	}
}

func TestParseStylePersistsAcrossNewline(t *testing.T) {
	s := Parse(ESC + "[32mA\nB")
	assertCell(t, s, 0, 0, 'A', ESC+"[32m")
	assertCell(t, s, 1, 0, 'B', ESC+"[32m")
}

func TestParseStyleAccumulatesAcrossSGR(t *testing.T) {
	s := Parse(ESC + "[1m" + ESC + "[31mX")
	assertCell(t, s, 0, 0, 'X', ESC+"[1m"+ESC+"[31m")
}

func TestParseBareResetSGR(t *testing.T) {
	s := Parse(ESC + "[31mA" + ESC + "[mB")
	assertCell(t, s, 0, 0, 'A', ESC+"[31m")
	assertCell(t, s, 0, 1, 'B', "")
}

func TestParseCursorDownExtends(t *testing.T) {
	s := Parse("A" + ESC + "[3BX")
	assertGrid(t, s, []string{"A", "", "", " X"})
}

func TestParseDeleteCharacter(t *testing.T) {
	s := Parse("ABCD" + ESC + "[4D" + ESC + "[2P")
	assertGrid(t, s, []string{"CD"})
}

func TestParseEraseLineModes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"default is to end", "ABC" + ESC + "[2D" + ESC + "[K", []string{"A"}},
		{"mode 1 blanks before cursor", "ABC" + ESC + "[1D" + ESC + "[1K", []string{"  C"}},
		{"mode 2 empties the row", "ABC" + ESC + "[2K", []string{""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertGrid(t, Parse(tc.input), tc.want)
		})
	}
}

func TestParseIgnoresOSCAndKeypad(t *testing.T) {
	s := Parse(ESC + "]0;title\x07A" + ESC + "=B" + ESC + ">C")
	assertGrid(t, s, []string{"ABC"})
}

func TestParseIgnoresUnknownCSI(t *testing.T) {
	// H, f, s, u, private modes: tokenized but without grid effect.
	s := Parse("AB" + ESC + "[5;5H" + ESC + "[?25l" + ESC + "[sC")
	assertGrid(t, s, []string{"ABC"})
}

func TestParseBackspaceClampsAtColumnZero(t *testing.T) {
	s := Parse("\b\bA")
	assertGrid(t, s, []string{"A"})
}

// Cursor coordinates must stay non-negative after any prefix of the token
// stream.
func TestParseCursorNeverNegative(t *testing.T) {
	input := "\b" + ESC + "[10A" + ESC + "[10D" + "x\r" + ESC + "[5D" + ESC + "[2J" + ESC + "[3A"
	toks := Tokenize(input)
	s := NewScreen()
	for i, tok := range toks {
		apply(s, tok)
		x, y := s.Cursor()
		if x < 0 || y < 0 {
			t.Fatalf("after token %d (%q): cursor (%d,%d)", i, tok.Value, x, y)
		}
	}
}

func TestParseFreshScreenPerCall(t *testing.T) {
	Parse(ESC + "[31mstate")
	s := Parse("clean")
	assertCell(t, s, 0, 0, 'c', "")
}
