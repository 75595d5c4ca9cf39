// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/reconstruct_test.go
// Summary: Tests for the escape reconstructor and the render round trip.

package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestReconstructPlainText(t *testing.T) {
	lines := []Line{
		{Runs: []Run{{Text: "hello"}}},
		{Runs: []Run{{Text: "world"}}},
	}
	got := Reconstruct(lines)
	if got != "hello\nworld" {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, ESC) {
		t.Error("plain runs must not produce escape sequences")
	}
}

func TestReconstructTaggedRun(t *testing.T) {
	lines := []Line{{Runs: []Run{
		{Text: "A"},
		{Text: "B", Tag: ESC + "[31m"},
		{Text: "C"},
	}}}
	want := "A" + ESC + "[0m" + ESC + "[31m" + "B" + ESC + "[0m" + "C"
	if got := Reconstruct(lines); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReconstructBlankLine(t *testing.T) {
	lines := []Line{
		{Runs: []Run{{Text: "a"}}},
		{Runs: []Run{{}}},
		{Runs: []Run{{Text: "b"}}},
	}
	if got := Reconstruct(lines); got != "a\n\nb" {
		t.Errorf("got %q", got)
	}
}

// A run edited through a surface that dropped its tag degrades to plain
// text; reconstruction never invents styling.
func TestReconstructDroppedTag(t *testing.T) {
	lines := []Line{{Runs: []Run{{Text: "edited"}}}}
	if got := Reconstruct(lines); got != "edited" {
		t.Errorf("got %q", got)
	}
}

// reparse runs a rendered form back through the reconstructor and parser,
// and returns the cells of the resulting grid.
func reparse(lines []Line) [][]Cell {
	s := Parse(Reconstruct(lines))
	out := make([][]Cell, len(s.Rows()))
	for y, row := range s.Rows() {
		out[y] = row.clone()
	}
	return out
}

// The no-edit round trip must reproduce the same visual grid: identical
// runes and identical style attribution per cell, even though the escape
// byte stream may differ from the original.
func TestRoundTripPreservesGrid(t *testing.T) {
	inputs := []string{
		"plain text only",
		"A" + ESC + "[31mB" + ESC + "[0mC",
		ESC + "[1m" + ESC + "[33mwarn\nstill warn" + ESC + "[0m done",
		"first\n\nthird " + ESC + "[38;5;99mdeep" + ESC + "[0m",
		"over\rwrite " + ESC + "[42mgreen",
	}
	for _, input := range inputs {
		rendered := Render(input)
		cells := reparse(rendered)
		again := Render(Reconstruct(rendered))

		if !reflect.DeepEqual(rendered, again) {
			t.Errorf("input %q: render(reconstruct(render)) differs\n%+v\n%+v",
				input, rendered, again)
		}

		original := Parse(input).Rows()
		if len(cells) != len(original) {
			t.Errorf("input %q: row count %d vs %d", input, len(cells), len(original))
			continue
		}
		for y := range original {
			for x := range original[y] {
				got := Cell{Rune: ' '}
				if x < len(cells[y]) {
					got = cells[y][x]
				}
				if got != original[y][x] {
					t.Errorf("input %q: cell (%d,%d) %+v vs %+v",
						input, y, x, got, original[y][x])
				}
			}
		}
	}
}
