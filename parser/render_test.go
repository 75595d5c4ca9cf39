// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/render_test.go
// Summary: Tests for the style-run renderer.

package parser

import (
	"reflect"
	"testing"
)

func TestRenderCoalescesRuns(t *testing.T) {
	lines := Render("AB" + ESC + "[31mCD" + ESC + "[0mEF")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	runs := lines[0].Runs
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}
	if runs[0].Text != "AB" || runs[0].Tag != "" {
		t.Errorf("run 0: %+v", runs[0])
	}
	if runs[1].Text != "CD" || runs[1].Tag != ESC+"[31m" {
		t.Errorf("run 1: %+v", runs[1])
	}
	if want := (Style{FG: Color{Mode: ColorModeStandard, Value: 1}}); runs[1].Style != want {
		t.Errorf("run 1 style: got %+v, want %+v", runs[1].Style, want)
	}
	if runs[2].Text != "EF" || runs[2].Tag != "" {
		t.Errorf("run 2: %+v", runs[2])
	}
}

// Adjacent runs within one line must never share a style: runs are maximal.
func TestRenderRunsAreMaximal(t *testing.T) {
	inputs := []string{
		"plain",
		"AB" + ESC + "[31mCD" + ESC + "[31mEF",
		ESC + "[1mX" + ESC + "[1mY" + ESC + "[0mZ" + ESC + "[0mW",
		"a\nb" + ESC + "[32mc\nd",
	}
	for _, input := range inputs {
		for _, line := range Render(input) {
			for i := 1; i < len(line.Runs); i++ {
				if line.Runs[i].Tag == line.Runs[i-1].Tag {
					t.Errorf("input %q: adjacent runs share style %q", input, line.Runs[i].Tag)
				}
			}
		}
	}
}

func TestRenderEmptyLinePlaceholder(t *testing.T) {
	lines := Render("a\n\nb")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	blank := lines[1]
	if len(blank.Runs) != 1 {
		t.Fatalf("blank line: expected a single placeholder run, got %+v", blank.Runs)
	}
	if blank.Runs[0].Text != "" || blank.Runs[0].Tag != "" {
		t.Errorf("placeholder run: %+v", blank.Runs[0])
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	input := "A" + ESC + "[1;31mB\r\n" + ESC + "[0m" + ESC + "[42mC\n" + ESC + "[2KD"
	first := Render(input)
	second := Render(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("rendering twice differs:\n%+v\n%+v", first, second)
	}

	// Rendering the same screen twice must also be stable.
	s := Parse(input)
	if !reflect.DeepEqual(RenderScreen(s), RenderScreen(s)) {
		t.Error("RenderScreen mutated the screen")
	}
}

func TestLineText(t *testing.T) {
	lines := Render("x" + ESC + "[31my" + ESC + "[0mz")
	if got := lines[0].Text(); got != "xyz" {
		t.Errorf("Text() = %q, want %q", got, "xyz")
	}
}
