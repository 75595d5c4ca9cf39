// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/style_test.go
// Summary: Tests for the SGR-to-visual-style translator.

package parser

import "testing"

func TestTranslateStyleEmpty(t *testing.T) {
	if st := TranslateStyle(""); !st.IsZero() {
		t.Errorf("empty string should translate to the zero style, got %+v", st)
	}
}

func TestTranslateStyle(t *testing.T) {
	tests := []struct {
		name        string
		accumulated string
		want        Style
	}{
		{
			name:        "standard foreground",
			accumulated: ESC + "[31m",
			want:        Style{FG: Color{Mode: ColorModeStandard, Value: 1}},
		},
		{
			name:        "bright foreground",
			accumulated: ESC + "[92m",
			want:        Style{FG: Color{Mode: ColorModeStandard, Value: 10}},
		},
		{
			name:        "bold accumulated with color",
			accumulated: ESC + "[1m" + ESC + "[34m",
			want:        Style{FG: Color{Mode: ColorModeStandard, Value: 4}, Attr: AttrBold},
		},
		{
			name:        "combined params in one sequence",
			accumulated: ESC + "[1;4;45m",
			want: Style{
				BG:   Color{Mode: ColorModeStandard, Value: 5},
				Attr: AttrBold | AttrUnderline,
			},
		},
		{
			name:        "256-color foreground",
			accumulated: ESC + "[38;5;208m",
			want:        Style{FG: Color{Mode: ColorMode256, Value: 208}},
		},
		{
			name:        "truecolor background",
			accumulated: ESC + "[48;2;10;20;30m",
			want:        Style{BG: Color{Mode: ColorModeRGB, R: 10, G: 20, B: 30}},
		},
		{
			name:        "later sequence wins",
			accumulated: ESC + "[31m" + ESC + "[32m",
			want:        Style{FG: Color{Mode: ColorModeStandard, Value: 2}},
		},
		{
			name:        "attribute cleared by 22",
			accumulated: ESC + "[1m" + ESC + "[22m",
			want:        Style{},
		},
		{
			name:        "default color restored by 39",
			accumulated: ESC + "[33m" + ESC + "[39;7m",
			want:        Style{Attr: AttrReverse},
		},
		{
			name:        "mid-string reset",
			accumulated: ESC + "[1;31m" + ESC + "[0m" + ESC + "[4m",
			want:        Style{Attr: AttrUnderline},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TranslateStyle(tc.accumulated); got != tc.want {
				t.Errorf("TranslateStyle(%q) = %+v, want %+v", tc.accumulated, got, tc.want)
			}
		})
	}
}

func TestTranslateStyleIgnoresNonSGR(t *testing.T) {
	// Only m-final sequences contribute; anything else in an accumulated
	// string is skipped rather than misread.
	got := TranslateStyle(ESC + "[2K" + ESC + "[31m")
	want := Style{FG: Color{Mode: ColorModeStandard, Value: 1}}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
