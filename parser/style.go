// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/style.go
// Summary: SGR translator: accumulated escape strings to visual styles.
// Usage: Consumed by the style-run renderer and the presentation layers.
// Notes: Keeps the raw escape string authoritative; this is a projection.

package parser

// Attribute is a bitmask of text attributes.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrStrike
)

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 16 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-15) and 256-mode
	R, G, B uint8 // Holds the values for RGB mode
}

// Style is the visual projection of an accumulated escape string.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// IsZero reports whether the style carries no color and no attributes.
func (st Style) IsZero() bool {
	return st == Style{}
}

// TranslateStyle converts an accumulated escape string into a visual style
// by replaying its SGR sequences over a zero style. Non-SGR content in the
// string is ignored; an empty string yields the zero style.
func TranslateStyle(accumulated string) Style {
	var st Style
	if accumulated == "" {
		return st
	}
	for _, tok := range Tokenize(accumulated) {
		if tok.Kind != TokenCSI || tok.Value[len(tok.Value)-1] != 'm' {
			continue
		}
		params, private := csiParams(tok.Value)
		if private {
			continue
		}
		if len(params) == 0 {
			params = []int{0}
		}
		st.applySGR(params)
	}
	return st
}

// applySGR walks one SGR parameter list, consuming the extended-color
// sub-parameters of 38/48 in place.
func (st *Style) applySGR(params []int) {
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			*st = Style{}
		case p == 1:
			st.Attr |= AttrBold
		case p == 2:
			st.Attr |= AttrFaint
		case p == 3:
			st.Attr |= AttrItalic
		case p == 4:
			st.Attr |= AttrUnderline
		case p == 7:
			st.Attr |= AttrReverse
		case p == 9:
			st.Attr |= AttrStrike
		case p == 22:
			st.Attr &^= AttrBold | AttrFaint
		case p == 23:
			st.Attr &^= AttrItalic
		case p == 24:
			st.Attr &^= AttrUnderline
		case p == 27:
			st.Attr &^= AttrReverse
		case p == 29:
			st.Attr &^= AttrStrike
		case p >= 30 && p <= 37:
			st.FG = Color{Mode: ColorModeStandard, Value: uint8(p - 30)}
		case p == 39:
			st.FG = Color{}
		case p >= 40 && p <= 47:
			st.BG = Color{Mode: ColorModeStandard, Value: uint8(p - 40)}
		case p == 49:
			st.BG = Color{}
		case p >= 90 && p <= 97:
			st.FG = Color{Mode: ColorModeStandard, Value: uint8(p - 90 + 8)}
		case p >= 100 && p <= 107:
			st.BG = Color{Mode: ColorModeStandard, Value: uint8(p - 100 + 8)}
		case p == 38:
			if i+2 < len(params) && params[i+1] == 5 {
				st.FG = Color{Mode: ColorMode256, Value: uint8(params[i+2])}
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 {
				st.FG = Color{Mode: ColorModeRGB, R: uint8(params[i+2]), G: uint8(params[i+3]), B: uint8(params[i+4])}
				i += 4
			}
		case p == 48:
			if i+2 < len(params) && params[i+1] == 5 {
				st.BG = Color{Mode: ColorMode256, Value: uint8(params[i+2])}
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 {
				st.BG = Color{Mode: ColorModeRGB, R: uint8(params[i+2]), G: uint8(params[i+3]), B: uint8(params[i+4])}
				i += 4
			}
		}
		i++
	}
}
