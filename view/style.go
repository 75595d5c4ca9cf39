// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: view/style.go
// Summary: Maps parser colors and attributes onto tcell styles.

package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/alicangnll/TermView/parser"
)

// mapColor translates a parser color to a true RGB tcell color through the
// viewer's local palette.
func (v *Viewer) mapColor(c parser.Color, defaultSlot int) tcell.Color {
	switch c.Mode {
	case parser.ColorModeStandard, parser.ColorMode256:
		return v.palette[c.Value]
	case parser.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return v.palette[defaultSlot]
	}
}

// mapStyle lowers a visual style to a tcell style.
func (v *Viewer) mapStyle(st parser.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(v.mapColor(st.FG, 256)).
		Background(v.mapColor(st.BG, 257))
	style = style.Bold(st.Attr&parser.AttrBold != 0)
	style = style.Dim(st.Attr&parser.AttrFaint != 0)
	style = style.Italic(st.Attr&parser.AttrItalic != 0)
	style = style.Underline(st.Attr&parser.AttrUnderline != 0)
	style = style.Reverse(st.Attr&parser.AttrReverse != 0)
	style = style.StrikeThrough(st.Attr&parser.AttrStrike != 0)
	return style
}

// newDefaultPalette builds the standard xterm 256-color palette plus the
// default foreground (256) and background (257) slots.
func newDefaultPalette() [258]tcell.Color {
	var p [258]tcell.Color
	// First 16 ANSI colors
	p[0] = tcell.NewRGBColor(0, 0, 0)        // Black
	p[1] = tcell.NewRGBColor(128, 0, 0)      // Maroon
	p[2] = tcell.NewRGBColor(0, 128, 0)      // Green
	p[3] = tcell.NewRGBColor(128, 128, 0)    // Olive
	p[4] = tcell.NewRGBColor(0, 0, 128)      // Navy
	p[5] = tcell.NewRGBColor(128, 0, 128)    // Purple
	p[6] = tcell.NewRGBColor(0, 128, 128)    // Teal
	p[7] = tcell.NewRGBColor(192, 192, 192)  // Silver
	p[8] = tcell.NewRGBColor(128, 128, 128)  // Grey
	p[9] = tcell.NewRGBColor(255, 0, 0)      // Red
	p[10] = tcell.NewRGBColor(0, 255, 0)     // Lime
	p[11] = tcell.NewRGBColor(255, 255, 0)   // Yellow
	p[12] = tcell.NewRGBColor(0, 0, 255)     // Blue
	p[13] = tcell.NewRGBColor(255, 0, 255)   // Fuchsia
	p[14] = tcell.NewRGBColor(0, 255, 255)   // Aqua
	p[15] = tcell.NewRGBColor(255, 255, 255) // White

	// 6x6x6 color cube
	levels := []int32{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = tcell.NewRGBColor(levels[r], levels[g], levels[b])
				i++
			}
		}
	}

	// Grayscale ramp
	for j := 0; j < 24; j++ {
		gray := int32(8 + j*10)
		p[i] = tcell.NewRGBColor(gray, gray, gray)
		i++
	}

	// Default foreground and background.
	p[256] = p[7]
	p[257] = p[0]

	return p
}
