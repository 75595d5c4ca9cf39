// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: export/palette.go
// Summary: xterm-256 palette for lowering terminal colors to RGB.

package export

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alicangnll/TermView/parser"
)

// Palette maps the 256 xterm palette slots plus default foreground (256)
// and background (257) to RGB colors.
type Palette [258]colorful.Color

// NewDefaultPalette builds the standard xterm 256-color palette.
func NewDefaultPalette() Palette {
	var p Palette
	rgb := func(r, g, b uint8) colorful.Color {
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}

	// First 16 ANSI colors
	p[0] = rgb(0, 0, 0)        // Black
	p[1] = rgb(128, 0, 0)      // Maroon
	p[2] = rgb(0, 128, 0)      // Green
	p[3] = rgb(128, 128, 0)    // Olive
	p[4] = rgb(0, 0, 128)      // Navy
	p[5] = rgb(128, 0, 128)    // Purple
	p[6] = rgb(0, 128, 128)    // Teal
	p[7] = rgb(192, 192, 192)  // Silver
	p[8] = rgb(128, 128, 128)  // Grey
	p[9] = rgb(255, 0, 0)      // Red
	p[10] = rgb(0, 255, 0)     // Lime
	p[11] = rgb(255, 255, 0)   // Yellow
	p[12] = rgb(0, 0, 255)     // Blue
	p[13] = rgb(255, 0, 255)   // Fuchsia
	p[14] = rgb(0, 255, 255)   // Aqua
	p[15] = rgb(255, 255, 255) // White

	// 6x6x6 color cube
	levels := []uint8{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = rgb(levels[r], levels[g], levels[b])
				i++
			}
		}
	}

	// Grayscale ramp
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[i] = rgb(gray, gray, gray)
		i++
	}

	// Default foreground (light gray on dark) and background (black).
	p[256] = p[7]
	p[257] = p[0]

	return p
}

// Foreground resolves a parser color to RGB, falling back to the palette's
// default foreground slot.
func (p Palette) Foreground(c parser.Color) colorful.Color {
	return p.resolve(c, 256)
}

// Background resolves a parser color to RGB, falling back to the palette's
// default background slot.
func (p Palette) Background(c parser.Color) colorful.Color {
	return p.resolve(c, 257)
}

func (p Palette) resolve(c parser.Color, defaultSlot int) colorful.Color {
	switch c.Mode {
	case parser.ColorModeStandard, parser.ColorMode256:
		return p[c.Value]
	case parser.ColorModeRGB:
		return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	default:
		return p[defaultSlot]
	}
}
